package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"blogapi/internal/errs"
	"blogapi/internal/models"
)

type createPostBody struct {
	models.CreatePostRequest
	TempAuthorID string `json:"tempAuthorId"`
}

type updatePostBody struct {
	models.UpdatePostPatch
	TempAuthorID string `json:"tempAuthorId"`
}

// GetPosts serves both the paginated listing and keyword/tag search.
// A non-blank keyword or tag switches to search, which returns the full
// match list without a pagination block.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	keyword := query.Get("keyword")
	tag := query.Get("tag")

	if strings.TrimSpace(keyword) != "" || strings.TrimSpace(tag) != "" {
		posts, err := h.PostService.SearchPosts(r.Context(), keyword, tag)
		if err != nil {
			h.WriteError(w, err)
			return
		}
		h.WriteSuccess(w, http.StatusOK, posts, "")
		return
	}

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(query.Get("limit"))
	if limit < 1 {
		limit = 10
	}

	result, err := h.PostService.GetAllPosts(r.Context(), page, limit)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WritePaginated(w, result.Posts, result.Pagination)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := h.PostService.GetPostByID(r.Context(), id)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, post, "")
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body createPostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, errs.Validation("Invalid request body"))
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), callerID(body.TempAuthorID), body.CreatePostRequest)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, post, "Post created successfully")
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body updatePostBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, errs.Validation("Invalid request body"))
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), id, callerID(body.TempAuthorID), body.UpdatePostPatch)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, post, "Post updated successfully")
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	// The body is optional on delete; only the caller id is read from it.
	var body struct {
		TempAuthorID string `json:"tempAuthorId"`
	}
	json.NewDecoder(r.Body).Decode(&body)

	if err := h.PostService.DeletePost(r.Context(), id, callerID(body.TempAuthorID)); err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, nil, "Post deleted successfully")
}

func (h *Handlers) GetPostsByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID := mux.Vars(r)["authorId"]

	posts, err := h.PostService.GetPostsByAuthor(r.Context(), authorID)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, posts, "")
}
