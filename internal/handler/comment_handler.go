package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/internal/errs"
	"blogapi/internal/models"
)

type createCommentBody struct {
	models.CreateCommentRequest
	TempAuthorID string `json:"tempAuthorId"`
}

type updateCommentBody struct {
	Content      string `json:"content"`
	TempAuthorID string `json:"tempAuthorId"`
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	comments, err := h.CommentService.GetCommentsByPostID(r.Context(), postID)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, comments, "")
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	var body createCommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, errs.Validation("Invalid request body"))
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), callerID(body.TempAuthorID), body.CreateCommentRequest)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, comment, "Comment created successfully")
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body updateCommentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.WriteError(w, errs.Validation("Invalid request body"))
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), id, callerID(body.TempAuthorID), body.Content)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, comment, "Comment updated successfully")
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		TempAuthorID string `json:"tempAuthorId"`
	}
	json.NewDecoder(r.Body).Decode(&body)

	if err := h.CommentService.DeleteComment(r.Context(), id, callerID(body.TempAuthorID)); err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, nil, "Comment deleted successfully")
}
