package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"

	"blogapi/internal/errs"
	"blogapi/internal/models"
)

var allowedAvatarExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.WriteError(w, errs.Validation("Invalid request body"))
		return
	}

	user, err := h.UserService.Register(r.Context(), req)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusCreated, user, "User registered successfully")
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := h.UserService.GetUserByID(r.Context(), id)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, user, "")
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var patch models.UpdateUserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.WriteError(w, errs.Validation("Invalid request body"))
		return
	}

	user, err := h.UserService.UpdateProfile(r.Context(), id, patch)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, user, "Profile updated successfully")
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		h.WriteError(w, errs.Validation("Failed to parse upload"))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		h.WriteError(w, errs.Validation("Avatar file is required"))
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedAvatarExtensions[ext] {
		h.WriteError(w, errs.Validation("Unsupported image format"))
		return
	}

	user, err := h.UserService.UpdateAvatar(r.Context(), id, header.Filename, file, header.Size)
	if err != nil {
		h.WriteError(w, err)
		return
	}

	h.WriteSuccess(w, http.StatusOK, user, "Avatar uploaded successfully")
}
