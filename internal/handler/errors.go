package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/internal/errs"
	"blogapi/internal/models"
)

type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type PaginatedResponse struct {
	Success    bool              `json:"success"`
	Data       any               `json:"data"`
	Pagination models.Pagination `json:"pagination"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func (h *Handlers) WriteSuccess(w http.ResponseWriter, statusCode int, data any, message string) {
	writeJSON(w, statusCode, SuccessResponse{Success: true, Data: data, Message: message})
}

func (h *Handlers) WritePaginated(w http.ResponseWriter, data any, pagination models.Pagination) {
	writeJSON(w, http.StatusOK, PaginatedResponse{Success: true, Data: data, Pagination: pagination})
}

// WriteError is the only place error kinds turn into HTTP status codes.
func (h *Handlers) WriteError(w http.ResponseWriter, err error) {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Error: err.Error()})
	case errs.KindNotFound:
		writeJSON(w, http.StatusNotFound, ErrorResponse{Success: false, Error: err.Error()})
	case errs.KindAuthorization:
		writeJSON(w, http.StatusForbidden, ErrorResponse{Success: false, Error: err.Error()})
	case errs.KindConflict:
		writeJSON(w, http.StatusConflict, ErrorResponse{Success: false, Error: err.Error()})
	default:
		h.Logger.Error().Err(err).Msg("internal error")
		resp := ErrorResponse{Success: false, Error: "Internal Server Error"}
		if h.Cfg.IsDevelopment() {
			resp.Message = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, resp)
	}
}
