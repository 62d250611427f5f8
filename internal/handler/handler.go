package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"blogapi/internal/config"
	"blogapi/internal/service"
)

// placeholderAuthorID stands in for a verified identity until real
// authentication exists. Callers may supply their own id in the payload.
const placeholderAuthorID = "temp-user-id"

type Handlers struct {
	UserService    service.UserService
	PostService    service.PostService
	CommentService service.CommentService
	Cfg            *config.Config
	Logger         zerolog.Logger
}

func NewHandlers(service *service.Service, cfg *config.Config, logger zerolog.Logger) *Handlers {
	return &Handlers{
		UserService:    service.User,
		PostService:    service.Post,
		CommentService: service.Comment,
		Cfg:            cfg,
		Logger:         logger,
	}
}

func callerID(tempAuthorID string) string {
	if tempAuthorID == "" {
		return placeholderAuthorID
	}
	return tempAuthorID
}

// NotFound answers unmatched routes with the standard error envelope.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Success: false,
		Error:   "Not Found",
		Message: fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path),
	})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
