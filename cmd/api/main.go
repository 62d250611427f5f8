package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"blogapi/cmd/app"
	"blogapi/internal/config"
	handlers "blogapi/internal/handler"
	"blogapi/internal/middleware"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.LoadConfig()

	_, services := app.App(cfg, logger)

	handler := handlers.NewHandlers(services, cfg, logger)

	router := mux.NewRouter()
	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/author/{authorId}", handler.GetPostsByAuthor).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{postId}/comments", handler.GetComments).Methods(http.MethodGet)

	api.HandleFunc("/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/comments/{id}", handler.UpdateComment).Methods(http.MethodPut)
	api.HandleFunc("/comments/{id}", handler.DeleteComment).Methods(http.MethodDelete)

	api.HandleFunc("/users/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", handler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", handler.UpdateProfile).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}/avatar", handler.UploadAvatar).Methods(http.MethodPost)

	router.NotFoundHandler = http.HandlerFunc(handler.NotFound)

	handlerChain := middleware.Chain(
		router,
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(logger),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
