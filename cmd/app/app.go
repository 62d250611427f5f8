package app

import (
	"github.com/rs/zerolog"

	"blogapi/internal/config"
	"blogapi/internal/repository"
	"blogapi/internal/service"
	"blogapi/internal/storage"
)

// App wires the stores and services together. Avatar storage is optional;
// without it the rest of the API works and only avatar uploads refuse.
func App(cfg *config.Config, logger zerolog.Logger) (*repository.Repository, *service.Service) {
	var store storage.Storage
	if cfg.MinIO.Enabled {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize MinIO")
		}
		store = minioClient
	} else {
		logger.Info().Msg("avatar storage disabled")
	}

	repo := repository.NewRepository()
	services := service.NewService(repo, store)

	return repo, services
}
