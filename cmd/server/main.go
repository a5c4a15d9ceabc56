package main

import (
	"context"

	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/handler"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/server"
	"github.com/MKhiriev/go-order-intake/internal/service"
	"github.com/MKhiriev/go-order-intake/internal/store"
	"github.com/MKhiriev/go-order-intake/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetServerConfig()
	if err != nil {
		logger.NewLogger("ingest-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.Version == "" {
		cfg.Version = build.String()
	}

	log := logger.NewLogger("ingest-server", cfg.LogLevel)
	log.Info().
		Str("version", build.BuildVersion()).
		Str("date", build.BuildDate()).
		Str("commit", build.BuildCommit()).
		Msg("starting dev ingestion server")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
