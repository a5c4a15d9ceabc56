package http

import (
	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/service"
)

type Handler struct {
	services *service.Services

	// maxRequestSize bounds a chunk request body; zero disables the limit.
	maxRequestSize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("max_request_size", cfg.MaxRequestSize.String()).Msg("http handler created")
	return &Handler{
		services:       services,
		maxRequestSize: cfg.MaxRequestSize.Int64(),
		logger:         logger,
	}
}
