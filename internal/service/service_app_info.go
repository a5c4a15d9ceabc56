package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/models"
)

type appInfoService struct {
	appVersion string
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg *config.ServerConfig, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    "ok",
		Version:   s.appVersion,
		Timestamp: s.now().UTC(),
	}
}
