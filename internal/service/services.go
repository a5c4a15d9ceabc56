package service

import (
	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/store"
)

type Services struct {
	IngestService  IngestService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		IngestService:  NewIngestValidationService().Wrap(NewIngestService(storages, cfg, logger)),
		AppInfoService: appInfo,
	}, nil
}
