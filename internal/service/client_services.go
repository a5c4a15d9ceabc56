package service

import (
	"github.com/MKhiriev/go-order-intake/internal/adapter"
	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/store"
)

type ClientServices struct {
	UploadService ClientUploadService
	OrderService  ClientOrderService
}

func NewClientServices(storages *store.ClientStorages, ingestionAdapter adapter.IngestionAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UploadService: NewClientUploadService(ingestionAdapter, storages.Journal, cfg, logger),
		OrderService:  NewClientOrderService(ingestionAdapter, storages.Journal, logger),
	}
}
