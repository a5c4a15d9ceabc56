package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-intake/internal/adapter"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/store"
	"github.com/MKhiriev/go-order-intake/models"
)

type clientOrderService struct {
	adapter adapter.IngestionAdapter
	journal store.SubmissionRepository

	logger *logger.Logger
}

func NewClientOrderService(ingestionAdapter adapter.IngestionAdapter, journal store.SubmissionRepository, logger *logger.Logger) ClientOrderService {
	return &clientOrderService{
		adapter: ingestionAdapter,
		journal: journal,
		logger:  logger,
	}
}

func (s *clientOrderService) Health(ctx context.Context) (models.HealthStatus, error) {
	status, err := s.adapter.HealthCheck(ctx)
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health check: %w", err)
	}
	return status, nil
}

func (s *clientOrderService) Lookup(ctx context.Context, orderID string) (models.OrderRecord, error) {
	record, err := s.adapter.LookupOrder(ctx, orderID)
	if err != nil {
		return models.OrderRecord{}, mapAdapterError(err)
	}
	return record, nil
}

func (s *clientOrderService) History(ctx context.Context, orderID string) (models.OrderRecord, error) {
	if s.journal == nil {
		return models.OrderRecord{}, ErrJournalDisabled
	}

	record, err := s.journal.FindOrder(ctx, orderID)
	if err != nil {
		return models.OrderRecord{}, mapStoreError(err)
	}
	return record, nil
}
