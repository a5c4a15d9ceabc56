package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-order-intake/internal/validators"
	"github.com/MKhiriev/go-order-intake/models"
)

type IngestValidationService struct {
	inner     IngestService
	validator validators.Validator
}

func NewIngestValidationService() IngestServiceWrapper {
	return &IngestValidationService{
		validator: validators.NewOrderValidator(),
	}
}

func (v *IngestValidationService) IngestChunk(ctx context.Context, request models.ChunkRequest) (models.ChunkResult, error) {
	// request should consist of:
	//  - at least one file, at most one payment screenshot
	//  - order id, non-negative total, optional vpa
	//  - chunkIndex inside [0, totalChunks)
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.ChunkResult{}, fmt.Errorf("%w: %w", ErrInvalidChunkRequest, err)
	}

	return v.inner.IngestChunk(ctx, request)
}

func (v *IngestValidationService) FindOrder(ctx context.Context, orderID string) (models.OrderRecord, error) {
	if err := v.validator.Validate(ctx, models.OrderMetadata{OrderID: orderID}, validators.FieldOrderID); err != nil {
		return models.OrderRecord{}, fmt.Errorf("%w: %w", ErrInvalidOrderID, err)
	}

	return v.inner.FindOrder(ctx, orderID)
}

func (v *IngestValidationService) OpenFile(ctx context.Context, orderID, fileID string) (io.ReadCloser, string, error) {
	return v.inner.OpenFile(ctx, orderID, fileID)
}

func (v *IngestValidationService) Wrap(wrapper IngestService) IngestService {
	v.inner = wrapper
	return v
}
