package service

import (
	"context"

	"github.com/MKhiriev/go-order-intake/internal/upload"
	"github.com/MKhiriev/go-order-intake/models"
)

// ClientUploadService defines the client-side contract for submitting the
// files of one order.
type ClientUploadService interface {
	// UploadBatch validates files and order, encodes every file, plans
	// chunks under the configured ceiling and sends them one after another.
	// onProgress, if not nil, is called after every completed chunk.
	//
	// On failure the returned BatchResult holds what the completed chunks
	// stored, and the error is an [*upload.Error]. Files stored by those
	// chunks are not removed. Per-file failures reported by the endpoint are
	// returned in BatchResult.Errors and are not an error.
	UploadBatch(ctx context.Context, files []models.FileDescriptor, order models.OrderMetadata, onProgress upload.ProgressFunc) (models.BatchResult, error)
}

// ClientOrderService defines the client-side queries about orders.
type ClientOrderService interface {
	// Health asks the ingestion endpoint for its status.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Lookup fetches the endpoint's record of orderID.
	// Returns [ErrOrderNotFound] if the endpoint has none.
	Lookup(ctx context.Context, orderID string) (models.OrderRecord, error)

	// History reads the local journal of orderID.
	// Returns [ErrJournalDisabled] without a journal and [ErrOrderNotFound]
	// if the order was never submitted from this machine.
	History(ctx context.Context, orderID string) (models.OrderRecord, error)
}
