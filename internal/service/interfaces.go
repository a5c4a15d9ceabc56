package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-order-intake/models"
)

// IngestService is the order log behind the dev ingestion endpoint.
type IngestService interface {
	// IngestChunk decodes and stores the files of one chunk request and
	// records the chunk. Files that cannot be stored are reported in the
	// result's Errors; the chunk itself still succeeds.
	IngestChunk(ctx context.Context, request models.ChunkRequest) (models.ChunkResult, error)

	// FindOrder returns everything stored for orderID.
	// Returns [ErrOrderNotFound] for unknown orders.
	FindOrder(ctx context.Context, orderID string) (models.OrderRecord, error)

	// OpenFile returns a stored file and its original name.
	// Returns [ErrFileNotFound] for unknown files.
	OpenFile(ctx context.Context, orderID, fileID string) (io.ReadCloser, string, error)
}

type AppInfoService interface {
	Health(ctx context.Context) models.HealthStatus
}

// IngestServiceWrapper defines middleware composition for IngestService.
// Implementations wrap an existing IngestService to add behavior such as
// validating.
type IngestServiceWrapper interface {
	Wrap(IngestService) IngestService
}
