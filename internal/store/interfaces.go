package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-order-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SubmissionRepository persists chunk outcomes of order submissions. The
// client uses it as a local journal, the dev ingestion server as its order
// log.
type SubmissionRepository interface {
	// SaveChunk stores one chunk outcome. Saving the same (order id, chunk
	// index) again replaces the earlier row and its files.
	SaveChunk(ctx context.Context, record models.ChunkRecord) error

	// FindOrder aggregates every chunk stored for orderID.
	// Returns [ErrOrderNotFound] if there is none.
	FindOrder(ctx context.Context, orderID string) (models.OrderRecord, error)
}

// FileStorage keeps the bytes of files accepted by the dev ingestion server.
type FileStorage interface {
	// Save writes data under the order's directory and returns the path of
	// the stored file relative to the storage root.
	Save(ctx context.Context, orderID, fileID, name string, data []byte) (string, error)

	// Open returns the stored file and its original name.
	// Returns [ErrFileNotFound] if no file has that id.
	Open(ctx context.Context, orderID, fileID string) (io.ReadCloser, string, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
