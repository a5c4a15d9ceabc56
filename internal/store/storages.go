package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
)

// Storages groups the persistence of the dev ingestion server.
type Storages struct {
	SubmissionRepository SubmissionRepository
	FileStorage          FileStorage

	db *DB
}

// NewStorages connects the order log selected by cfg.DSN, applies
// migrations and prepares the file directory.
func NewStorages(ctx context.Context, cfg *config.ServerConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Open(ctx, cfg.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	files, err := NewFileStorage(cfg.FilesDir, logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		SubmissionRepository: NewSubmissionRepository(db, logger),
		FileStorage:          files,
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ClientStorages groups the client-side persistence: the local submission
// journal.
type ClientStorages struct {
	Journal SubmissionRepository

	db *DB
}

// NewClientStorages opens the journal at cfg.JournalDSN. An empty DSN
// disables the journal and yields a nil Journal.
func NewClientStorages(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.JournalDSN == "" {
		return &ClientStorages{}, nil
	}

	db, err := Open(ctx, cfg.JournalDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("journal connection error: %w", err)
	}

	return &ClientStorages{
		Journal: NewSubmissionRepository(db, logger),
		db:      db,
	}, nil
}

// Close releases the journal connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
