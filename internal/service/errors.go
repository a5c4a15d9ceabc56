package service

import "errors"

var (
	ErrInvalidChunkRequest = errors.New("invalid chunk request")
	ErrInvalidOrderID      = errors.New("invalid order id")

	ErrOrderNotFound = errors.New("order not found")
	ErrFileNotFound  = errors.New("file not found")

	// ErrJournalDisabled is returned by History when no journal DSN is set.
	ErrJournalDisabled = errors.New("submission journal is disabled")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// Per-file rejection reasons of the ingestion endpoint. They end up as text
// in ChunkResult.Errors, never as a failed chunk.
var (
	errInvalidFileData  = errors.New("invalid base64 data")
	errFileSizeMismatch = errors.New("declared size does not match data")
	errFileTooLarge     = errors.New("file exceeds the maximum file size")
)
