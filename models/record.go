// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChunkRecord is one persisted chunk outcome of an order submission.
// The client journal stores both delivered and failed chunks; the ingestion
// endpoint stores the chunks it accepted.
type ChunkRecord struct {
	OrderID     string
	ChunkIndex  int
	TotalChunks int
	Total       decimal.Decimal
	VPA         string

	UploadedCount int
	TotalCount    int

	// ErrorKind and ErrorMessage are empty for delivered chunks.
	ErrorKind    string
	ErrorMessage string

	Files     []UploadedFileRef
	CreatedAt time.Time
}

// OrderRecord is the aggregated view of every chunk stored for an order.
type OrderRecord struct {
	OrderID       string            `json:"orderId"`
	Total         decimal.Decimal   `json:"total"`
	VPA           string            `json:"vpa"`
	TotalChunks   int               `json:"totalChunks"`
	ChunksStored  int               `json:"chunksStored"`
	UploadedCount int               `json:"uploadedCount"`
	Files         []UploadedFileRef `json:"files"`
	LastError     string            `json:"lastError,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// LookupResponse is the body of GET ?orderId=<id>.
type LookupResponse struct {
	Success bool         `json:"success"`
	Order   *OrderRecord `json:"order,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// HealthStatus is the body of the health check.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
