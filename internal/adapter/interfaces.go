// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the order-intake
// client and the remote ingestion endpoint.
//
// The primary abstraction is [IngestionAdapter], which decouples the upload
// service from the wire protocol. The package ships a JSON-over-HTTP
// implementation built on resty ([NewHTTPIngestionAdapter]).
//
// Failures are reported as wrapped sentinels ([ErrRequestFailed],
// [ErrUnexpectedStatus], [ErrMalformedResponse], [ErrRemoteFailure],
// [ErrOrderNotFound]) and, where the endpoint answered, as [*StatusError] or
// [*RemoteFailure] values carrying the status, body text and error code.
// [ToFailure] turns any of them into the input of the upload classifier.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-order-intake/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ingestion_adapter_mock.go -package=mock

// IngestionAdapter defines communication with the ingestion endpoint.
// Implementations must not retry on their own: a repeated chunk request
// stores its files twice on the remote side.
type IngestionAdapter interface {
	// SendChunk posts the files of chunk together with the order metadata
	// and the chunk position. It returns the decoded endpoint answer when
	// the endpoint reported success, and an error otherwise.
	SendChunk(ctx context.Context, chunk models.Chunk, order models.OrderMetadata, chunkIndex, totalChunks int) (models.ChunkResult, error)

	// HealthCheck queries the endpoint's health status.
	HealthCheck(ctx context.Context) (models.HealthStatus, error)

	// LookupOrder fetches the record the endpoint keeps for orderID.
	// Returns [ErrOrderNotFound] (wrapped) when the endpoint has none.
	LookupOrder(ctx context.Context, orderID string) (models.OrderRecord, error)
}
