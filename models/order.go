// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderMetadata holds the non-file fields of a logical order. The same
// metadata is attached to every chunk so the remote side can join partial
// submissions of one order.
type OrderMetadata struct {
	// OrderID identifies the order across all of its chunks.
	OrderID string

	// Total is the order amount; never negative.
	Total decimal.Decimal

	// VPA is the payer's UPI virtual payment address.
	VPA string
}

// OrderData is the "orderData" object of a chunk request.
type OrderData struct {
	OrderID     string          `json:"orderId"`
	Total       decimal.Decimal `json:"total"`
	VPA         string          `json:"vpa"`
	Timestamp   time.Time       `json:"timestamp"`
	ChunkIndex  int             `json:"chunkIndex"`
	TotalChunks int             `json:"totalChunks"`
}

// ForChunk builds the request metadata for the chunk at chunkIndex.
func (o OrderMetadata) ForChunk(chunkIndex, totalChunks int, ts time.Time) OrderData {
	return OrderData{
		OrderID:     o.OrderID,
		Total:       o.Total,
		VPA:         o.VPA,
		Timestamp:   ts.UTC(),
		ChunkIndex:  chunkIndex,
		TotalChunks: totalChunks,
	}
}

// MarshalJSON writes Total as a JSON number, which is what the ingestion
// endpoint's spreadsheet log expects.
func (d OrderData) MarshalJSON() ([]byte, error) {
	type plain OrderData
	return json.Marshal(struct {
		plain
		Total json.RawMessage `json:"total"`
	}{
		plain: plain(d),
		Total: json.RawMessage(d.Total.String()),
	})
}
