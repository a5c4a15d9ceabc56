// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Chunk is one group of files transmitted together in a single request.
//
// EstimatedEncodedSize never exceeds the configured ceiling. Concatenating
// Files of all chunks of a plan, in order, reproduces the planned file list.
type Chunk struct {
	// Files are the encoded files of this chunk in submission order.
	Files []EncodedFile

	// EstimatedEncodedSize is the expected size of the JSON request body,
	// including the order metadata envelope.
	EstimatedEncodedSize int64

	// Offset is the batch-relative index of Files[0].
	Offset int
}

// ChunkRequest is the JSON body posted to the ingestion endpoint.
type ChunkRequest struct {
	Files     []WireFile `json:"files"`
	OrderData OrderData  `json:"orderData"`
}
