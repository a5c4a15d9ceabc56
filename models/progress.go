// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Progress is emitted after every completed chunk.
type Progress struct {
	// Uploaded is the running number of files stored remotely.
	Uploaded int

	// Total is the number of files in the batch.
	Total int

	// Chunk is the 1-based number of the chunk that just completed.
	Chunk int

	// TotalChunks is the number of planned chunks.
	TotalChunks int
}

// Fraction returns completed chunks as a value in [0, 1].
func (p Progress) Fraction() float64 {
	if p.TotalChunks <= 0 {
		return 0
	}
	return float64(p.Chunk) / float64(p.TotalChunks)
}
