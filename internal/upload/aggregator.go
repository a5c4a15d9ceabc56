// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"slices"

	"github.com/MKhiriev/go-order-intake/models"
)

// ProgressFunc receives a progress event after every completed chunk. It is
// called synchronously from the upload loop.
type ProgressFunc func(models.Progress)

// NewBatchResult returns the empty accumulator for a planned batch.
func NewBatchResult(totalFiles, totalChunks int) models.BatchResult {
	return models.BatchResult{
		Files:       []models.UploadedFileRef{},
		Errors:      []models.PerFileError{},
		TotalCount:  totalFiles,
		TotalChunks: totalChunks,
	}
}

// Fold merges one successful chunk response into acc and returns the new
// accumulator; acc itself is left untouched.
//
// Per-file errors of a successful chunk are kept as data with their index
// rewritten from chunk-relative to batch-relative using chunk.Offset. An
// error entry without a name gets the name of the file it points at.
func Fold(acc models.BatchResult, chunk models.Chunk, result models.ChunkResult) models.BatchResult {
	next := acc
	next.Files = append(slices.Clip(acc.Files), result.Files...)
	next.UploadedCount = acc.UploadedCount + result.UploadedCount
	next.ChunksSent = acc.ChunksSent + 1

	next.Errors = slices.Clip(acc.Errors)
	for _, e := range result.Errors {
		if e.Name == "" && e.Index >= 0 && e.Index < len(chunk.Files) {
			e.Name = chunk.Files[e.Index].Name
		}
		e.Index += chunk.Offset
		next.Errors = append(next.Errors, e)
	}

	return next
}

// ProgressOf builds the progress event emitted after acc was produced by
// folding the chunk with the given zero-based index.
func ProgressOf(acc models.BatchResult, chunkIndex int) models.Progress {
	return models.Progress{
		Uploaded:    acc.UploadedCount,
		Total:       acc.TotalCount,
		Chunk:       chunkIndex + 1,
		TotalChunks: acc.TotalChunks,
	}
}
