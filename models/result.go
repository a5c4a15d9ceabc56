// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadedFileRef describes a file the ingestion endpoint has stored.
type UploadedFileRef struct {
	Name           string `json:"name"`
	FileID         string `json:"fileId"`
	WebViewLink    string `json:"webViewLink"`
	WebContentLink string `json:"webContentLink,omitempty"`
	Size           int64  `json:"size"`
	MimeType       string `json:"mimeType"`
}

// PerFileError is a server-side failure of a single file inside an
// otherwise successful chunk.
type PerFileError struct {
	// Index is the file position. On the wire it is relative to the chunk;
	// inside a [BatchResult] it is relative to the whole batch.
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Error string `json:"error"`
}

// ChunkResult is the response of the ingestion endpoint for one chunk.
type ChunkResult struct {
	Success       bool              `json:"success"`
	Files         []UploadedFileRef `json:"files"`
	Errors        []PerFileError    `json:"errors,omitempty"`
	UploadedCount int               `json:"uploadedCount"`
	TotalCount    int               `json:"totalCount"`

	// Error is the top-level failure text when Success is false.
	Error string `json:"error,omitempty"`

	// ErrorCode is an optional machine-readable failure code
	// (e.g. "QUOTA_EXCEEDED").
	ErrorCode string `json:"errorCode,omitempty"`
}

// BatchResult is the merged outcome of all chunks that completed.
type BatchResult struct {
	Files  []UploadedFileRef
	Errors []PerFileError

	// UploadedCount is the sum of ChunkResult.UploadedCount over the
	// completed chunks.
	UploadedCount int

	// TotalCount is the number of files in the batch.
	TotalCount int

	// ChunksSent is the number of chunks whose response was received.
	ChunksSent int

	// TotalChunks is the number of planned chunks.
	TotalChunks int
}

// HasPartialFailure reports whether some files failed server-side while
// their chunks succeeded.
func (b BatchResult) HasPartialFailure() bool {
	return len(b.Errors) > 0
}

// Complete reports whether every planned chunk was sent.
func (b BatchResult) Complete() bool {
	return b.TotalChunks > 0 && b.ChunksSent == b.TotalChunks
}
