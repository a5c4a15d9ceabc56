// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FileDescriptor is a single file selected for an order upload.
// It is created when the caller picks the file and is not modified once
// encoding of the batch has started.
type FileDescriptor struct {
	// Name is the original file name shown to the customer and the admin.
	Name string

	// RawBytes holds the exact file content.
	RawBytes []byte

	// MimeType is the declared content type (e.g. "application/pdf").
	MimeType string

	// Size is the length of RawBytes in bytes.
	Size int64

	// IsPaymentScreenshot marks the UPI payment proof attached to the order.
	IsPaymentScreenshot bool

	// Options carries per-file print options (copies, color, sides, ...).
	// The orchestrator forwards it untouched.
	Options map[string]any
}

// EncodedFile is a [FileDescriptor] together with its base64 representation.
// Decoding Data always yields RawBytes.
type EncodedFile struct {
	FileDescriptor

	// Data is the standard base64 encoding of RawBytes, without any
	// data-URL prefix.
	Data string
}

// WireFile is the JSON shape of one file inside a chunk request.
type WireFile struct {
	Name                string         `json:"name"`
	Data                string         `json:"data"`
	MimeType            string         `json:"mimeType"`
	Size                int64          `json:"size"`
	IsPaymentScreenshot bool           `json:"isPaymentScreenshot"`
	Options             map[string]any `json:"options,omitempty"`
}

// Wire converts the encoded file into its request representation.
func (f EncodedFile) Wire() WireFile {
	return WireFile{
		Name:                f.Name,
		Data:                f.Data,
		MimeType:            f.MimeType,
		Size:                f.Size,
		IsPaymentScreenshot: f.IsPaymentScreenshot,
		Options:             f.Options,
	}
}
