// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-order-intake/models"
)

const defaultMimeType = "application/octet-stream"

// Encode returns the file with its exact bytes base64-encoded.
func Encode(file models.FileDescriptor) models.EncodedFile {
	file.Size = int64(len(file.RawBytes))
	if file.MimeType == "" {
		file.MimeType = DetectMimeType(file.Name, file.RawBytes)
	}

	return models.EncodedFile{
		FileDescriptor: file,
		Data:           base64.StdEncoding.EncodeToString(file.RawBytes),
	}
}

// EncodeAll encodes every file of a batch, preserving order.
func EncodeAll(files []models.FileDescriptor) []models.EncodedFile {
	encoded := make([]models.EncodedFile, 0, len(files))
	for _, f := range files {
		encoded = append(encoded, Encode(f))
	}
	return encoded
}

// Decode reverses [Encode]. A leading data-URL header
// ("data:image/png;base64,") is stripped first.
func Decode(data string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(StripDataURL(data))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return raw, nil
}

// StripDataURL removes a "data:<mime>;base64," prefix if present.
func StripDataURL(data string) string {
	if !strings.HasPrefix(data, "data:") {
		return data
	}
	if idx := strings.Index(data, ";base64,"); idx != -1 {
		return data[idx+len(";base64,"):]
	}
	if idx := strings.IndexByte(data, ','); idx != -1 {
		return data[idx+1:]
	}
	return data
}

// ReadFileFunc reads the whole file at path.
type ReadFileFunc func(path string) ([]byte, error)

// LoadFile reads path into a descriptor named after its base name. A nil
// readFile reads from disk.
func LoadFile(path string, readFile ReadFileFunc) (models.FileDescriptor, error) {
	if readFile == nil {
		readFile = os.ReadFile
	}

	raw, err := readFile(path)
	if err != nil {
		return models.FileDescriptor{}, fmt.Errorf("read file %q: %w", path, err)
	}

	name := filepath.Base(path)
	return models.FileDescriptor{
		Name:     name,
		RawBytes: raw,
		MimeType: DetectMimeType(name, raw),
		Size:     int64(len(raw)),
	}, nil
}

// DetectMimeType guesses the content type from the extension and falls back
// to content sniffing.
func DetectMimeType(name string, raw []byte) string {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		if mediaType, _, err := mime.ParseMediaType(byExt); err == nil {
			return mediaType
		}
		return byExt
	}
	if len(raw) == 0 {
		return defaultMimeType
	}

	sniffed := http.DetectContentType(raw[:min(len(raw), 512)])
	if mediaType, _, err := mime.ParseMediaType(sniffed); err == nil {
		return mediaType
	}
	return defaultMimeType
}
