// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package upload

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-order-intake/models"
)

// DefaultPerFileOverhead covers the JSON keys, quoting, the separating comma
// and the small scalar fields of one file object in a chunk request.
const DefaultPerFileOverhead int64 = 256

// PlanConfig holds the planner parameters. All sizes are in bytes.
type PlanConfig struct {
	// Ceiling is the maximum size of one chunk's JSON request body.
	Ceiling int64

	// MetadataOverhead is the size of the request envelope without files
	// (order metadata, chunk index, brackets).
	MetadataOverhead int64

	// PerFileOverhead is added to every file's encoded length.
	PerFileOverhead int64
}

func (c PlanConfig) validate() error {
	if c.Ceiling <= 0 {
		return fmt.Errorf("%w: ceiling must be positive, got %d", ErrInvalidPlanConfig, c.Ceiling)
	}
	if c.MetadataOverhead < 0 || c.PerFileOverhead < 0 {
		return fmt.Errorf("%w: overheads must not be negative", ErrInvalidPlanConfig)
	}
	return nil
}

// EstimateFileSize returns the expected contribution of a file to a chunk
// request body: the exact base64 length plus everything else the file object
// carries on the wire. Name and mime type are measured as escaped JSON
// strings and options as their marshaled form.
func EstimateFileSize(f models.FileDescriptor, perFileOverhead int64) (int64, error) {
	overhead, err := fileOverhead(f, perFileOverhead)
	if err != nil {
		return 0, err
	}
	return int64(base64.StdEncoding.EncodedLen(int(f.Size))) + overhead, nil
}

// MaxFileSize returns the largest raw size f may have and still fit into a
// chunk on its own. It is zero when nothing fits or f's options cannot be
// encoded.
func MaxFileSize(cfg PlanConfig, f models.FileDescriptor) int64 {
	overhead, err := fileOverhead(f, cfg.PerFileOverhead)
	if err != nil {
		return 0
	}
	return maxRawSize(cfg, overhead)
}

func maxRawSize(cfg PlanConfig, overhead int64) int64 {
	budget := cfg.Ceiling - cfg.MetadataOverhead - overhead
	if budget < 4 {
		return 0
	}
	return budget / 4 * 3
}

// fileOverhead is the wire size of a file object without its data.
func fileOverhead(f models.FileDescriptor, perFileOverhead int64) (int64, error) {
	name, err := jsonLen(f.Name)
	if err != nil {
		return 0, err
	}
	mimeType, err := jsonLen(f.MimeType)
	if err != nil {
		return 0, err
	}

	var options int64
	if len(f.Options) > 0 {
		if options, err = jsonLen(f.Options); err != nil {
			return 0, fmt.Errorf("%w: %q: %w", ErrInvalidFileOptions, f.Name, err)
		}
	}

	return perFileOverhead + name + mimeType + options, nil
}

// jsonLen is the length of v as encoding/json writes it, HTML escaping
// included.
func jsonLen(v any) (int64, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return 0, err
	}
	return int64(len(b)), nil
}

// Plan partitions files into chunks whose estimated request size stays
// within cfg.Ceiling.
//
// The walk is greedy and stable: files keep their submission order, and a
// new chunk is started only when the next file does not fit into the
// current one. A file that does not fit even into an empty chunk fails the
// whole plan with [ErrFileTooLarge]; no chunk is returned in that case.
func Plan(files []models.EncodedFile, cfg PlanConfig) ([]models.Chunk, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	estimates := make([]int64, len(files))
	for i, f := range files {
		overhead, err := fileOverhead(f.FileDescriptor, cfg.PerFileOverhead)
		if err != nil {
			return nil, NewValidationError(err, f.Name,
				fmt.Sprintf("print options of %q cannot be sent", f.Name))
		}

		estimates[i] = int64(base64.StdEncoding.EncodedLen(int(f.Size))) + overhead
		if estimates[i]+cfg.MetadataOverhead > cfg.Ceiling {
			limit := maxRawSize(cfg, overhead)
			return nil, NewValidationError(
				fmt.Errorf("%w: %q is %s", ErrFileTooLarge, f.Name, humanize.IBytes(uint64(f.Size))),
				f.Name,
				fmt.Sprintf("file %q (%s) is too large to upload; the maximum per file is %s",
					f.Name, humanize.IBytes(uint64(f.Size)), humanize.IBytes(uint64(limit))),
			)
		}
	}

	chunks := make([]models.Chunk, 0, 1)
	var current []models.EncodedFile
	var currentSize int64
	offset := 0

	for i, f := range files {
		if len(current) > 0 && currentSize+estimates[i]+cfg.MetadataOverhead > cfg.Ceiling {
			chunks = append(chunks, newChunk(current, currentSize+cfg.MetadataOverhead, offset))
			offset += len(current)
			current = nil
			currentSize = 0
		}
		current = append(current, f)
		currentSize += estimates[i]
	}

	if len(current) > 0 {
		chunks = append(chunks, newChunk(current, currentSize+cfg.MetadataOverhead, offset))
	}

	return chunks, nil
}

func newChunk(files []models.EncodedFile, size int64, offset int) models.Chunk {
	return models.Chunk{Files: files, EstimatedEncodedSize: size, Offset: offset}
}
