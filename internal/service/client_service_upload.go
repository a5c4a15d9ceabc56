// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-order-intake/internal/adapter"
	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/store"
	"github.com/MKhiriev/go-order-intake/internal/upload"
	"github.com/MKhiriev/go-order-intake/internal/validators"
	"github.com/MKhiriev/go-order-intake/models"
)

type clientUploadService struct {
	adapter   adapter.IngestionAdapter
	journal   store.SubmissionRepository
	validator validators.Validator

	ceiling         int64
	perFileOverhead int64
	maxFiles        int

	now    func() time.Time
	logger *logger.Logger
}

// NewClientUploadService builds the upload orchestrator. journal may be nil.
func NewClientUploadService(
	ingestionAdapter adapter.IngestionAdapter,
	journal store.SubmissionRepository,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) ClientUploadService {
	return &clientUploadService{
		adapter:         ingestionAdapter,
		journal:         journal,
		validator:       validators.NewOrderValidator(),
		ceiling:         cfg.Ceiling.Int64(),
		perFileOverhead: cfg.PerFileOverhead.Int64(),
		maxFiles:        cfg.MaxFiles,
		now:             time.Now,
		logger:          logger,
	}
}

func (s *clientUploadService) UploadBatch(
	ctx context.Context,
	files []models.FileDescriptor,
	order models.OrderMetadata,
	onProgress upload.ProgressFunc,
) (models.BatchResult, error) {
	if err := s.validate(ctx, files, order); err != nil {
		return models.BatchResult{}, err
	}

	encoded := upload.EncodeAll(files)

	overhead, err := metadataOverhead(order, len(files))
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("measure request envelope: %w", err)
	}

	chunks, err := upload.Plan(encoded, upload.PlanConfig{
		Ceiling:          s.ceiling,
		MetadataOverhead: overhead,
		PerFileOverhead:  s.perFileOverhead,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("order_id", order.OrderID).Msg("batch rejected by planner")
		return models.BatchResult{}, err
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Int("files", len(files)).
		Int("chunks", len(chunks)).
		Str("ceiling", humanize.IBytes(uint64(s.ceiling))).
		Msg("uploading batch")

	acc := upload.NewBatchResult(len(files), len(chunks))
	for i, chunk := range chunks {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Info().Str("order_id", order.OrderID).Int("chunk", i).Msg("batch canceled")
			return acc, upload.NewCanceledError(ctxErr, i)
		}

		result, sendErr := s.adapter.SendChunk(ctx, chunk, order, i, len(chunks))
		if sendErr != nil {
			var uploadErr *upload.Error
			if ctxErr := ctx.Err(); ctxErr != nil {
				uploadErr = upload.NewCanceledError(ctxErr, i)
			} else {
				uploadErr = upload.NewTransportFailure(adapter.ToFailure(sendErr), i)
			}

			s.logger.Err(sendErr).
				Str("order_id", order.OrderID).
				Int("chunk", i).
				Str("kind", uploadErr.Kind.String()).
				Int("uploaded", acc.UploadedCount).
				Msg("chunk failed, aborting batch")
			s.journalChunk(ctx, order, chunk, i, len(chunks), models.ChunkResult{}, uploadErr)

			return acc, uploadErr
		}

		acc = upload.Fold(acc, chunk, result)
		s.journalChunk(ctx, order, chunk, i, len(chunks), result, nil)

		if len(result.Errors) > 0 {
			s.logger.Warn().
				Str("order_id", order.OrderID).
				Int("chunk", i).
				Int("failed_files", len(result.Errors)).
				Msg("chunk stored with per-file errors")
		}
		if onProgress != nil {
			onProgress(upload.ProgressOf(acc, i))
		}
	}

	s.logger.Info().
		Str("order_id", order.OrderID).
		Int("uploaded", acc.UploadedCount).
		Int("total", acc.TotalCount).
		Msg("batch uploaded")

	return acc, nil
}

// validate runs every check that needs neither encoding nor network.
func (s *clientUploadService) validate(ctx context.Context, files []models.FileDescriptor, order models.OrderMetadata) error {
	if len(files) == 0 {
		return upload.NewValidationError(upload.ErrNoFiles, "", "no files selected; add at least one file to the order")
	}
	if s.maxFiles > 0 && len(files) > s.maxFiles {
		return upload.NewValidationError(
			fmt.Errorf("%w: %d selected, limit %d", upload.ErrTooManyFiles, len(files), s.maxFiles),
			"",
			fmt.Sprintf("too many files: %d selected, at most %d can be uploaded per order", len(files), s.maxFiles),
		)
	}
	if err := s.validator.Validate(ctx, order); err != nil {
		return upload.NewValidationError(
			fmt.Errorf("%w: %w", upload.ErrInvalidOrder, err),
			"",
			fmt.Sprintf("invalid order details: %s", err),
		)
	}
	return nil
}

// journalChunk records the chunk outcome in the local journal. Journal
// failures are logged and never fail the batch.
func (s *clientUploadService) journalChunk(
	ctx context.Context,
	order models.OrderMetadata,
	chunk models.Chunk,
	chunkIndex, totalChunks int,
	result models.ChunkResult,
	uploadErr *upload.Error,
) {
	if s.journal == nil {
		return
	}

	record := models.ChunkRecord{
		OrderID:       order.OrderID,
		ChunkIndex:    chunkIndex,
		TotalChunks:   totalChunks,
		Total:         order.Total,
		VPA:           order.VPA,
		UploadedCount: result.UploadedCount,
		TotalCount:    result.TotalCount,
		Files:         result.Files,
		CreatedAt:     s.now().UTC(),
	}
	if record.TotalCount == 0 {
		record.TotalCount = len(chunk.Files)
	}
	if uploadErr != nil {
		record.ErrorKind = uploadErr.Kind.String()
		record.ErrorMessage = uploadErr.Message
	}

	// a canceled batch is still journaled
	if err := s.journal.SaveChunk(context.WithoutCancel(ctx), record); err != nil {
		s.logger.Warn().Err(err).
			Str("order_id", order.OrderID).
			Int("chunk", chunkIndex).
			Msg("error journaling chunk")
	}
}

// widestTimestamp marshals to the longest RFC 3339 form a request can carry:
// a four digit year and all nine fractional digits.
var widestTimestamp = time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)

// metadataOverhead measures the request body without files. Chunk index,
// count and timestamp are set to their widest values, since each request is
// stamped only when it is sent.
func metadataOverhead(order models.OrderMetadata, fileCount int) (int64, error) {
	envelope, err := json.Marshal(models.ChunkRequest{
		Files:     []models.WireFile{},
		OrderData: order.ForChunk(fileCount, fileCount, widestTimestamp),
	})
	if err != nil {
		return 0, err
	}
	return int64(len(envelope)), nil
}
