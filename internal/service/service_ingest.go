package service

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-order-intake/internal/config"
	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/internal/store"
	"github.com/MKhiriev/go-order-intake/internal/upload"
	"github.com/MKhiriev/go-order-intake/internal/utils"
	"github.com/MKhiriev/go-order-intake/internal/validators"
	"github.com/MKhiriev/go-order-intake/models"
)

// IDGenerator produces file ids.
type IDGenerator interface {
	Generate() string
}

type ingestService struct {
	repository store.SubmissionRepository
	files      store.FileStorage

	ids       IDGenerator
	validator validators.Validator

	maxFileSize int64
	publicURL   string

	now    func() time.Time
	logger *logger.Logger
}

func NewIngestService(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) IngestService {
	return &ingestService{
		repository:  storages.SubmissionRepository,
		files:       storages.FileStorage,
		ids:         utils.NewUUIDGenerator(),
		validator:   validators.NewOrderValidator(),
		maxFileSize: cfg.MaxFileSize.Int64(),
		publicURL:   strings.TrimRight(cfg.PublicURL, "/"),
		now:         time.Now,
		logger:      logger,
	}
}

func (s *ingestService) IngestChunk(ctx context.Context, request models.ChunkRequest) (models.ChunkResult, error) {
	log := logger.FromContext(ctx)
	orderID := request.OrderData.OrderID

	result := models.ChunkResult{
		Success:    true,
		Files:      make([]models.UploadedFileRef, 0, len(request.Files)),
		TotalCount: len(request.Files),
	}

	for i, file := range request.Files {
		ref, rejected, err := s.storeFile(ctx, orderID, file)
		if err != nil {
			log.Err(err).Str("func", "*ingestService.IngestChunk").Str("order_id", orderID).Msg("error storing file")
			return models.ChunkResult{}, fmt.Errorf("store file %q: %w", file.Name, err)
		}
		if rejected != nil {
			result.Errors = append(result.Errors, models.PerFileError{Index: i, Name: file.Name, Error: rejected.Error()})
			continue
		}
		result.Files = append(result.Files, ref)
	}
	result.UploadedCount = len(result.Files)

	record := models.ChunkRecord{
		OrderID:       orderID,
		ChunkIndex:    request.OrderData.ChunkIndex,
		TotalChunks:   request.OrderData.TotalChunks,
		Total:         request.OrderData.Total,
		VPA:           request.OrderData.VPA,
		UploadedCount: result.UploadedCount,
		TotalCount:    result.TotalCount,
		Files:         result.Files,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repository.SaveChunk(ctx, record); err != nil {
		return models.ChunkResult{}, fmt.Errorf("record chunk: %w", err)
	}

	log.Info().
		Str("order_id", orderID).
		Int("chunk", request.OrderData.ChunkIndex+1).
		Int("total_chunks", request.OrderData.TotalChunks).
		Int("uploaded", result.UploadedCount).
		Int("rejected", len(result.Errors)).
		Msg("chunk ingested")

	return result, nil
}

// storeFile decodes and saves one file. A file the endpoint refuses is
// reported through rejected; err is reserved for storage failures.
func (s *ingestService) storeFile(ctx context.Context, orderID string, file models.WireFile) (ref models.UploadedFileRef, rejected error, err error) {
	if vErr := s.validator.Validate(ctx, file); vErr != nil {
		return models.UploadedFileRef{}, vErr, nil
	}

	raw, decodeErr := upload.Decode(file.Data)
	if decodeErr != nil {
		return models.UploadedFileRef{}, errInvalidFileData, nil
	}
	size := int64(len(raw))
	if file.Size != 0 && file.Size != size {
		return models.UploadedFileRef{}, fmt.Errorf("%w: declared %d, got %d", errFileSizeMismatch, file.Size, size), nil
	}
	if s.maxFileSize > 0 && size > s.maxFileSize {
		return models.UploadedFileRef{}, fmt.Errorf("%w of %s (%s)", errFileTooLarge,
			humanize.IBytes(uint64(s.maxFileSize)), humanize.IBytes(uint64(size))), nil
	}

	mimeType := file.MimeType
	if mimeType == "" {
		mimeType = upload.DetectMimeType(file.Name, raw)
	}

	fileID := s.ids.Generate()
	if _, err = s.files.Save(ctx, orderID, fileID, file.Name, raw); err != nil {
		return models.UploadedFileRef{}, nil, err
	}

	link := s.fileURL(orderID, fileID)
	return models.UploadedFileRef{
		Name:           file.Name,
		FileID:         fileID,
		WebViewLink:    link,
		WebContentLink: link + "?download=1",
		Size:           size,
		MimeType:       mimeType,
	}, nil, nil
}

func (s *ingestService) fileURL(orderID, fileID string) string {
	return s.publicURL + "/files/" + url.PathEscape(orderID) + "/" + url.PathEscape(fileID)
}

func (s *ingestService) FindOrder(ctx context.Context, orderID string) (models.OrderRecord, error) {
	record, err := s.repository.FindOrder(ctx, orderID)
	if err != nil {
		return models.OrderRecord{}, mapStoreError(err)
	}
	return record, nil
}

func (s *ingestService) OpenFile(ctx context.Context, orderID, fileID string) (io.ReadCloser, string, error) {
	rc, name, err := s.files.Open(ctx, orderID, fileID)
	if err != nil {
		return nil, "", mapStoreError(err)
	}
	return rc, name, nil
}
