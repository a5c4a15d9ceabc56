package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/models"
	"github.com/shopspring/decimal"
)

// submissionRepository is the SQL implementation of [SubmissionRepository].
// Chunk rows live in "order_chunks", their uploaded files in "order_files".
// Queries are built with squirrel so the same code serves PostgreSQL and
// SQLite.
type submissionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by db.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Str("dialect", db.dialect.String()).Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// SaveChunk implements [SubmissionRepository]. The chunk upsert, the removal
// of files stored by an earlier attempt and the insert of the new files run
// in one transaction. A retryable driver error (see [ClassifyPgError])
// triggers exactly one more attempt.
func (r *submissionRepository) SaveChunk(ctx context.Context, record models.ChunkRecord) error {
	log := logger.FromContext(ctx)

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	err := r.saveChunk(ctx, record)
	if err != nil && r.db.retryable(err) {
		log.Warn().Err(err).
			Str("func", "*submissionRepository.SaveChunk").
			Str("order_id", record.OrderID).
			Msg("retrying chunk save")
		err = r.saveChunk(ctx, record)
	}
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.SaveChunk").
			Str("order_id", record.OrderID).
			Int("chunk_index", record.ChunkIndex).
			Msg("error saving chunk")
		return err
	}

	return nil
}

func (r *submissionRepository) saveChunk(ctx context.Context, record models.ChunkRecord) error {
	upsertQuery, upsertArgs, err := r.buildUpsertChunkQuery(record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := r.db.dialect.builder().
		Delete("order_files").
		Where(sq.Eq{"order_id": record.OrderID, "chunk_index": record.ChunkIndex}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
		return fmt.Errorf("%w: upsert chunk: %w", ErrExecutingStatement, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: delete chunk files: %w", ErrExecutingStatement, err)
	}

	if len(record.Files) > 0 {
		insertQuery, insertArgs, err := r.buildInsertFilesQuery(record)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: insert chunk files: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *submissionRepository) buildUpsertChunkQuery(record models.ChunkRecord) (string, []any, error) {
	return r.db.dialect.builder().
		Insert("order_chunks").
		Columns(
			"order_id",
			"chunk_index",
			"total_chunks",
			"total",
			"vpa",
			"uploaded_count",
			"total_count",
			"error_kind",
			"error_message",
			"created_at",
		).
		Values(
			record.OrderID,
			record.ChunkIndex,
			record.TotalChunks,
			record.Total.String(),
			record.VPA,
			record.UploadedCount,
			record.TotalCount,
			record.ErrorKind,
			record.ErrorMessage,
			record.CreatedAt,
		).
		Suffix(`ON CONFLICT (order_id, chunk_index) DO UPDATE SET
			total_chunks = excluded.total_chunks,
			total = excluded.total,
			vpa = excluded.vpa,
			uploaded_count = excluded.uploaded_count,
			total_count = excluded.total_count,
			error_kind = excluded.error_kind,
			error_message = excluded.error_message,
			created_at = excluded.created_at`).
		ToSql()
}

func (r *submissionRepository) buildInsertFilesQuery(record models.ChunkRecord) (string, []any, error) {
	insert := r.db.dialect.builder().
		Insert("order_files").
		Columns(
			"order_id",
			"chunk_index",
			"position",
			"name",
			"file_id",
			"web_view_link",
			"web_content_link",
			"size",
			"mime_type",
		)
	for i, f := range record.Files {
		insert = insert.Values(
			record.OrderID,
			record.ChunkIndex,
			i,
			f.Name,
			f.FileID,
			f.WebViewLink,
			f.WebContentLink,
			f.Size,
			f.MimeType,
		)
	}
	return insert.ToSql()
}

// FindOrder implements [SubmissionRepository]. Amount and VPA come from the
// most recent chunk; ChunksStored counts chunks without an error.
func (r *submissionRepository) FindOrder(ctx context.Context, orderID string) (models.OrderRecord, error) {
	log := logger.FromContext(ctx)

	chunksQuery, chunksArgs, err := r.db.dialect.builder().
		Select(
			"chunk_index",
			"total_chunks",
			"total",
			"vpa",
			"uploaded_count",
			"error_message",
			"created_at",
		).
		From("order_chunks").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at", "chunk_index").
		ToSql()
	if err != nil {
		return models.OrderRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, chunksQuery, chunksArgs...)
	if err != nil {
		log.Err(err).Str("func", "*submissionRepository.FindOrder").Msg("error querying chunks")
		return models.OrderRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	order := models.OrderRecord{OrderID: orderID, Files: []models.UploadedFileRef{}}
	found := false
	for rows.Next() {
		var (
			chunkIndex, totalChunks, uploaded int
			total, vpa, errorMessage          string
			createdAt                         time.Time
		)
		if err = rows.Scan(&chunkIndex, &totalChunks, &total, &vpa, &uploaded, &errorMessage, &createdAt); err != nil {
			return models.OrderRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		amount, parseErr := decimal.NewFromString(total)
		if parseErr != nil {
			return models.OrderRecord{}, fmt.Errorf("%w: total %q: %w", ErrScanningRows, total, parseErr)
		}

		if !found || createdAt.Before(order.CreatedAt) {
			order.CreatedAt = createdAt
		}
		if !createdAt.Before(order.UpdatedAt) {
			order.UpdatedAt = createdAt
			order.Total = amount
			order.VPA = vpa
		}
		found = true

		order.TotalChunks = max(order.TotalChunks, totalChunks)
		order.UploadedCount += uploaded
		if errorMessage == "" {
			order.ChunksStored++
		} else {
			order.LastError = errorMessage
		}
	}
	if err = rows.Err(); err != nil {
		return models.OrderRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	if !found {
		return models.OrderRecord{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}

	order.Files, err = r.findFiles(ctx, orderID)
	if err != nil {
		return models.OrderRecord{}, err
	}

	return order, nil
}

func (r *submissionRepository) findFiles(ctx context.Context, orderID string) ([]models.UploadedFileRef, error) {
	query, args, err := r.db.dialect.builder().
		Select(
			"name",
			"file_id",
			"web_view_link",
			"web_content_link",
			"size",
			"mime_type",
		).
		From("order_files").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("chunk_index", "position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.UploadedFileRef, 0)
	for rows.Next() {
		var (
			f              models.UploadedFileRef
			webContentLink sql.NullString
		)
		if err = rows.Scan(&f.Name, &f.FileID, &f.WebViewLink, &webContentLink, &f.Size, &f.MimeType); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		f.WebContentLink = webContentLink.String
		files = append(files, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}
