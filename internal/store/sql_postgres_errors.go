package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [submissionRepository.SaveChunk] whether a
// failed chunk save gets its one extra attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors, constraint violations
	// and schema problems. Repeating the save would fail the same way.
	NonRetryable ErrorClassification = iota

	// Retryable covers dropped connections and rolled back transactions.
	// Two clients saving chunks of the same order into one PostgreSQL order
	// log can deadlock on order_files.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the
// PostgreSQL order log.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// Class 08 (connection exception), class 40 (transaction rollback) and
// 57P03 (cannot connect now) are retryable, everything else is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
