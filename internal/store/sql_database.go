package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-order-intake/internal/logger"
	"github.com/MKhiriev/go-order-intake/migrations"
)

// Dialect is the SQL flavour behind a [DB].
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// DialectFromDSN picks the dialect from the DSN: "postgres://" and
// "postgresql://" URIs select PostgreSQL, anything else is a SQLite path.
func DialectFromDSN(dsn string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// builder returns a squirrel statement builder with the dialect's
// placeholder format.
func (d Dialect) builder() sq.StatementBuilderType {
	if d == DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func (d Dialect) migrationDialect() migrations.Dialect {
	if d == DialectPostgres {
		return migrations.Postgres
	}
	return migrations.SQLite
}

type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Open connects to the database selected by dsn and applies migrations.
func Open(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, ErrUnsupportedDSN
	}

	var (
		db  *DB
		err error
	)
	switch DialectFromDSN(dsn) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, dsn, log)
	default:
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return db, nil
}

func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect.migrationDialect())
}

// retryable reports whether err is worth a second attempt.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
