package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-order-intake/internal/logger"
)

// NewConnectPostgres opens the PostgreSQL order log or journal through the
// pgx stdlib driver. Only host and database name are logged, never the DSN.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("invalid postgres dsn")
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}

	conn := stdlib.OpenDB(*connCfg)

	// один клиент или dev-сервер, большой пул не нужен
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).
			Str("func", "NewConnectPostgres").
			Str("host", connCfg.Host).
			Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	log.Info().
		Str("func", "NewConnectPostgres").
		Str("host", connCfg.Host).
		Str("database", connCfg.Database).
		Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}, nil
}
