package config

import (
	"time"

	"github.com/docker/go-units"
)

// Defaults used when no source sets a value.
const (
	DefaultCeiling         = ByteSize(30 * units.MiB)
	DefaultMaxFiles        = 50
	DefaultPerFileOverhead = ByteSize(256)
	DefaultRequestTimeout  = 2 * time.Minute
	DefaultLogLevel        = "info"

	DefaultServerAddress  = "localhost:8080"
	DefaultMaxRequestSize = ByteSize(50 * units.MiB)
	DefaultMaxFileSize    = ByteSize(25 * units.MiB)
	DefaultFilesDir       = "uploads"
	DefaultJournalDSN     = "order-intake.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Upload: Upload{
			Ceiling:         DefaultCeiling,
			MaxFiles:        DefaultMaxFiles,
			PerFileOverhead: DefaultPerFileOverhead,
		},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Storage: Storage{
			DB:    DB{DSN: DefaultJournalDSN},
			Files: Files{Dir: DefaultFilesDir},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxRequestSize: DefaultMaxRequestSize,
			MaxFileSize:    DefaultMaxFileSize,
		},
	}
}
