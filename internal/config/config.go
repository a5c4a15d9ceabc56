// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// order-intake client and the dev ingestion server. It is populated by
// merging defaults, environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings common to every binary.
	App App `envPrefix:"APP_"`

	// Upload holds the batch planner limits consumed by the client.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Adapter holds the ingestion endpoint the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the submission journal database and the file directory
	// used by the dev ingestion server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the dev ingestion server's listener and limits.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by the health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Upload holds the limits applied by the client before and while planning a
// batch.
type Upload struct {
	// Ceiling is the maximum size of one chunk's JSON request body
	// (e.g. "30MB"). It must stay below the endpoint's own request limit.
	// Env: UPLOAD_CEILING
	Ceiling ByteSize `env:"CEILING"`

	// MaxFiles is the maximum number of files accepted in one batch.
	// Env: UPLOAD_MAX_FILES
	MaxFiles int `env:"MAX_FILES"`

	// PerFileOverhead is the structural JSON overhead added to every
	// file's encoded length when estimating chunk sizes.
	// Env: UPLOAD_PER_FILE_OVERHEAD
	PerFileOverhead ByteSize `env:"PER_FILE_OVERHEAD"`
}

// Adapter holds the outbound connection settings of the client.
type Adapter struct {
	// EndpointURL is the ingestion endpoint (e.g. a deployed Apps Script
	// web app URL, or http://localhost:8080/ for the dev server).
	// Env: ADAPTER_ENDPOINT_URL
	EndpointURL string `env:"ENDPOINT_URL"`

	// RequestTimeout bounds a single chunk request (e.g. "2m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups persistence settings.
type Storage struct {
	// DB holds the submission journal connection.
	DB DB `envPrefix:"DB_"`

	// Files holds the dev ingestion server's file directory.
	Files Files `envPrefix:"FILES_"`
}

// DB holds the submission journal database settings.
type DB struct {
	// DSN selects the backend: a "postgres://" URI uses pgx, anything else
	// is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings of the dev ingestion server.
type Files struct {
	// Dir is where accepted files are written, one sub-directory per order.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// Server holds settings of the dev ingestion server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxRequestSize rejects larger request bodies with 413.
	// Env: SERVER_MAX_REQUEST_SIZE
	MaxRequestSize ByteSize `env:"MAX_REQUEST_SIZE"`

	// MaxFileSize rejects larger decoded files as per-file errors.
	// Env: SERVER_MAX_FILE_SIZE
	MaxFileSize ByteSize `env:"MAX_FILE_SIZE"`

	// PublicURL is the base used to build file links in responses.
	// Env: SERVER_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
