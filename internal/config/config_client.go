package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration view consumed by the order-intake
// client, assembled from [StructuredConfig].
type ClientConfig struct {
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
	// EndpointURL is the ingestion endpoint every chunk is posted to.
	EndpointURL string
	// RequestTimeout bounds a single chunk request.
	RequestTimeout time.Duration
	// Ceiling is the maximum size of one chunk request body.
	Ceiling ByteSize
	// MaxFiles is the maximum number of files in one batch.
	MaxFiles int
	// PerFileOverhead is added to each file's encoded length when planning.
	PerFileOverhead ByteSize
	// JournalDSN is the local submission journal. Empty disables it.
	JournalDSN string
}

// ServerConfig is the configuration view consumed by the dev ingestion
// server.
type ServerConfig struct {
	Version        string
	LogLevel       string
	HTTPAddress    string
	RequestTimeout time.Duration
	MaxRequestSize ByteSize
	MaxFileSize    ByteSize
	PublicURL      string
	FilesDir       string
	DSN            string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.clientView()
	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the dev server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.serverView()
	return serverCfg, serverCfg.validate()
}

func (cfg *StructuredConfig) clientView() *ClientConfig {
	return &ClientConfig{
		LogLevel:        cfg.App.LogLevel,
		EndpointURL:     cfg.Adapter.EndpointURL,
		RequestTimeout:  cfg.Adapter.RequestTimeout,
		Ceiling:         cfg.Upload.Ceiling,
		MaxFiles:        cfg.Upload.MaxFiles,
		PerFileOverhead: cfg.Upload.PerFileOverhead,
		JournalDSN:      cfg.Storage.DB.DSN,
	}
}

func (cfg *StructuredConfig) serverView() *ServerConfig {
	publicURL := cfg.Server.PublicURL
	if publicURL == "" && cfg.Server.HTTPAddress != "" {
		publicURL = "http://" + cfg.Server.HTTPAddress
	}

	return &ServerConfig{
		Version:        cfg.App.Version,
		LogLevel:       cfg.App.LogLevel,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxRequestSize: cfg.Server.MaxRequestSize,
		MaxFileSize:    cfg.Server.MaxFileSize,
		PublicURL:      publicURL,
		FilesDir:       cfg.Storage.Files.Dir,
		DSN:            cfg.Storage.DB.DSN,
	}
}
