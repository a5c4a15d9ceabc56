// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig] for values that are wrong
// for every binary. Per-binary requirements live on the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upload.Ceiling < 0 || cfg.Upload.PerFileOverhead < 0 || cfg.Upload.MaxFiles < 0 {
		return ErrInvalidUploadConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.EndpointURL == "" {
		return fmt.Errorf("%w: endpoint URL is required", ErrInvalidAdapterConfigs)
	}
	u, err := url.Parse(cfg.EndpointURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: endpoint URL %q is not absolute", ErrInvalidAdapterConfigs, cfg.EndpointURL)
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Ceiling <= 0 || cfg.MaxFiles <= 0 {
		return ErrInvalidUploadConfigs
	}
	if cfg.PerFileOverhead >= cfg.Ceiling {
		return fmt.Errorf("%w: per-file overhead %s does not fit ceiling %s",
			ErrInvalidUploadConfigs, cfg.PerFileOverhead, cfg.Ceiling)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.MaxFileSize <= 0 || cfg.MaxRequestSize <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.FilesDir == "" || cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
