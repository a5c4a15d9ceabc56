// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variable names come from the
// `env`/`envPrefix` tags of [StructuredConfig], for example
// ADAPTER_ENDPOINT_URL, UPLOAD_CEILING or STORAGE_DB_DATABASE_URI. Sizes
// accept the same "30MB" syntax as flags through [ByteSize].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
