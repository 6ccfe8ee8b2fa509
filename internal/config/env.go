// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// struct tags declared on [StructuredConfig] and its nested types.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing env variables: %w", err)
	}

	return nil
}
