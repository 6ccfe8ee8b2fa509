// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the application cannot start without.
//
// The database DSN and token sign key are hard requirements; everything else
// has a workable default applied here.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return errors.New("database DSN is required")
	}

	if cfg.Auth.TokenSignKey == "" {
		return errors.New("token sign key is required")
	}

	if cfg.Auth.PasswordSecret == "" {
		return errors.New("password encryption secret is required")
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = "localhost:8080"
	}

	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"http://localhost:4200", "http://localhost"}
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = "tecnoscan"
	}

	return nil
}
