// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"dario.cat/mergo"
)

// Default values used for fields that no configuration source sets.
const (
	DefaultTokenIssuer    = "notepad"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultVersion        = "dev"
	DefaultUsersDir       = "users"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
)

// DefaultConfig returns the configuration used for every field left empty
// by the environment, the flags and the JSON file.
func DefaultConfig() StructuredConfig {
	return StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			Files: Files{UsersDir: DefaultUsersDir},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

func (cfg *StructuredConfig) applyDefaults() error {
	defaults := DefaultConfig()
	return mergo.Merge(cfg, &defaults)
}

// validate checks that the final merged [StructuredConfig] can be used to
// start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.Files.UsersDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.CheckInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
