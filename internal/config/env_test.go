// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_ISSUER":   "test_issuer",
		"APP_TOKEN_DURATION": "1h",
		"APP_VERSION":        "1.0.0",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DATABASE_URI": "notes.db",
		"STORAGE_FILES_USERS_DIR": "/var/data/users",

		"WORKERS_CHECK_INTERVAL": "15m",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/data/users", cfg.Storage.Files.UsersDir)
	assert.Equal(t, 15*time.Minute, cfg.Workers.CheckInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY": "only-key",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "only-key", cfg.App.TokenSignKey)
	assert.Empty(t, cfg.App.TokenIssuer)
	assert.Zero(t, cfg.Server.RequestTimeout)
	assert.Empty(t, cfg.Storage.Files.UsersDir)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnvFrom_IgnoresProcessEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "process:1")

	var cfg StructuredConfig
	require.NoError(t, parseEnvFrom(&cfg, map[string]string{
		"STORAGE_FILES_USERS_DIR": "/srv/notepad/users",
		"WORKERS_CHECK_INTERVAL":  "5m",
	}))

	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Equal(t, "/srv/notepad/users", cfg.Storage.Files.UsersDir)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CheckInterval)
}

func TestParseEnvFrom_BadDuration(t *testing.T) {
	var cfg StructuredConfig
	err := parseEnvFrom(&cfg, map[string]string{"WORKERS_CHECK_INTERVAL": "often"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "notepad settings")
}
