// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",
		"DEBUG":  "true",

		"ADAPTER_ACCESS_TOKEN":        "o.secret",
		"ADAPTER_API_ADDRESS":         "https://api.example.com",
		"ADAPTER_STREAM_ADDRESS":      "wss://stream.example.com/websocket",
		"ADAPTER_REQUEST_TIMEOUT":     "5s",
		"ADAPTER_ENCRYPTION_PASSWORD": "hunter2",

		"FILTER_TARGET_DEVICE_NAME": "Mirror",
		"FILTER_MODE":               "simple",
		"FILTER_EXCLUDE_BROADCAST":  "true",
		"FILTER_SENDER_NAMES":       "Alice,Bob",
		"FILTER_SHOW_DISMISSED":     "true",

		"DISPLAY_NUMBER_OF_NOTIFICATIONS": "4",
		"DISPLAY_FETCH_LIMIT":             "80",
		"DISPLAY_SKIP_INITIAL_LOAD":       "true",

		"FEATURES_DISABLE_SMS":       "true",
		"FEATURES_ONLY_LAST_PER_APP": "true",

		"COMMANDS_ALLOWED_SOURCE_DEVICES": "Phone,Laptop",
		"COMMANDS_TIMEOUT":                "10s",

		"SOUND_MUTE":         "true",
		"SOUND_MIN_INTERVAL": "3s",

		"SERVER_ADDRESS": "localhost:8080",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/mirror.db",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.True(t, cfg.Debug)

	assert.Equal(t, "o.secret", cfg.Adapter.AccessToken)
	assert.Equal(t, "https://api.example.com", cfg.Adapter.APIAddress)
	assert.Equal(t, "wss://stream.example.com/websocket", cfg.Adapter.StreamAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "hunter2", cfg.Adapter.EncryptionPassword)

	assert.Equal(t, "Mirror", cfg.Filter.TargetDeviceName)
	assert.Equal(t, FilterModeSimple, cfg.Filter.Mode)
	assert.True(t, cfg.Filter.ExcludeBroadcast)
	assert.Equal(t, []string{"Alice", "Bob"}, cfg.Filter.SenderNames)
	assert.True(t, cfg.Filter.ShowDismissed)

	assert.Equal(t, 4, cfg.Display.NumberOfNotifications)
	assert.Equal(t, 80, cfg.Display.FetchLimit)
	assert.True(t, cfg.Display.SkipInitialLoad)

	assert.True(t, cfg.Features.DisableSMS)
	assert.True(t, cfg.Features.OnlyLastPerApp)
	assert.False(t, cfg.Features.DisableMirrors)

	assert.Equal(t, []string{"Phone", "Laptop"}, cfg.Commands.AllowedSourceDevices)
	assert.Equal(t, 10*time.Second, cfg.Commands.Timeout)

	assert.True(t, cfg.Sound.Mute)
	assert.Equal(t, 3*time.Second, cfg.Sound.MinInterval)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/var/lib/mirror.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "", cfg.JSONFilePath)
	assert.Equal(t, Adapter{}, cfg.Adapter)
	assert.Equal(t, Server{}, cfg.Server)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"COMMANDS_TIMEOUT": "invalid_duration",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SOUND_MUTE": "maybe",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"DEBUG",

		"ADAPTER_ACCESS_TOKEN",
		"ADAPTER_API_ADDRESS",
		"ADAPTER_STREAM_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_ENCRYPTION_PASSWORD",

		"FILTER_TARGET_DEVICE_NAME",
		"FILTER_MODE",
		"FILTER_EXCLUDE_BROADCAST",
		"FILTER_SENDER_NAMES",
		"FILTER_SHOW_DISMISSED",

		"DISPLAY_NUMBER_OF_NOTIFICATIONS",
		"DISPLAY_FETCH_LIMIT",
		"DISPLAY_SKIP_INITIAL_LOAD",

		"FEATURES_DISABLE_SMS",
		"FEATURES_ONLY_LAST_PER_APP",

		"COMMANDS_ALLOWED_SOURCE_DEVICES",
		"COMMANDS_TIMEOUT",

		"SOUND_MUTE",
		"SOUND_MIN_INTERVAL",

		"SERVER_ADDRESS",
		"STORAGE_DB_DSN",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
