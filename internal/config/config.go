// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-push-mirror daemon. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Boolean options are named so that their zero value is the default
// behaviour; a later source can therefore only switch a feature on.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote notification service credentials and
	// endpoints.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Filter holds the push filter pipeline settings.
	Filter Filter `envPrefix:"FILTER_"`

	// Display holds list sizing, fetch and truncation settings.
	Display Display `envPrefix:"DISPLAY_"`

	// Features holds per-source toggles and ephemeral collapse rules.
	Features Features `envPrefix:"FEATURES_"`

	// Commands holds the embedded command channel settings.
	Commands Commands `envPrefix:"COMMANDS_"`

	// Sound holds the audio notification settings.
	Sound Sound `envPrefix:"SOUND_"`

	// Server holds the presentation HTTP surface settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the command journal database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Debug switches the global log level to debug.
	// Env: DEBUG
	Debug bool `env:"DEBUG"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings for the remote notification service.
type Adapter struct {
	// AccessToken authenticates every REST request and the stream.
	// Env: ADAPTER_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// APIAddress is the REST base URL (e.g. "https://api.pushbullet.com").
	// Env: ADAPTER_API_ADDRESS
	APIAddress string `env:"API_ADDRESS"`

	// StreamAddress is the realtime stream base URL; the access token is
	// appended as the last path segment.
	// Env: ADAPTER_STREAM_ADDRESS
	StreamAddress string `env:"STREAM_ADDRESS"`

	// RequestTimeout bounds a single outbound REST request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// EncryptionPassword enables end-to-end decryption of ephemerals when
	// set.
	// Env: ADAPTER_ENCRYPTION_PASSWORD
	EncryptionPassword string `env:"ENCRYPTION_PASSWORD"`
}

// Filter mode values.
const (
	FilterModeStrict = "strict"
	FilterModeSimple = "simple"
)

// Filter holds the push filter pipeline settings.
type Filter struct {
	// TargetDeviceName restricts pushes to the named device when set.
	// Env: FILTER_TARGET_DEVICE_NAME
	TargetDeviceName string `env:"TARGET_DEVICE_NAME"`

	// Mode selects the target filter variant, "strict" or "simple".
	// Env: FILTER_MODE
	Mode string `env:"MODE"`

	// ExcludeBroadcast hides pushes without a target device in strict mode.
	// Env: FILTER_EXCLUDE_BROADCAST
	ExcludeBroadcast bool `env:"EXCLUDE_BROADCAST"`

	// SenderNames is the sender allow-list. Empty disables the filter.
	// Env: FILTER_SENDER_NAMES (comma separated)
	SenderNames []string `env:"SENDER_NAMES" envSeparator:","`

	// ShowDismissed keeps dismissed pushes in the display list.
	// Env: FILTER_SHOW_DISMISSED
	ShowDismissed bool `env:"SHOW_DISMISSED"`
}

// Display holds list sizing and truncation settings.
type Display struct {
	// NumberOfNotifications is the display count.
	// Env: DISPLAY_NUMBER_OF_NOTIFICATIONS
	NumberOfNotifications int `env:"NUMBER_OF_NOTIFICATIONS"`

	// FetchLimit is the per-round history page size. Values above the
	// remote maximum are clamped.
	// Env: DISPLAY_FETCH_LIMIT
	FetchLimit int `env:"FETCH_LIMIT"`

	// MaxHeaderCharacters truncates notification headers.
	// Env: DISPLAY_MAX_HEADER_CHARACTERS
	MaxHeaderCharacters int `env:"MAX_HEADER_CHARACTERS"`

	// MaxMessageCharacters truncates notification bodies.
	// Env: DISPLAY_MAX_MESSAGE_CHARACTERS
	MaxMessageCharacters int `env:"MAX_MESSAGE_CHARACTERS"`

	// SkipInitialLoad disables the history load at session start.
	// Env: DISPLAY_SKIP_INITIAL_LOAD
	SkipInitialLoad bool `env:"SKIP_INITIAL_LOAD"`
}

// Features holds per-source toggles and ephemeral collapse rules.
type Features struct {
	// Env: FEATURES_DISABLE_PUSHES
	DisablePushes bool `env:"DISABLE_PUSHES"`
	// Env: FEATURES_DISABLE_MIRRORS
	DisableMirrors bool `env:"DISABLE_MIRRORS"`
	// Env: FEATURES_DISABLE_SMS
	DisableSMS bool `env:"DISABLE_SMS"`

	// ShowIndividualNotifications keeps mirrors with the same package and
	// title but different bodies as separate entries.
	// Env: FEATURES_SHOW_INDIVIDUAL_NOTIFICATIONS
	ShowIndividualNotifications bool `env:"SHOW_INDIVIDUAL_NOTIFICATIONS"`

	// OnlyLastPerApp keeps a single ephemeral per package.
	// Env: FEATURES_ONLY_LAST_PER_APP
	OnlyLastPerApp bool `env:"ONLY_LAST_PER_APP"`
}

// Commands holds the embedded command channel settings.
type Commands struct {
	// AllowedSourceDevices lists device nicknames allowed to send commands.
	// Empty allows every device.
	// Env: COMMANDS_ALLOWED_SOURCE_DEVICES (comma separated)
	AllowedSourceDevices []string `env:"ALLOWED_SOURCE_DEVICES" envSeparator:","`

	// Env: COMMANDS_SHUTDOWN
	Shutdown string `env:"SHUTDOWN"`
	// Env: COMMANDS_DISPLAY_ON
	DisplayOn string `env:"DISPLAY_ON"`
	// Env: COMMANDS_DISPLAY_OFF
	DisplayOff string `env:"DISPLAY_OFF"`

	// Timeout bounds a single built-in command execution.
	// Env: COMMANDS_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Sound holds the audio notification settings.
type Sound struct {
	// Env: SOUND_MUTE
	Mute bool `env:"MUTE"`
	// File is the audio file played on new notifications. Relative paths
	// resolve against the working directory. Defaults to
	// "sounds/new-message.mp3"; set SOUND_MUTE to turn the sound off.
	// Env: SOUND_FILE
	File string `env:"FILE"`
	// Player is the shell command the file path is appended to.
	// Env: SOUND_PLAYER
	Player string `env:"PLAYER"`
	// MinInterval is the minimum gap between two notification sounds.
	// Env: SOUND_MIN_INTERVAL
	MinInterval time.Duration `env:"MIN_INTERVAL"`
}

// Server holds the presentation HTTP surface settings.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the host patterns allowed to open the event
	// websocket from a browser. Empty allows same-origin requests only.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the command journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite journal.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetMirrorConfig loads, merges, defaults and validates the daemon
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetMirrorConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// EffectiveFetchLimit returns the per-round history page size: the fetch
// limit when a target device filter is configured, the display count
// otherwise, clamped to maxLimit in both cases.
func (cfg *StructuredConfig) EffectiveFetchLimit(maxLimit int) int {
	limit := cfg.Display.FetchLimit
	if cfg.Filter.TargetDeviceName == "" {
		limit = cfg.Display.NumberOfNotifications
	}
	return min(limit, maxLimit)
}
