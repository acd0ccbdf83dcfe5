// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged and defaulted [StructuredConfig]
// satisfies all invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.AccessToken) == "" ||
		cfg.Adapter.APIAddress == "" ||
		cfg.Adapter.StreamAddress == "" ||
		cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Filter.Mode != FilterModeStrict && cfg.Filter.Mode != FilterModeSimple {
		return ErrInvalidFilterConfigs
	}

	if cfg.Display.NumberOfNotifications <= 0 ||
		cfg.Display.FetchLimit <= 0 ||
		cfg.Display.MaxHeaderCharacters <= 0 ||
		cfg.Display.MaxMessageCharacters <= 0 {
		return ErrInvalidDisplayConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	return nil
}
