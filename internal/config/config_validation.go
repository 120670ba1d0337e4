// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid...
// sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TestSteps < 0 || cfg.App.TestStepDelay < 0 {
		return ErrInvalidAppConfigs
	}

	if strings.TrimSpace(cfg.Storage.DB.DSN) != cfg.Storage.DB.DSN {
		return ErrInvalidStorageConfigs
	}

	return nil
}
