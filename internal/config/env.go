// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	testStepsEnv     = "APP_TEST_STEPS"
	testStepDelayEnv = "APP_TEST_STEP_DELAY"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a required variable is
// missing or a value cannot be converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// envZeros reports the zero values cfg received from variables that are
// actually set, as opposed to ones left empty.
func envZeros(cfg *StructuredConfig) explicitZeros {
	return explicitZeros{
		testSteps:     envIsSet(testStepsEnv) && cfg.App.TestSteps == 0,
		testStepDelay: envIsSet(testStepDelayEnv) && cfg.App.TestStepDelay == 0,
	}
}

func envIsSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && strings.TrimSpace(v) != ""
}
