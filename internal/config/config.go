// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// auctions API. It aggregates all sub-configurations and is populated by
// merging defaults with values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the debug switch, log
	// level and the behaviour of the diagnostic /test endpoint.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the service name reported by the dummy service and logs.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Debug appends the panic value to 500 responses of recovered panics
	// and forces the "debug" log level.
	// Env: APP_DEBUG
	Debug bool `env:"DEBUG"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TestSteps is the number of waits performed by GET /test. An explicit
	// 0 from any source disables the waits.
	// Env: APP_TEST_STEPS
	TestSteps int `env:"TEST_STEPS"`

	// TestStepDelay is the duration of each wait performed by GET /test.
	// Env: APP_TEST_STEP_DELAY
	TestStepDelay time.Duration `env:"TEST_STEP_DELAY"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" or "postgresql://" DSN selects PostgreSQL; a "file:"
	// DSN or a path ending in ".db" selects SQLite; an empty DSN keeps
	// listings in memory.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m"). Zero
	// disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Defaults returns the configuration used when no source overrides a field.
// By default the /test endpoint waits three times for three seconds.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:          "auctions-api",
			LogLevel:      "debug",
			TestSteps:     3,
			TestStepDelay: 3 * time.Second,
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
