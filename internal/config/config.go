// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source.
const (
	DefaultKDFIterations     = 150_000
	DefaultSlotName          = "heart_record"
	DefaultStorageDSN        = "file:heart_journal.json"
	DefaultHTTPAddress       = "localhost:8080"
	DefaultTokenIssuer       = "heart-journal"
	DefaultTokenDuration     = 12 * time.Hour
	DefaultAutoLockAfter     = 15 * time.Minute
	DefaultRequestTimeout    = 30 * time.Second
	DefaultLockCheckInterval = time.Minute
)

// StructuredConfig is the top-level configuration container of the journal.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds key-derivation, session and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage selects the backend holding the vault record.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal client uses to reach a remote
	// journal server. An empty address means the client works locally.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// KDFIterations is the PBKDF2 work factor used when a new vault is
	// created. Existing vaults keep the count recorded at creation.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// SlotName is the storage slot that holds the vault record.
	// Env: APP_SLOT_NAME
	SlotName string `env:"SLOT_NAME"`

	// TokenSignKey signs session JWTs. When empty a random key is generated
	// at startup, which invalidates sessions on restart.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AutoLockAfter locks an unlocked journal after this much inactivity.
	// Env: APP_AUTO_LOCK_AFTER
	AutoLockAfter time.Duration `env:"AUTO_LOCK_AFTER"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the vault storage settings.
type Storage struct {
	// DSN selects the backend:
	//   - "memory"                      volatile, for tests and demos
	//   - "file:<path>" or a bare path  JSON file
	//   - "sqlite:<path>"               SQLite database
	//   - "postgres://..."              PostgreSQL
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the remote journal server settings used by the client.
type Adapter struct {
	// HTTPAddress is the base address of the journal server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// LockCheckInterval is how often the auto-lock worker checks for an idle
	// session.
	// Env: WORKERS_LOCK_CHECK_INTERVAL
	LockCheckInterval time.Duration `env:"LOCK_CHECK_INTERVAL"`
}

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			KDFIterations: DefaultKDFIterations,
			SlotName:      DefaultSlotName,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			AutoLockAfter: DefaultAutoLockAfter,
			LogLevel:      "info",
		},
		Storage: Storage{DSN: DefaultStorageDSN},
		Server:  Server{HTTPAddress: DefaultHTTPAddress, RequestTimeout: DefaultRequestTimeout},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Workers: Workers{LockCheckInterval: DefaultLockCheckInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. Later sources override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		build()
}
