package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] the terminal client needs.
type ClientConfig struct {
	// KDFIterations is used when the client creates a local vault.
	KDFIterations int
	// SlotName is the local storage slot of the vault record.
	SlotName string
	// LogLevel is a zerolog level name.
	LogLevel string
	// StorageDSN selects the local backend. Ignored in remote mode.
	StorageDSN string
	// RemoteAddress is the journal server address; empty means local mode.
	RemoteAddress string
	// RequestTimeout bounds outbound requests in remote mode.
	RequestTimeout time.Duration
}

// Remote reports whether the client talks to a journal server.
func (c ClientConfig) Remote() bool {
	return c.RemoteAddress != ""
}

// GetClientConfig builds the client view from the merged structured
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return clientConfigFrom(cfg), nil
}

func clientConfigFrom(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		KDFIterations:  cfg.App.KDFIterations,
		SlotName:       cfg.App.SlotName,
		LogLevel:       cfg.App.LogLevel,
		StorageDSN:     cfg.Storage.DSN,
		RemoteAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}
}
