// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.KDFIterations <= 0 {
		return fmt.Errorf("%w: kdf iterations must be positive, got %d", ErrInvalidAppConfigs, cfg.App.KDFIterations)
	}
	if cfg.App.SlotName == "" {
		return fmt.Errorf("%w: empty slot name", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 || cfg.App.AutoLockAfter < 0 {
		return fmt.Errorf("%w: negative duration", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.LockCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
