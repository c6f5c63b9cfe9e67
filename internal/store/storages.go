// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/logger"
)

// Backend names a [SlotStorage] implementation.
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// ParseDSN splits dsn into the backend it selects and the backend-specific
// location (file path or connection string).
func ParseDSN(dsn string) (Backend, string, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty dsn", ErrUnsupportedDSN)
	case dsn == "memory" || dsn == ":memory:":
		return BackendMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite:"):
		path := strings.TrimPrefix(dsn, "sqlite:")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty sqlite path", ErrUnsupportedDSN)
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		path := strings.TrimPrefix(dsn, "file:")
		if path == "" {
			return "", "", fmt.Errorf("%w: empty file path", ErrUnsupportedDSN)
		}
		return BackendFile, path, nil
	case strings.Contains(dsn, "://"):
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		return BackendFile, dsn, nil
	}
}

// NewSlotStorage builds the [SlotStorage] selected by cfg.DSN. SQL backends
// are connected and migrated before being returned.
func NewSlotStorage(ctx context.Context, cfg config.Storage, log *logger.Logger) (SlotStorage, error) {
	backend, location, err := ParseDSN(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewSlotStorage").Msg("invalid storage dsn")
		return nil, err
	}

	log.Info().Str("func", "NewSlotStorage").Str("backend", string(backend)).Msg("opening slot storage")

	switch backend {
	case BackendMemory:
		return NewMemorySlotStorage(), nil
	case BackendFile:
		return NewFileSlotStorage(location, log)
	case BackendSQLite:
		db, err := NewConnectSQLite(ctx, location, log)
		if err != nil {
			return nil, err
		}
		return migrated(db)
	case BackendPostgres:
		db, err := NewConnectPostgres(ctx, location, log)
		if err != nil {
			return nil, err
		}
		return migrated(db)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
}

func migrated(db *DB) (SlotStorage, error) {
	if err := db.Migrate(); err != nil {
		db.logger.Err(err).Str("func", "NewSlotStorage").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return NewSQLSlotStorage(db), nil
}
