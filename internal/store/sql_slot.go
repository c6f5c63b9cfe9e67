// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

const slotsTable = "slots"

// sqlRetryBackoff bounds how often a transient driver error is retried.
var sqlRetryBackoff = func() retry.Backoff {
	return retry.WithMaxRetries(2, retry.NewConstant(50*time.Millisecond))
}

type sqlSlotStorage struct {
	db  *DB
	now func() time.Time
}

// NewSQLSlotStorage returns a [SlotStorage] over the slots table of db. The
// schema must already be migrated.
func NewSQLSlotStorage(db *DB) SlotStorage {
	return &sqlSlotStorage{db: db, now: time.Now}
}

func (s *sqlSlotStorage) Load(ctx context.Context, slot string) ([]byte, error) {
	if slot == "" {
		return nil, ErrEmptySlotName
	}

	query, args, err := sq.Select("payload").
		From(slotsTable).
		Where(sq.Eq{"name": slot}).
		PlaceholderFormat(s.db.placeholder).
		ToSql()
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlSlotStorage.Load").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery, err)
	}

	var payload string
	err = s.withRetry(ctx, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlSlotStorage.Load").Str("slot", slot).Msg("error selecting slot")
		return nil, fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingQuery, err)
	}

	return []byte(payload), nil
}

func (s *sqlSlotStorage) Store(ctx context.Context, slot string, payload []byte) error {
	if slot == "" {
		return ErrEmptySlotName
	}

	// ON CONFLICT ... excluded is understood by both SQLite and PostgreSQL
	query, args, err := sq.Insert(slotsTable).
		Columns("name", "payload", "updated_at").
		Values(slot, string(payload), s.now().UTC()).
		Suffix("ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		PlaceholderFormat(s.db.placeholder).
		ToSql()
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlSlotStorage.Store").Msg("error building upsert query")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrBuildingSQLQuery, err)
	}

	err = s.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		s.db.logger.Err(err).Str("func", "sqlSlotStorage.Store").Str("slot", slot).Msg("error upserting slot")
		return fmt.Errorf("%w: %w: %w", ErrStorageUnavailable, ErrExecutingStatement, err)
	}

	s.db.logger.Debug().Str("func", "sqlSlotStorage.Store").Str("slot", slot).Msg("slot persisted")
	return nil
}

func (s *sqlSlotStorage) Close() error {
	return s.db.Close()
}

// withRetry runs fn, repeating it while the backend classifies the failure
// as transient.
func (s *sqlSlotStorage) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	return retry.Do(ctx, sqlRetryBackoff(), func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if s.db.errorClassificator != nil && s.db.errorClassificator.Classify(err) == Retryable {
			s.db.logger.Warn().Err(err).Str("func", "sqlSlotStorage.withRetry").Msg("retrying transient database error")
			return retry.RetryableError(err)
		}
		return err
	})
}
