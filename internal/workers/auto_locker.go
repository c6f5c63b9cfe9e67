// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/service"
)

// AutoLocker locks the journal once it has seen no activity for idleAfter.
// Locking drops the passphrase from memory and revokes the session token.
type AutoLocker struct {
	journal   service.JournalService
	interval  time.Duration
	idleAfter time.Duration

	logger *logger.Logger
}

func NewAutoLocker(journal service.JournalService, interval, idleAfter time.Duration, logger *logger.Logger) *AutoLocker {
	return &AutoLocker{
		journal:   journal,
		interval:  interval,
		idleAfter: idleAfter,
		logger:    logger,
	}
}

// Run checks the journal every interval. A non-positive interval or idle
// period disables the worker.
func (a *AutoLocker) Run(ctx context.Context) {
	if a.interval <= 0 || a.idleAfter <= 0 {
		a.logger.Info().Str("func", "AutoLocker.Run").Msg("auto-lock disabled")
		return
	}

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	ctx = a.logger.WithContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.journal.LockIfIdle(ctx, a.idleAfter) {
				a.logger.Info().Str("func", "AutoLocker.Run").Dur("idle_after", a.idleAfter).Msg("journal auto-locked")
			}
		}
	}
}
