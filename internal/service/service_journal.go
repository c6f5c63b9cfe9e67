// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/utils"
	"github.com/MKhiriev/heart-journal/models"
)

// journalService holds the unlocked passphrase in memory for the lifetime of
// a session. All operations take mu, so concurrent callers (HTTP handlers,
// the auto-lock worker) never interleave a read-modify-write of the record.
type journalService struct {
	vault VaultService
	notes NoteService

	now    func() time.Time
	logger *logger.Logger

	mu           sync.Mutex
	passphrase   string
	unlocked     bool
	sessionID    string
	lastActivity time.Time
}

// NewJournalService returns a locked JournalService.
func NewJournalService(vault VaultService, notes NoteService, log *logger.Logger) JournalService {
	return &journalService{
		vault:  vault,
		notes:  notes,
		now:    time.Now,
		logger: log,
	}
}

func (j *journalService) IsVaultEstablished(ctx context.Context) (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.vault.Exists(ctx)
}

// CreateOrVerify adopts passphrase when no vault exists yet, otherwise checks
// it against the stored marker. A rejected attempt leaves the current session
// untouched.
func (j *journalService) CreateOrVerify(ctx context.Context, passphrase string) (models.Outcome, error) {
	log := logger.FromContext(ctx)

	j.mu.Lock()
	defer j.mu.Unlock()

	record, err := j.vault.Load(ctx)
	if err != nil && !isVaultMissing(err) {
		return models.Rejected, err
	}

	if isVaultMissing(err) {
		if _, err = j.vault.Create(ctx, passphrase); err != nil {
			log.Err(err).Str("func", "journalService.CreateOrVerify").Msg("error establishing vault")
			return models.Rejected, err
		}
		j.open(passphrase)
		log.Info().Str("func", "journalService.CreateOrVerify").Msg("vault established and unlocked")
		return models.Established, nil
	}

	if !j.vault.Verify(passphrase, record) {
		log.Info().Str("func", "journalService.CreateOrVerify").Msg("passphrase rejected")
		return models.Rejected, nil
	}

	j.open(passphrase)
	log.Info().Str("func", "journalService.CreateOrVerify").Msg("journal unlocked")
	return models.Unlocked, nil
}

func (j *journalService) LoadAllNotes(ctx context.Context) (models.NoteBook, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.unlocked {
		return nil, ErrLocked
	}
	j.touch()

	return j.notes.LoadAll(ctx, j.passphrase)
}

func (j *journalService) SaveNoteForDate(ctx context.Context, date, text string) ([]models.NoteEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.unlocked {
		return nil, ErrLocked
	}
	j.touch()

	return j.notes.SaveNote(ctx, date, text, j.passphrase)
}

func (j *journalService) DeleteNote(ctx context.Context, date, id string) ([]models.NoteEntry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.unlocked {
		return nil, ErrLocked
	}
	j.touch()

	return j.notes.DeleteNote(ctx, date, id, j.passphrase)
}

func (j *journalService) Lock(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.unlocked {
		logger.FromContext(ctx).Info().Str("func", "journalService.Lock").Msg("journal locked")
	}
	j.close()
	return nil
}

func (j *journalService) IsUnlocked() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.unlocked
}

func (j *journalService) LastActivity() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.lastActivity
}

func (j *journalService) SessionID() (string, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.sessionID, j.unlocked
}

func (j *journalService) LockIfIdle(ctx context.Context, idle time.Duration) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.unlocked || j.now().Sub(j.lastActivity) < idle {
		return false
	}

	logger.FromContext(ctx).Info().
		Str("func", "journalService.LockIfIdle").
		Dur("idle", j.now().Sub(j.lastActivity)).
		Msg("locking idle journal")
	j.close()
	return true
}

// open and close expect mu to be held.
func (j *journalService) open(passphrase string) {
	j.passphrase = passphrase
	j.unlocked = true
	j.sessionID = utils.NewSessionID()
	j.lastActivity = j.now()
}

func (j *journalService) close() {
	j.passphrase = ""
	j.unlocked = false
	j.sessionID = ""
	j.lastActivity = time.Time{}
}

func (j *journalService) touch() {
	j.lastActivity = j.now()
}
