package service

import (
	"context"
	"time"

	"github.com/MKhiriev/heart-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// VaultService establishes and verifies the passphrase gate of the journal.
// The passphrase itself is never persisted; a sealed marker proves it.
type VaultService interface {
	// Exists reports whether a well-formed vault record is stored. Malformed
	// records count as absent; only storage faults are returned as errors.
	Exists(ctx context.Context) (bool, error)

	// Load returns the stored record or ErrVaultNotEstablished when there is
	// none (or it is malformed).
	Load(ctx context.Context) (models.VaultRecord, error)

	// Create seals the marker under a key derived from passphrase and
	// persists the new record. It fails with ErrVaultAlreadyEstablished when
	// a vault exists.
	Create(ctx context.Context, passphrase string) (models.VaultRecord, error)

	// Verify reports whether passphrase opens record. Never errors.
	Verify(passphrase string, record models.VaultRecord) bool

	// Unlock is Verify returning the derived key on success, so callers can
	// seal further sections without a second key derivation.
	Unlock(passphrase string, record models.VaultRecord) ([]byte, bool)

	// Save overwrites the stored record.
	Save(ctx context.Context, record models.VaultRecord) error
}

// NoteService keeps the note book sealed inside the vault record. Every
// operation decrypts the whole book and every mutation re-seals it with a
// fresh iv.
type NoteService interface {
	// LoadAll returns every note. A missing vault, a wrong passphrase or an
	// undecryptable book all yield an empty book; only storage faults error.
	LoadAll(ctx context.Context, passphrase string) (models.NoteBook, error)

	// SaveNote appends a note to date and returns that day's notes.
	SaveNote(ctx context.Context, date, text, passphrase string) ([]models.NoteEntry, error)

	// DeleteNote removes the note with id from date (no-op when absent) and
	// returns that day's notes.
	DeleteNote(ctx context.Context, date, id, passphrase string) ([]models.NoteEntry, error)
}

// Journal is the contract the user interface works against. It is served
// locally by JournalService and remotely by the HTTP adapter.
type Journal interface {
	IsVaultEstablished(ctx context.Context) (bool, error)
	CreateOrVerify(ctx context.Context, passphrase string) (models.Outcome, error)
	LoadAllNotes(ctx context.Context) (models.NoteBook, error)
	SaveNoteForDate(ctx context.Context, date, text string) ([]models.NoteEntry, error)
	DeleteNote(ctx context.Context, date, id string) ([]models.NoteEntry, error)
	Lock(ctx context.Context) error
}

// JournalService is a Journal that remembers the unlocked passphrase in
// memory and serialises all operations.
type JournalService interface {
	Journal

	// IsUnlocked reports whether a passphrase is currently held.
	IsUnlocked() bool

	// LastActivity is the time of the last successful unlock or note
	// operation. Zero while locked.
	LastActivity() time.Time

	// SessionID identifies the current unlocked session. It changes on
	// every unlock and is cleared by Lock.
	SessionID() (string, bool)

	// LockIfIdle locks the journal when it has been idle for at least idle
	// and reports whether it did.
	LockIfIdle(ctx context.Context, idle time.Duration) bool
}

// SessionService issues and checks the bearer tokens of the HTTP API.
type SessionService interface {
	CreateToken(ctx context.Context, sessionID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
