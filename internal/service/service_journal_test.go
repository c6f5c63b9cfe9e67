package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/crypto"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/mock"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/models"
)

func newTestJournal(t *testing.T, storage store.SlotStorage) *journalService {
	t.Helper()
	return NewLocalJournal(storage, testAppConfig(), logger.Nop()).(*journalService)
}

// TestJournal_RoseScenario walks the documented end-to-end scenario with the
// production work factor.
func TestJournal_RoseScenario(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemorySlotStorage()
	cfg := config.App{KDFIterations: config.DefaultKDFIterations, SlotName: testSlot}
	journal := NewLocalJournal(storage, cfg, logger.Nop())

	established, err := journal.IsVaultEstablished(ctx)
	require.NoError(t, err)
	assert.False(t, established)

	outcome, err := journal.CreateOrVerify(ctx, "rose123")
	require.NoError(t, err)
	assert.Equal(t, models.Established, outcome)
	assert.Equal(t, 150000, storedRecord(t, storage).Iterations)

	established, err = journal.IsVaultEstablished(ctx)
	require.NoError(t, err)
	assert.True(t, established)

	list, err := journal.SaveNoteForDate(ctx, "2024-05-01", "first entry")
	require.NoError(t, err)
	require.Len(t, list, 1)

	book, err := journal.LoadAllNotes(ctx)
	require.NoError(t, err)
	require.Len(t, book, 1)
	require.Len(t, book["2024-05-01"], 1)
	assert.Equal(t, "first entry", book["2024-05-01"][0].Text)

	keyChain := crypto.NewKeyChainService()
	notes := NewNoteService(NewVaultService(storage, keyChain, cfg, logger.Nop()), keyChain, logger.Nop())
	wrong, err := notes.LoadAll(ctx, "wrong")
	require.NoError(t, err)
	assert.Equal(t, models.NoteBook{}, wrong)
}

func TestJournal_CreateOrVerifyOutcomes(t *testing.T) {
	ctx := context.Background()
	storage := store.NewMemorySlotStorage()
	journal := newTestJournal(t, storage)

	outcome, err := journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Established, outcome)

	require.NoError(t, journal.Lock(ctx))

	for _, wrong := range []string{"abcd", "ABC", ""} {
		outcome, err = journal.CreateOrVerify(ctx, wrong)
		require.NoError(t, err)
		assert.Equal(t, models.Rejected, outcome, "passphrase %q", wrong)
		assert.False(t, journal.IsUnlocked())
	}

	outcome, err = journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Unlocked, outcome)
	assert.True(t, journal.IsUnlocked())

	// a second journal over the same storage sees the vault
	other := newTestJournal(t, storage)
	outcome, err = other.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Unlocked, outcome)
}

func TestJournal_LockedOperations(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t, store.NewMemorySlotStorage())

	_, err := journal.LoadAllNotes(ctx)
	assert.ErrorIs(t, err, ErrLocked)

	_, err = journal.SaveNoteForDate(ctx, "2024-05-01", "text")
	assert.ErrorIs(t, err, ErrLocked)

	_, err = journal.DeleteNote(ctx, "2024-05-01", "id")
	assert.ErrorIs(t, err, ErrLocked)

	_, ok := journal.SessionID()
	assert.False(t, ok)
	assert.True(t, journal.LastActivity().IsZero())
}

func TestJournal_RejectedAttemptKeepsSession(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t, store.NewMemorySlotStorage())

	_, err := journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	before, ok := journal.SessionID()
	require.True(t, ok)

	outcome, err := journal.CreateOrVerify(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, models.Rejected, outcome)

	after, ok := journal.SessionID()
	assert.True(t, ok)
	assert.Equal(t, before, after)

	_, err = journal.SaveNoteForDate(ctx, "2024-05-01", "still mine")
	assert.NoError(t, err)
}

func TestJournal_LockRotatesSession(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t, store.NewMemorySlotStorage())

	_, err := journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	first, _ := journal.SessionID()

	require.NoError(t, journal.Lock(ctx))
	assert.False(t, journal.IsUnlocked())
	assert.Empty(t, journal.passphrase)
	_, ok := journal.SessionID()
	assert.False(t, ok)

	_, err = journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	second, ok := journal.SessionID()
	require.True(t, ok)
	assert.NotEqual(t, first, second)

	// locking twice is harmless
	require.NoError(t, journal.Lock(ctx))
	require.NoError(t, journal.Lock(ctx))
}

func TestJournal_ActivityAndIdleLock(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t, store.NewMemorySlotStorage())

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	journal.now = func() time.Time { return now }

	assert.False(t, journal.LockIfIdle(ctx, time.Minute), "locked journal is never idle-locked")

	_, err := journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, now, journal.LastActivity())

	now = now.Add(30 * time.Second)
	_, err = journal.LoadAllNotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, journal.LastActivity())

	now = now.Add(59 * time.Second)
	assert.False(t, journal.LockIfIdle(ctx, time.Minute))
	assert.True(t, journal.IsUnlocked())

	now = now.Add(time.Second)
	assert.True(t, journal.LockIfIdle(ctx, time.Minute))
	assert.False(t, journal.IsUnlocked())
}

func TestJournal_FacadeDelegatesNoteOperations(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t, store.NewMemorySlotStorage())

	_, err := journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)

	_, err = journal.SaveNoteForDate(ctx, "2024-05-01", "one")
	require.NoError(t, err)
	list, err := journal.SaveNoteForDate(ctx, "2024-05-01", "two")
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = journal.DeleteNote(ctx, "2024-05-01", list[0].ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "two", list[0].Text)

	_, err = journal.SaveNoteForDate(ctx, "May 1st", "x")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestJournal_ConcurrentSavesAreSerialised(t *testing.T) {
	ctx := context.Background()
	journal := newTestJournal(t, store.NewMemorySlotStorage())

	_, err := journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)

	const writers = 16
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := journal.SaveNoteForDate(ctx, "2024-05-01", fmt.Sprintf("note %d", i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	book, err := journal.LoadAllNotes(ctx)
	require.NoError(t, err)
	assert.Len(t, book["2024-05-01"], writers, "no write may be lost")
}

func TestJournal_StorageFaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	notes := mock.NewMockNoteService(ctrl)
	journal := NewJournalService(vault, notes, logger.Nop())
	ctx := context.Background()
	boom := errors.New("storage unavailable")

	vault.EXPECT().Exists(ctx).Return(false, boom)
	_, err := journal.IsVaultEstablished(ctx)
	assert.ErrorIs(t, err, boom)

	vault.EXPECT().Load(ctx).Return(models.VaultRecord{}, boom)
	outcome, err := journal.CreateOrVerify(ctx, "abc")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.Rejected, outcome)
	assert.False(t, journal.IsUnlocked())

	gomock.InOrder(
		vault.EXPECT().Load(ctx).Return(models.VaultRecord{}, ErrVaultNotEstablished),
		vault.EXPECT().Create(ctx, "abc").Return(models.VaultRecord{}, boom),
	)
	outcome, err = journal.CreateOrVerify(ctx, "abc")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.Rejected, outcome)
	assert.False(t, journal.IsUnlocked())
}

func TestJournal_PassesHeldPassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	notes := mock.NewMockNoteService(ctrl)
	journal := NewJournalService(vault, notes, logger.Nop())
	ctx := context.Background()
	record := models.VaultRecord{Version: 1}

	gomock.InOrder(
		vault.EXPECT().Load(ctx).Return(record, nil),
		vault.EXPECT().Verify("abc", record).Return(true),
		notes.EXPECT().LoadAll(ctx, "abc").Return(models.NoteBook{}, nil),
		notes.EXPECT().SaveNote(ctx, "2024-05-01", "hi", "abc").Return([]models.NoteEntry{{ID: "1-a", Text: "hi"}}, nil),
		notes.EXPECT().DeleteNote(ctx, "2024-05-01", "1-a", "abc").Return([]models.NoteEntry{}, nil),
	)

	outcome, err := journal.CreateOrVerify(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, models.Unlocked, outcome)

	_, err = journal.LoadAllNotes(ctx)
	require.NoError(t, err)
	_, err = journal.SaveNoteForDate(ctx, "2024-05-01", "hi")
	require.NoError(t, err)
	_, err = journal.DeleteNote(ctx, "2024-05-01", "1-a")
	require.NoError(t, err)
}
