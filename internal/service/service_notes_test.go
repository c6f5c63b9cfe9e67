package service

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/heart-journal/internal/crypto"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/mock"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/models"
)

type noteFixture struct {
	storage store.SlotStorage
	vault   VaultService
	notes   *noteService
}

// newNoteFixture returns a note service over a vault created with passphrase.
func newNoteFixture(t *testing.T, passphrase string) noteFixture {
	t.Helper()

	storage := store.NewMemorySlotStorage()
	keyChain := crypto.NewKeyChainService()
	vault := NewVaultService(storage, keyChain, testAppConfig(), logger.Nop())

	_, err := vault.Create(context.Background(), passphrase)
	require.NoError(t, err)

	return noteFixture{
		storage: storage,
		vault:   vault,
		notes:   NewNoteService(vault, keyChain, logger.Nop()).(*noteService),
	}
}

// failingStore fails every Store call after the vault has been created.
type failingStore struct {
	store.SlotStorage
	err error
}

func (f *failingStore) Store(ctx context.Context, slot string, payload []byte) error {
	return f.err
}

func TestNoteService_LoadAllWithoutVault(t *testing.T) {
	storage := store.NewMemorySlotStorage()
	keyChain := crypto.NewKeyChainService()
	notes := NewNoteService(NewVaultService(storage, keyChain, testAppConfig(), logger.Nop()), keyChain, logger.Nop())

	book, err := notes.LoadAll(context.Background(), "anything")
	require.NoError(t, err)
	assert.NotNil(t, book)
	assert.Empty(t, book)
}

func TestNoteService_LoadAllFreshVault(t *testing.T) {
	f := newNoteFixture(t, "abc")

	book, err := f.notes.LoadAll(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, book)
}

func TestNoteService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")

	texts := []string{"hello", "ünïcødé ✿ notes", `{"json":"looking"}`, "multi\nline"}
	for _, text := range texts {
		_, err := f.notes.SaveNote(ctx, "2024-05-01", text, "abc")
		require.NoError(t, err)
	}

	book, err := f.notes.LoadAll(ctx, "abc")
	require.NoError(t, err)

	got := make([]string, 0, len(texts))
	for _, n := range book["2024-05-01"] {
		got = append(got, n.Text)
	}
	assert.Equal(t, texts, got)
}

func TestNoteService_SaveReturnsDayListInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")

	first, err := f.notes.SaveNote(ctx, "2024-05-01", "morning", "abc")
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := f.notes.SaveNote(ctx, "2024-05-01", "evening", "abc")
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "morning", second[0].Text)
	assert.Equal(t, "evening", second[1].Text)
	assert.NotEqual(t, second[0].ID, second[1].ID)

	other, err := f.notes.SaveNote(ctx, "2024-05-02", "next day", "abc")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	book, err := f.notes.LoadAll(ctx, "abc")
	require.NoError(t, err)
	assert.Len(t, book["2024-05-01"], 2)
	assert.Len(t, book["2024-05-02"], 1)
}

func TestNoteService_EntryFields(t *testing.T) {
	f := newNoteFixture(t, "abc")
	fixed := time.Date(2024, 5, 1, 9, 30, 0, 123456789, time.FixedZone("CEST", 2*3600))
	f.notes.now = func() time.Time { return fixed }

	list, err := f.notes.SaveNote(context.Background(), "2024-05-01", "  padded text \n", "abc")
	require.NoError(t, err)
	require.Len(t, list, 1)

	entry := list[0]
	assert.Equal(t, "padded text", entry.Text)
	assert.Regexp(t, regexp.MustCompile(`^1714548600123-[0-9a-f]{6}$`), entry.ID)
	assert.Equal(t, time.UTC, entry.CreatedAt.Location())
	assert.True(t, entry.CreatedAt.Equal(fixed.Truncate(time.Millisecond)))
}

func TestNoteService_LoadAllWrongPassphraseIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")

	_, err := f.notes.SaveNote(ctx, "2024-05-01", "secret", "abc")
	require.NoError(t, err)

	book, err := f.notes.LoadAll(ctx, "wrong")
	require.NoError(t, err)
	assert.Empty(t, book)
}

func TestNoteService_MutationsRejectWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")

	saved, err := f.notes.SaveNote(ctx, "2024-05-01", "keep me", "abc")
	require.NoError(t, err)

	before, err := f.storage.Load(ctx, testSlot)
	require.NoError(t, err)

	_, err = f.notes.SaveNote(ctx, "2024-05-01", "intruder", "wrong")
	assert.ErrorIs(t, err, ErrWrongPassphrase)

	_, err = f.notes.DeleteNote(ctx, "2024-05-01", saved[0].ID, "wrong")
	assert.ErrorIs(t, err, ErrWrongPassphrase)

	after, err := f.storage.Load(ctx, testSlot)
	require.NoError(t, err)
	assert.Equal(t, before, after, "record must not change")
}

func TestNoteService_FreshIVOnEverySave(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")
	created := storedRecord(t, f.storage)

	_, err := f.notes.SaveNote(ctx, "2024-05-01", "same", "abc")
	require.NoError(t, err)
	first := storedRecord(t, f.storage)

	_, err = f.notes.DeleteNote(ctx, "2024-05-01", "does-not-exist", "abc")
	require.NoError(t, err)
	second := storedRecord(t, f.storage)

	_, err = f.notes.SaveNote(ctx, "2024-05-01", "same", "abc")
	require.NoError(t, err)
	third := storedRecord(t, f.storage)

	require.True(t, first.HasNotes())
	ivs := [][]byte{created.IV, first.Notes.IV, second.Notes.IV, third.Notes.IV}
	for i := range ivs {
		for j := i + 1; j < len(ivs); j++ {
			assert.False(t, bytes.Equal(ivs[i], ivs[j]), "iv %d and %d must differ", i, j)
		}
	}
	assert.NotEqual(t, first.Notes.Data, second.Notes.Data, "identical plaintext must still produce new ciphertext")

	for _, r := range []models.VaultRecord{first, second, third} {
		assert.Equal(t, created.Salt, r.Salt, "salt is stable")
		assert.Equal(t, created.Iterations, r.Iterations)
		assert.Equal(t, created.IV, r.IV, "marker section is written once")
		assert.Equal(t, created.Ciphertext, r.Ciphertext)
	}
}

func TestNoteService_DeleteNonexistentIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")

	saved, err := f.notes.SaveNote(ctx, "2024-05-01", "one", "abc")
	require.NoError(t, err)

	list, err := f.notes.DeleteNote(ctx, "2024-05-01", "1700000000000-zzzzzz", "abc")
	require.NoError(t, err)
	assert.Equal(t, saved, list)

	empty, err := f.notes.DeleteNote(ctx, "2024-06-01", "1700000000000-zzzzzz", "abc")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	book, err := f.notes.LoadAll(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, saved, book["2024-05-01"])
	assert.NotContains(t, book, "2024-06-01")
}

func TestNoteService_DeleteRemovesOnlyMatchingEntry(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")

	_, err := f.notes.SaveNote(ctx, "2024-05-01", "one", "abc")
	require.NoError(t, err)
	list, err := f.notes.SaveNote(ctx, "2024-05-01", "two", "abc")
	require.NoError(t, err)
	_, err = f.notes.SaveNote(ctx, "2024-05-02", "other day", "abc")
	require.NoError(t, err)

	remaining, err := f.notes.DeleteNote(ctx, "2024-05-01", list[0].ID, "abc")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "two", remaining[0].Text)

	remaining, err = f.notes.DeleteNote(ctx, "2024-05-01", list[1].ID, "abc")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	book, err := f.notes.LoadAll(ctx, "abc")
	require.NoError(t, err)
	assert.NotContains(t, book, "2024-05-01", "empty days are dropped")
	assert.Len(t, book["2024-05-02"], 1)
}

func TestNoteService_InputValidatedBeforeStorageAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no expectations: any storage call fails the test
	storage := mock.NewMockSlotStorage(ctrl)
	keyChain := crypto.NewKeyChainService()
	notes := NewNoteService(NewVaultService(storage, keyChain, testAppConfig(), logger.Nop()), keyChain, logger.Nop())
	ctx := context.Background()

	_, err := notes.SaveNote(ctx, "2024-13-01", "text", "abc")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = notes.SaveNote(ctx, "05/01/2024", "text", "abc")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = notes.SaveNote(ctx, "2024-05-01", "   ", "abc")
	assert.ErrorIs(t, err, ErrEmptyNote)

	_, err = notes.DeleteNote(ctx, "not-a-date", "id", "abc")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = notes.DeleteNote(ctx, "2024-05-01", "", "abc")
	assert.ErrorIs(t, err, ErrEmptyNoteID)

	_, err = notes.DeleteNote(ctx, "not-a-date", "", "abc")
	assert.ErrorIs(t, err, ErrInvalidDate, "the date is checked before the id")
}

func TestNoteService_SaveWithoutVault(t *testing.T) {
	storage := store.NewMemorySlotStorage()
	keyChain := crypto.NewKeyChainService()
	notes := NewNoteService(NewVaultService(storage, keyChain, testAppConfig(), logger.Nop()), keyChain, logger.Nop())

	_, err := notes.SaveNote(context.Background(), "2024-05-01", "text", "abc")
	assert.ErrorIs(t, err, ErrVaultNotEstablished)
}

func TestNoteService_CorruptNotesSectionIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newNoteFixture(t, "abc")

	_, err := f.notes.SaveNote(ctx, "2024-05-01", "lost", "abc")
	require.NoError(t, err)

	record := storedRecord(t, f.storage)
	record.Notes.Data[0] ^= 0xFF
	require.NoError(t, f.vault.Save(ctx, record))

	book, err := f.notes.LoadAll(ctx, "abc")
	require.NoError(t, err)
	assert.Empty(t, book)

	list, err := f.notes.SaveNote(ctx, "2024-05-01", "fresh start", "abc")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "fresh start", list[0].Text)
}

func TestNoteService_StorageFaultPropagates(t *testing.T) {
	ctx := context.Background()
	memory := store.NewMemorySlotStorage()
	keyChain := crypto.NewKeyChainService()

	_, err := NewVaultService(memory, keyChain, testAppConfig(), logger.Nop()).Create(ctx, "abc")
	require.NoError(t, err)

	broken := &failingStore{SlotStorage: memory, err: store.ErrStorageUnavailable}
	vault := NewVaultService(broken, keyChain, testAppConfig(), logger.Nop())
	notes := NewNoteService(vault, keyChain, logger.Nop())

	_, err = notes.SaveNote(ctx, "2024-05-01", "text", "abc")
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)

	_, err = notes.DeleteNote(ctx, "2024-05-01", "id", "abc")
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestNoteService_LoadAllStorageFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := mock.NewMockSlotStorage(ctrl)
	keyChain := crypto.NewKeyChainService()
	notes := NewNoteService(NewVaultService(storage, keyChain, testAppConfig(), logger.Nop()), keyChain, logger.Nop())
	ctx := context.Background()

	storage.EXPECT().Load(ctx, testSlot).Return(nil, errors.Join(store.ErrStorageUnavailable, errors.New("disk gone")))

	_, err := notes.LoadAll(ctx, "abc")
	assert.ErrorIs(t, err, store.ErrStorageUnavailable)
}

func TestNoteService_SealFailureLeavesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	f := newNoteFixture(t, "abc")
	before, err := f.storage.Load(ctx, testSlot)
	require.NoError(t, err)

	keyChain := mock.NewMockKeyChainService(ctrl)
	keyChain.EXPECT().GenerateIV().Return(nil, errors.New("entropy exhausted"))
	f.notes.keyChain = keyChain

	_, err = f.notes.SaveNote(ctx, "2024-05-01", "text", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error generating iv")

	after, err := f.storage.Load(ctx, testSlot)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
