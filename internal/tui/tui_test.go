package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/heart-journal/internal/app"
	"github.com/MKhiriev/heart-journal/internal/mock"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// fixedDay is 1 May 2024, mid-morning local time.
func fixedDay() time.Time {
	return time.Date(2024, time.May, 1, 10, 30, 0, 0, time.Local)
}

func newTestDayModel(journal service.Journal) *DayModel {
	m := NewDayModel(context.Background(), journal)
	m.now = fixedDay
	m.date = m.today()
	return m
}

func TestHeartKey_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewHeartKeyModel(context.Background(), mock.NewMockJournal(ctrl))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgHeartKeyRequired, m.errMsg)
}

func TestHeartKey_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		outcome models.Outcome
		wantNav bool
		wantErr string
		initial bool
	}{
		{name: "first key establishes", outcome: models.Established, wantNav: true},
		{name: "matching key unlocks", outcome: models.Unlocked, wantNav: true, initial: true},
		{name: "wrong key is rejected", outcome: models.Rejected, wantErr: app.MsgHeartKeyRejected, initial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			journal := mock.NewMockJournal(ctrl)
			journal.EXPECT().CreateOrVerify(gomock.Any(), "rose123").Return(tt.outcome, nil)

			m := NewHeartKeyModel(context.Background(), journal)
			m.Update(vaultStatusMsg{established: tt.initial})
			m.input.SetValue("rose123")

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)
			assert.True(t, m.submitting)

			_, next := m.Update(cmd())
			assert.False(t, m.submitting)
			assert.Equal(t, tt.wantErr, m.errMsg)
			assert.Empty(t, m.input.Value())

			if tt.wantNav {
				require.NotNil(t, next)
				assert.Equal(t, NavigateTo{Page: pageJournal}, next())
			} else {
				assert.Nil(t, next)
			}
		})
	}
}

func TestHeartKey_StorageFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewHeartKeyModel(context.Background(), mock.NewMockJournal(ctrl))

	m.Update(unlockDoneMsg{err: fmt.Errorf("load: %w", store.ErrStorageUnavailable)})

	assert.Equal(t, app.MsgStorageUnavailable, m.errMsg)
}

func TestDayModel_NavigateDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestDayModel(mock.NewMockJournal(ctrl))

	assert.Equal(t, "2024-05-01", m.dateKey())

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "2024-04-29", m.dateKey())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "2024-04-30", m.dateKey())

	m.Update(runes("t"))
	assert.Equal(t, "2024-05-01", m.dateKey())
}

func TestDayModel_WriteMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournal(ctrl)
	saved := []models.NoteEntry{{ID: "1714548600123-abcdef", Text: "first entry", CreatedAt: fixedDay()}}
	journal.EXPECT().SaveNoteForDate(gomock.Any(), "2024-05-01", "first entry").Return(saved, nil)

	m := newTestDayModel(journal)
	m.Update(notesLoadedMsg{book: models.NoteBook{}})

	m.Update(runes("n"))
	require.True(t, m.composing)

	m.draft.SetValue("  first entry \n")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	m.Update(cmd())
	assert.False(t, m.composing)
	assert.Equal(t, app.MsgMemorySaved, m.status)
	assert.Equal(t, saved, m.dayNotes())
	assert.Contains(t, m.View(), "first entry")
}

func TestDayModel_BlankMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestDayModel(mock.NewMockJournal(ctrl))

	m.Update(runes("n"))
	m.draft.SetValue("   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.True(t, m.composing)
	assert.Equal(t, app.MsgEmptyMemory, m.errMsg)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.composing)
}

func TestDayModel_DeleteLastMemoryDropsDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournal(ctrl)
	journal.EXPECT().DeleteNote(gomock.Any(), "2024-05-01", "b").Return([]models.NoteEntry{}, nil)

	m := newTestDayModel(journal)
	m.Update(notesLoadedMsg{book: models.NoteBook{
		"2024-05-01": {{ID: "b", Text: "only"}},
		"2024-04-30": {{ID: "a", Text: "yesterday"}},
	}})

	_, cmd := m.Update(runes("d"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Empty(t, m.dayNotes())
	assert.Equal(t, 1, m.book.Dates())
	assert.Equal(t, app.MsgMemoryDeleted, m.status)
}

func TestDayModel_CopySelected(t *testing.T) {
	var copied string
	original := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = original })

	ctrl := gomock.NewController(t)
	m := newTestDayModel(mock.NewMockJournal(ctrl))
	m.Update(notesLoadedMsg{book: models.NoteBook{
		"2024-05-01": {{ID: "a", Text: "morning"}, {ID: "b", Text: "evening"}},
	}})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(runes("c"))

	assert.Equal(t, "evening", copied)
	assert.Equal(t, app.MsgCopied, m.status)
}

func TestDayModel_LockedSessionReturnsToHeartKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestDayModel(mock.NewMockJournal(ctrl))

	_, cmd := m.Update(notesLoadedMsg{err: fmt.Errorf("%w: token revoked", service.ErrLocked)})

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageHeartKey, Notice: app.MsgJournalLocked}, cmd())
}

func TestDayModel_LockKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournal(ctrl)
	journal.EXPECT().Lock(gomock.Any()).Return(nil)

	m := newTestDayModel(journal)
	_, cmd := m.Update(runes("x"))

	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageHeartKey}, cmd())
}

func TestRootModel_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournal(ctrl)
	journal.EXPECT().LoadAllNotes(gomock.Any()).Return(models.NoteBook{}, nil)

	heartKey := NewHeartKeyModel(context.Background(), journal)
	day := newTestDayModel(journal)
	root := NewRootModel(map[string]page{pageHeartKey: heartKey, pageJournal: day}, pageHeartKey, models.NewAppBuildInfo("1.0.0", "", ""))

	model, cmd := root.Update(NavigateTo{Page: pageJournal})
	root = model.(RootModel)
	assert.Same(t, day, root.current)
	require.NotNil(t, cmd)
	root.Update(cmd())

	model, _ = root.Update(runes("v"))
	root = model.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.0.0")

	model, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = model.(RootModel)
	assert.False(t, root.showBuildInfo)

	model, cmd = root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	root = model.(RootModel)
	assert.True(t, root.quitByUser)
	require.NotNil(t, cmd)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "locked", err: service.ErrLocked, want: app.MsgJournalLocked},
		{name: "invalid date", err: fmt.Errorf("save: %w", service.ErrInvalidDate), want: app.MsgInvalidDate},
		{name: "network", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: app.MsgServerUnavailable},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
