package tui

import (
	"github.com/MKhiriev/heart-journal/models"
)

// Page names known to RootModel.
const (
	pageHeartKey = "heartKey"
	pageJournal  = "journal"
)

// NavigateTo asks RootModel to switch to Page. Notice, when set, is shown
// by the page it opens.
type NavigateTo struct {
	Page   string
	Notice string
}

type vaultStatusMsg struct {
	established bool
	err         error
}

type unlockDoneMsg struct {
	outcome models.Outcome
	err     error
}

type notesLoadedMsg struct {
	book models.NoteBook
	err  error
}

// dayChangedMsg carries the notes of date after a save or a delete.
type dayChangedMsg struct {
	date   string
	notes  []models.NoteEntry
	status string
	err    error
}

type clearStatusMsg struct{}
