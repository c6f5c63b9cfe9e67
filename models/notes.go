// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the ISO calendar date format used as the note book key.
const DateLayout = time.DateOnly

// NoteEntry is a single journal note. Entries are created on save and removed
// on delete; they are never modified in place.
type NoteEntry struct {
	// ID is unique within the journal: creation time in unix milliseconds
	// followed by a random suffix, e.g. "1714560000000-k3f9x2".
	ID string `json:"id"`

	// Text is the free-form note body.
	Text string `json:"text"`

	// CreatedAt is the creation timestamp, serialised as RFC 3339.
	CreatedAt time.Time `json:"createdAt"`
}

// NoteBook maps an ISO calendar date (YYYY-MM-DD) to the notes written for
// that day, in insertion order. It only ever exists decrypted in memory.
type NoteBook map[string][]NoteEntry

// Notes returns the notes stored for date, or an empty non-nil slice.
func (b NoteBook) Notes(date string) []NoteEntry {
	notes, ok := b[date]
	if !ok || notes == nil {
		return []NoteEntry{}
	}
	return notes
}

// Dates returns the number of days that have at least one note.
func (b NoteBook) Dates() int {
	n := 0
	for _, notes := range b {
		if len(notes) > 0 {
			n++
		}
	}
	return n
}

// NoteDraft is a note about to be written for Date.
type NoteDraft struct {
	Date string
	Text string
}

// NoteRef identifies an existing note.
type NoteRef struct {
	Date string
	ID   string
}
