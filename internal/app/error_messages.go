// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of the heart journal.
//
// The terminal client shows these instead of raw error text, so the wording
// stays the same whether the journal is local or served over HTTP.
package app

const (
	// MsgHeartKeyRejected is shown when the heart key does not open the
	// existing vault.
	MsgHeartKeyRejected = "That heart key does not open this journal"

	// MsgHeartKeyRequired is shown when the heart key input is submitted
	// empty.
	MsgHeartKeyRequired = "Please type your heart key"

	// MsgJournalLocked is shown when the session ended, for example after the
	// idle timeout on the server.
	MsgJournalLocked = "The journal was locked, unlock it again"

	// MsgNoVault is shown when notes are requested before a vault exists.
	MsgNoVault = "No journal has been created yet"

	// MsgEmptyMemory is shown when a blank note is submitted.
	MsgEmptyMemory = "A memory needs at least one word"

	// MsgInvalidDate is shown when a date cannot be used as a journal day.
	MsgInvalidDate = "That day is not a valid date"

	// MsgStorageUnavailable is shown when the vault storage cannot be read
	// or written.
	MsgStorageUnavailable = "The journal storage is unavailable, nothing was changed"

	// MsgServerUnavailable is shown when the journal server cannot be
	// reached.
	MsgServerUnavailable = "No network or the journal server is unavailable"

	// MsgNoMemories is rendered for a day without notes.
	MsgNoMemories = "No previous memories for this day."

	// MsgMemorySaved, MsgMemoryDeleted and MsgCopied report finished actions.
	MsgMemorySaved   = "Memory saved"
	MsgMemoryDeleted = "Memory deleted"
	MsgCopied        = "Copied to clipboard"
)
