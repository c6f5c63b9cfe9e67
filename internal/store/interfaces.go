// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/slot_storage_mock.go -package=mock

// SlotStorage is a single-slot key-value store. Every access reads or writes
// the whole payload of one named slot; there is no partial access.
type SlotStorage interface {
	// Load returns the payload stored under slot, or ErrSlotEmpty when the
	// slot has never been written.
	Load(ctx context.Context, slot string) ([]byte, error)

	// Store replaces the payload of slot wholesale.
	Store(ctx context.Context, slot string, payload []byte) error

	// Close releases the resources held by the backend.
	Close() error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
