// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memorySlotStorage struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewMemorySlotStorage returns a volatile [SlotStorage]. Payloads are copied
// on the way in and out so callers cannot alias the stored bytes.
func NewMemorySlotStorage() SlotStorage {
	return &memorySlotStorage{slots: make(map[string][]byte)}
}

func (s *memorySlotStorage) Load(ctx context.Context, slot string) ([]byte, error) {
	if slot == "" {
		return nil, ErrEmptySlotName
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.slots[slot]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return append([]byte(nil), payload...), nil
}

func (s *memorySlotStorage) Store(ctx context.Context, slot string, payload []byte) error {
	if slot == "" {
		return ErrEmptySlotName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots[slot] = append([]byte(nil), payload...)
	return nil
}

func (s *memorySlotStorage) Close() error {
	return nil
}
