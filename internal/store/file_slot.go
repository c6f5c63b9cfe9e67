// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/heart-journal/internal/logger"
)

// fileSlotStorage keeps all slots in one JSON document on disk. The file is
// re-read on every Load and rewritten atomically on every Store.
type fileSlotStorage struct {
	path   string
	logger *logger.Logger

	mu sync.Mutex
}

type filePersistedState struct {
	Slots map[string]string `json:"slots"`

	// corrupt marks a document that could not be decoded and is read as empty.
	corrupt bool
}

// corruptSuffix is appended to an undecodable slot file before it is replaced.
const corruptSuffix = ".corrupt"

// NewFileSlotStorage returns a [SlotStorage] backed by the JSON file at path.
// The file and its parent directory are created on the first Store.
func NewFileSlotStorage(path string, log *logger.Logger) (SlotStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty file path", ErrUnsupportedDSN)
	}

	s := &fileSlotStorage{path: path, logger: log}

	// fail fast on an unreadable file
	if _, err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *fileSlotStorage) Load(ctx context.Context, slot string) ([]byte, error) {
	if slot == "" {
		return nil, ErrEmptySlotName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		s.logger.Err(err).Str("func", "fileSlotStorage.Load").Str("path", s.path).Msg("error reading slot file")
		return nil, err
	}

	payload, ok := state.Slots[slot]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return []byte(payload), nil
}

func (s *fileSlotStorage) Store(ctx context.Context, slot string, payload []byte) error {
	if slot == "" {
		return ErrEmptySlotName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		s.logger.Err(err).Str("func", "fileSlotStorage.Store").Str("path", s.path).Msg("error reading slot file")
		return err
	}

	if state.corrupt {
		if err = os.Rename(s.path, s.path+corruptSuffix); err != nil {
			s.logger.Err(err).Str("func", "fileSlotStorage.Store").Str("path", s.path).Msg("error moving corrupt slot file aside")
			return fmt.Errorf("%w: move corrupt slot file: %w", ErrStorageUnavailable, err)
		}
		s.logger.Warn().Str("func", "fileSlotStorage.Store").Str("path", s.path+corruptSuffix).Msg("corrupt slot file moved aside")
	}

	state.Slots[slot] = string(payload)
	if err = s.persist(state); err != nil {
		s.logger.Err(err).Str("func", "fileSlotStorage.Store").Str("path", s.path).Msg("error writing slot file")
		return err
	}

	s.logger.Debug().Str("func", "fileSlotStorage.Store").Str("slot", slot).Msg("slot persisted")
	return nil
}

func (s *fileSlotStorage) Close() error {
	return nil
}

func (s *fileSlotStorage) load() (*filePersistedState, error) {
	state := &filePersistedState{Slots: make(map[string]string)}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return state, nil
		}
		return nil, fmt.Errorf("%w: read slot file: %w", ErrStorageUnavailable, err)
	}
	if len(data) == 0 {
		return state, nil
	}

	if err = json.Unmarshal(data, state); err != nil {
		s.logger.Warn().Err(err).Str("func", "fileSlotStorage.load").Str("path", s.path).Msg("undecodable slot file, treating as empty")
		return &filePersistedState{Slots: make(map[string]string), corrupt: true}, nil
	}
	if state.Slots == nil {
		state.Slots = make(map[string]string)
	}

	return state, nil
}

// persist writes state to a temp file in the target directory and renames it
// over the old file, so readers never observe a half-written document.
func (s *fileSlotStorage) persist(state *filePersistedState) error {
	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: create slot dir: %w", ErrStorageUnavailable, err)
		}
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode slot file: %w", ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write temp file: %w", ErrStorageUnavailable, err)
	}
	if err = tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: chmod temp file: %w", ErrStorageUnavailable, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrStorageUnavailable, err)
	}

	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: replace slot file: %w", ErrStorageUnavailable, err)
	}

	return nil
}
