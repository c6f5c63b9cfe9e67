// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/heart-journal/internal/crypto"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/utils"
	"github.com/MKhiriev/heart-journal/internal/validators"
	"github.com/MKhiriev/heart-journal/models"
)

type noteService struct {
	vault     VaultService
	keyChain  crypto.KeyChainService
	validator validators.Validator

	now    func() time.Time
	logger *logger.Logger
}

// NewNoteService returns a NoteService sealing the note book into the record
// managed by vault.
func NewNoteService(vault VaultService, keyChain crypto.KeyChainService, log *logger.Logger) NoteService {
	return &noteService{
		vault:     vault,
		keyChain:  keyChain,
		validator: validators.NewNoteValidator(),
		now:       time.Now,
		logger:    log,
	}
}

func (s *noteService) LoadAll(ctx context.Context, passphrase string) (models.NoteBook, error) {
	record, err := s.vault.Load(ctx)
	if err != nil {
		if isVaultMissing(err) {
			return models.NoteBook{}, nil
		}
		return nil, err
	}

	key, ok := s.vault.Unlock(passphrase, record)
	if !ok {
		logger.FromContext(ctx).Debug().Str("func", "noteService.LoadAll").Msg("passphrase does not open the vault, returning no notes")
		return models.NoteBook{}, nil
	}

	return s.openBook(ctx, key, record), nil
}

func (s *noteService) SaveNote(ctx context.Context, date, text, passphrase string) ([]models.NoteEntry, error) {
	if err := s.validator.Validate(ctx, models.NoteDraft{Date: date, Text: text}); err != nil {
		return nil, err
	}

	record, key, err := s.unlock(ctx, passphrase)
	if err != nil {
		return nil, err
	}

	book := s.openBook(ctx, key, record)

	now := s.now()
	book[date] = append(book[date], models.NoteEntry{
		ID:        utils.NewNoteID(now),
		Text:      strings.TrimSpace(text),
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	})

	if err = s.sealBook(ctx, key, record, book); err != nil {
		return nil, err
	}

	return slices.Clone(book.Notes(date)), nil
}

func (s *noteService) DeleteNote(ctx context.Context, date, id, passphrase string) ([]models.NoteEntry, error) {
	ref := models.NoteRef{Date: date, ID: id}
	if err := s.validator.Validate(ctx, ref, validators.FieldDate); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, ref, validators.FieldID); err != nil {
		return nil, err
	}

	record, key, err := s.unlock(ctx, passphrase)
	if err != nil {
		return nil, err
	}

	book := s.openBook(ctx, key, record)

	remaining := slices.DeleteFunc(slices.Clone(book[date]), func(n models.NoteEntry) bool {
		return n.ID == id
	})
	if len(remaining) == 0 {
		delete(book, date)
	} else {
		book[date] = remaining
	}

	if err = s.sealBook(ctx, key, record, book); err != nil {
		return nil, err
	}

	return slices.Clone(book.Notes(date)), nil
}

// unlock loads the record and checks passphrase against it before any
// mutation, so a wrong passphrase can never overwrite the stored notes.
func (s *noteService) unlock(ctx context.Context, passphrase string) (models.VaultRecord, []byte, error) {
	record, err := s.vault.Load(ctx)
	if err != nil {
		return models.VaultRecord{}, nil, err
	}

	key, ok := s.vault.Unlock(passphrase, record)
	if !ok {
		logger.FromContext(ctx).Warn().Str("func", "noteService.unlock").Msg("refusing to modify notes with a wrong passphrase")
		return models.VaultRecord{}, nil, ErrWrongPassphrase
	}

	return record, key, nil
}

// openBook decrypts the notes section. Anything unreadable is an empty book.
func (s *noteService) openBook(ctx context.Context, key []byte, record models.VaultRecord) models.NoteBook {
	book := models.NoteBook{}
	if !record.HasNotes() {
		return book
	}

	log := logger.FromContext(ctx)

	plaintext, err := s.keyChain.Open(key, record.Notes.IV, record.Notes.Data)
	if err != nil {
		log.Warn().Err(err).Str("func", "noteService.openBook").Msg("notes section does not decrypt, treating as empty")
		return book
	}

	if err = json.Unmarshal(plaintext, &book); err != nil || book == nil {
		log.Warn().Err(err).Str("func", "noteService.openBook").Msg("notes section is not a note book, treating as empty")
		return models.NoteBook{}
	}

	return book
}

// sealBook re-encrypts the whole book under a freshly generated iv and
// persists the record. The salt and marker section are left untouched.
func (s *noteService) sealBook(ctx context.Context, key []byte, record models.VaultRecord, book models.NoteBook) error {
	log := logger.FromContext(ctx)

	plaintext, err := json.Marshal(book)
	if err != nil {
		return fmt.Errorf("error encoding notes: %w", err)
	}

	iv, err := s.keyChain.GenerateIV()
	if err != nil {
		log.Err(err).Str("func", "noteService.sealBook").Msg("error generating iv")
		return fmt.Errorf("error generating iv: %w", err)
	}

	data, err := s.keyChain.Seal(key, iv, plaintext)
	if err != nil {
		log.Err(err).Str("func", "noteService.sealBook").Msg("error sealing notes")
		return fmt.Errorf("error sealing notes: %w", err)
	}

	record.Notes = &models.SealedSection{IV: iv, Data: data}

	return s.vault.Save(ctx, record)
}
