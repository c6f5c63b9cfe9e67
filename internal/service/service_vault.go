// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/crypto"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/models"
)

// vaultMarker is the known plaintext sealed into every vault record. A
// passphrase is correct iff the marker opens and matches byte for byte.
const vaultMarker = "heart-journal-key-v1"

type vaultService struct {
	storage  store.SlotStorage
	keyChain crypto.KeyChainService

	slot       string
	iterations int

	logger *logger.Logger
}

// NewVaultService returns a VaultService persisting its record under
// cfg.SlotName. New vaults use cfg.KDFIterations; existing ones keep the
// count recorded at creation.
func NewVaultService(storage store.SlotStorage, keyChain crypto.KeyChainService, cfg config.App, log *logger.Logger) VaultService {
	iterations := cfg.KDFIterations
	if iterations <= 0 {
		iterations = crypto.DefaultIterations
	}
	slot := cfg.SlotName
	if slot == "" {
		slot = config.DefaultSlotName
	}

	return &vaultService{
		storage:    storage,
		keyChain:   keyChain,
		slot:       slot,
		iterations: iterations,
		logger:     log,
	}
}

func (v *vaultService) Exists(ctx context.Context) (bool, error) {
	_, err := v.Load(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrVaultNotEstablished):
		return false, nil
	default:
		return false, err
	}
}

func (v *vaultService) Load(ctx context.Context) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	payload, err := v.storage.Load(ctx, v.slot)
	if errors.Is(err, store.ErrSlotEmpty) {
		return models.VaultRecord{}, ErrVaultNotEstablished
	}
	if err != nil {
		log.Err(err).Str("func", "vaultService.Load").Msg("error loading vault record")
		return models.VaultRecord{}, fmt.Errorf("error loading vault record: %w", err)
	}

	record, err := decodeRecord(payload)
	if err != nil {
		log.Warn().Err(err).Str("func", "vaultService.Load").Msg("stored vault record is unusable, treating as absent")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrVaultNotEstablished, err)
	}

	return record, nil
}

func (v *vaultService) Create(ctx context.Context, passphrase string) (models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	exists, err := v.Exists(ctx)
	if err != nil {
		return models.VaultRecord{}, err
	}
	if exists {
		return models.VaultRecord{}, ErrVaultAlreadyEstablished
	}

	salt, err := v.keyChain.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "vaultService.Create").Msg("error generating salt")
		return models.VaultRecord{}, fmt.Errorf("error generating salt: %w", err)
	}
	iv, err := v.keyChain.GenerateIV()
	if err != nil {
		log.Err(err).Str("func", "vaultService.Create").Msg("error generating iv")
		return models.VaultRecord{}, fmt.Errorf("error generating iv: %w", err)
	}

	key := v.keyChain.DeriveKey(passphrase, salt, v.iterations)
	ciphertext, err := v.keyChain.Seal(key, iv, []byte(vaultMarker))
	if err != nil {
		log.Err(err).Str("func", "vaultService.Create").Msg("error sealing marker")
		return models.VaultRecord{}, fmt.Errorf("error sealing marker: %w", err)
	}

	record := models.VaultRecord{
		Version:    models.VaultRecordVersion,
		Salt:       salt,
		Iterations: v.iterations,
		IV:         iv,
		Ciphertext: ciphertext,
	}

	if err = v.Save(ctx, record); err != nil {
		return models.VaultRecord{}, err
	}

	log.Info().Str("func", "vaultService.Create").Int("iterations", v.iterations).Msg("vault established")
	return record, nil
}

func (v *vaultService) Verify(passphrase string, record models.VaultRecord) bool {
	_, ok := v.Unlock(passphrase, record)
	return ok
}

func (v *vaultService) Unlock(passphrase string, record models.VaultRecord) ([]byte, bool) {
	if record.Iterations <= 0 {
		return nil, false
	}

	key := v.keyChain.DeriveKey(passphrase, record.Salt, record.Iterations)

	plaintext, err := v.keyChain.Open(key, record.IV, record.Ciphertext)
	if err != nil {
		return nil, false
	}
	if subtle.ConstantTimeCompare(plaintext, []byte(vaultMarker)) != 1 {
		return nil, false
	}

	return key, true
}

func (v *vaultService) Save(ctx context.Context, record models.VaultRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("error encoding vault record: %w", err)
	}

	if err = v.storage.Store(ctx, v.slot, payload); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.Save").Msg("error storing vault record")
		return fmt.Errorf("error storing vault record: %w", err)
	}

	return nil
}

// decodeRecord parses payload and rejects anything this version did not
// write. A damaged notes section is dropped rather than failing the record.
func decodeRecord(payload []byte) (models.VaultRecord, error) {
	var record models.VaultRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	switch {
	case record.Version != models.VaultRecordVersion:
		return models.VaultRecord{}, fmt.Errorf("%w: unsupported version %d", ErrMalformedRecord, record.Version)
	case len(record.Salt) != crypto.SaltSize:
		return models.VaultRecord{}, fmt.Errorf("%w: salt length %d", ErrMalformedRecord, len(record.Salt))
	case len(record.IV) != crypto.IVSize:
		return models.VaultRecord{}, fmt.Errorf("%w: iv length %d", ErrMalformedRecord, len(record.IV))
	case record.Iterations <= 0:
		return models.VaultRecord{}, fmt.Errorf("%w: iterations %d", ErrMalformedRecord, record.Iterations)
	case len(record.Ciphertext) == 0:
		return models.VaultRecord{}, fmt.Errorf("%w: empty ciphertext", ErrMalformedRecord)
	}

	if record.Notes != nil && len(record.Notes.IV) != crypto.IVSize {
		record.Notes = nil
	}

	return record, nil
}

func isVaultMissing(err error) bool {
	return errors.Is(err, ErrVaultNotEstablished)
}
