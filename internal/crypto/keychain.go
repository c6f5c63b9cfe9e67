// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the PBKDF2 salt length in bytes (128 bits).
	SaltSize = 16
	// IVSize is the AES-GCM nonce length in bytes (96 bits).
	IVSize = 12
	// KeySize is the derived AES key length in bytes (256 bits).
	KeySize = 32
	// DefaultIterations is the PBKDF2 work factor used for new vaults.
	DefaultIterations = 150_000
)

var (
	// ErrDecryptionFailed is returned by Open when GCM authentication fails,
	// which almost always means the passphrase was wrong.
	ErrDecryptionFailed = errors.New("decryption failed")
	// ErrInvalidKeyMaterial is returned when a key or iv has the wrong length.
	ErrInvalidKeyMaterial = errors.New("invalid key material")
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	random io.Reader
}

// NewKeyChainService constructs a [KeyChainService] reading randomness from
// the OS CSPRNG.
func NewKeyChainService() KeyChainService {
	return &keyChainService{random: rand.Reader}
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	return k.randomBytes(SaltSize)
}

// GenerateIV implements [KeyChainService].
func (k *keyChainService) GenerateIV() ([]byte, error) {
	return k.randomBytes(IVSize)
}

func (k *keyChainService) randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(k.random, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// DeriveKey implements [KeyChainService]. The key only ever lives in memory.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, iterations, KeySize, sha256.New)
}

// Seal implements [KeyChainService]. The returned slice is ciphertext ‖ tag;
// the iv is stored separately by the caller.
func (k *keyChainService) Seal(key, iv, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, iv)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, iv, plaintext, nil), nil
}

// Open implements [KeyChainService].
func (k *keyChainService) Open(key, iv, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key, iv)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func newGCM(key, iv []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key length %d", ErrInvalidKeyMaterial, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: iv length %d", ErrInvalidKeyMaterial, len(iv))
	}

	return gcm, nil
}
