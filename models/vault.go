// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultRecordVersion is the only on-disk format version the journal writes
// and accepts. Records carrying any other version are treated as malformed.
const VaultRecordVersion = 1

// VaultRecord is the single persisted artifact of the journal.
//
// Salt and Iterations are fixed when the vault is created and describe how the
// passphrase is stretched into the AES-256 key. IV and Ciphertext hold the
// sealed marker used to verify a candidate passphrase. Notes holds the sealed
// note book; it is nil until the first note is saved and is replaced wholesale
// on every mutation.
//
// Byte fields are encoded as standard base64 strings by encoding/json.
type VaultRecord struct {
	// Version is the record format version, see [VaultRecordVersion].
	Version int `json:"version"`

	// Salt is the random PBKDF2 salt (16 bytes). Not secret.
	Salt []byte `json:"salt"`

	// Iterations is the PBKDF2 work factor recorded at creation time.
	Iterations int `json:"iterations"`

	// IV is the GCM nonce (12 bytes) used to seal the marker.
	IV []byte `json:"iv"`

	// Ciphertext is the sealed marker including the GCM tag.
	Ciphertext []byte `json:"ct"`

	// Notes is the sealed note book, absent while the journal is empty.
	Notes *SealedSection `json:"notes,omitempty"`
}

// SealedSection is an AES-GCM sealed payload together with its nonce.
type SealedSection struct {
	// IV is the GCM nonce. A fresh one is generated for every seal.
	IV []byte `json:"iv"`

	// Data is the ciphertext including the GCM tag.
	Data []byte `json:"data"`
}

// HasNotes reports whether a sealed note book is attached to the record.
func (r VaultRecord) HasNotes() bool {
	return r.Notes != nil && len(r.Notes.Data) > 0
}
