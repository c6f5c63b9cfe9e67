package models

// UnlockRequest is the body of POST /api/vault/unlock.
type UnlockRequest struct {
	Passphrase string `json:"passphrase"`
}

// UnlockResponse reports the outcome of an unlock attempt. On success the
// session token is returned in the Authorization header as well.
type UnlockResponse struct {
	Outcome Outcome `json:"outcome"`
}

// VaultStatus is returned by GET /api/vault.
type VaultStatus struct {
	Established bool `json:"established"`
	Unlocked    bool `json:"unlocked"`
}

// NoteRequest is the body of POST /api/notes/{date}.
type NoteRequest struct {
	Text string `json:"text"`
}
