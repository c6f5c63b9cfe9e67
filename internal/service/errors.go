package service

import (
	"errors"

	"github.com/MKhiriev/heart-journal/internal/validators"
)

var (
	ErrWrongPassphrase         = errors.New("wrong passphrase")
	ErrVaultNotEstablished     = errors.New("vault is not established")
	ErrVaultAlreadyEstablished = errors.New("vault is already established")
	ErrMalformedRecord         = errors.New("malformed vault record")
	ErrLocked                  = errors.New("journal is locked")

	ErrInvalidDate = validators.ErrInvalidDate
	ErrEmptyNote   = validators.ErrEmptyText
	ErrEmptyNoteID = validators.ErrEmptyNoteID

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionRevoked          = errors.New("session is no longer active")
)
