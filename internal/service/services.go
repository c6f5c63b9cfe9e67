package service

import (
	"fmt"

	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/crypto"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/store"
)

// Services groups everything the HTTP server needs.
type Services struct {
	AppInfoService AppInfoService
	JournalService JournalService
	SessionService SessionService
}

func NewServices(storage store.SlotStorage, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	sessionService, err := NewSessionService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	return &Services{
		AppInfoService: appInfoService,
		JournalService: NewLocalJournal(storage, cfg.App, logger),
		SessionService: sessionService,
	}, nil
}

// NewLocalJournal wires a JournalService directly over storage. It is used by
// the server and by the terminal client in local mode.
func NewLocalJournal(storage store.SlotStorage, cfg config.App, logger *logger.Logger) JournalService {
	keyChain := crypto.NewKeyChainService()
	vault := NewVaultService(storage, keyChain, cfg, logger)
	notes := NewNoteService(vault, keyChain, logger)

	return NewJournalService(vault, notes, logger)
}
