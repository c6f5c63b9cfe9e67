package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/heart-journal/internal/adapter"
	"github.com/MKhiriev/heart-journal/internal/config"
	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/internal/store"
	"github.com/MKhiriev/heart-journal/internal/tui"
)

// UI is the part of the terminal interface App drives.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	journal service.Journal
	ui      UI
	closer  func() error

	logger *logger.Logger
}

func NewApp(journal service.Journal, ui UI, closer func() error, logger *logger.Logger) *App {
	return &App{journal: journal, ui: ui, closer: closer, logger: logger}
}

// NewJournal returns the journal the client works with: a remote adapter when
// a server address is configured, otherwise a journal over local storage.
// The returned closer releases the local storage.
func NewJournal(ctx context.Context, cfg config.ClientConfig, logger *logger.Logger) (service.Journal, func() error, error) {
	if cfg.Remote() {
		logger.Info().Str("address", cfg.RemoteAddress).Msg("using remote journal")
		journal, err := adapter.NewHTTPServerAdapter(cfg, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create server adapter: %w", err)
		}
		return journal, func() error { return nil }, nil
	}

	storage, err := store.NewSlotStorage(ctx, config.Storage{DSN: cfg.StorageDSN}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create local storage: %w", err)
	}

	logger.Info().Msg("using local journal")
	journal := service.NewLocalJournal(storage, config.App{
		KDFIterations: cfg.KDFIterations,
		SlotName:      cfg.SlotName,
	}, logger)

	return journal, storage.Close, nil
}

// Run blocks until the UI exits. The journal is always locked afterwards so
// the passphrase does not outlive the session.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	runErr := a.ui.Run(ctx)
	if errors.Is(runErr, tui.ErrUserQuit) {
		runErr = nil
	}

	if err := a.journal.Lock(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("error locking journal")
	}
	if a.closer != nil {
		if err := a.closer(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("error closing storage")
		}
	}

	return runErr
}
