// Package tui is the terminal interface of the heart journal: a heart key
// screen followed by a day view of memories. It works against any
// [service.Journal], local or remote.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/heart-journal/internal/logger"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit the program")

type TUI struct {
	journal   service.Journal
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	programOptions []tea.ProgramOption
}

func New(journal service.Journal, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		journal:        journal,
		buildInfo:      buildInfo,
		logger:         logger,
		programOptions: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run shows the heart key screen and then the day view until the user quits.
// ErrUserQuit is returned when the program was left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.programOptions...)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]page{
		pageHeartKey: NewHeartKeyModel(ctx, t.journal),
		pageJournal:  NewDayModel(ctx, t.journal),
	}

	return NewRootModel(pages, pageHeartKey, t.buildInfo)
}
