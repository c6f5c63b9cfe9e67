// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/heart-journal/internal/app"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// HeartKeyModel asks for the passphrase. The first key ever entered creates
// the vault; later ones must match it.
type HeartKeyModel struct {
	ctx     context.Context
	journal service.Journal

	input       textinput.Model
	established bool
	submitting  bool
	errMsg      string
}

func NewHeartKeyModel(ctx context.Context, journal service.Journal) *HeartKeyModel {
	input := textinput.New()
	input.Placeholder = "heart key"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '♥'
	input.Focus()

	return &HeartKeyModel{
		ctx:     ctx,
		journal: journal,
		input:   input,
	}
}

func (m *HeartKeyModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdVaultStatus())
}

func (m *HeartKeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case vaultStatusMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.established = msg.established
		return m, nil
	case unlockDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if !msg.outcome.Granted() {
			m.errMsg = app.MsgHeartKeyRejected
			m.input.SetValue("")
			return m, nil
		}
		m.errMsg = ""
		m.established = true
		m.input.SetValue("")
		return m, func() tea.Msg { return NavigateTo{Page: pageJournal} }
	case tea.KeyMsg:
		if key.Matches(msg, keys.enter) {
			if m.submitting {
				return m, nil
			}
			passphrase := m.input.Value()
			if strings.TrimSpace(passphrase) == "" {
				m.errMsg = app.MsgHeartKeyRequired
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(passphrase)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *HeartKeyModel) View() string {
	var b strings.Builder

	if m.established {
		b.WriteString("Enter your heart key to open the journal.\n\n")
	} else {
		b.WriteString("Choose a heart key. It opens this journal from now on\n")
		b.WriteString("and cannot be recovered if forgotten.\n\n")
	}

	b.WriteString("[")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nOpening...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("HEART KEY", strings.TrimRight(b.String(), "\n"), "enter: unlock")
}

func (m *HeartKeyModel) cmdVaultStatus() tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		established, err := journal.IsVaultEstablished(ctx)
		return vaultStatusMsg{established: established, err: err}
	}
}

func (m *HeartKeyModel) cmdUnlock(passphrase string) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		outcome, err := journal.CreateOrVerify(ctx, passphrase)
		return unlockDoneMsg{outcome: outcome, err: err}
	}
}

// entered clears the form when the page is shown again after a lock.
func (m *HeartKeyModel) entered(notice string) tea.Cmd {
	m.input.SetValue("")
	m.submitting = false
	m.errMsg = notice
	return tea.Batch(m.input.Focus(), m.cmdVaultStatus())
}
