package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/heart-journal/internal/app"
	"github.com/MKhiriev/heart-journal/internal/service"
	"github.com/MKhiriev/heart-journal/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTimeout = 3 * time.Second

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// DayModel shows the memories of one calendar day and lets the user move
// between days, write, delete and copy notes.
type DayModel struct {
	ctx     context.Context
	journal service.Journal
	now     func() time.Time

	date    time.Time
	book    models.NoteBook
	idx     int
	loading bool

	composing bool
	saving    bool
	draft     textarea.Model

	status string
	errMsg string
}

func NewDayModel(ctx context.Context, journal service.Journal) *DayModel {
	draft := textarea.New()
	draft.Placeholder = "Type a small memory: what you felt, a scent, a sound..."
	draft.SetWidth(54)
	draft.SetHeight(4)
	draft.ShowLineNumbers = false

	m := &DayModel{
		ctx:     ctx,
		journal: journal,
		now:     time.Now,
		book:    models.NoteBook{},
		draft:   draft,
	}
	m.date = m.today()

	return m
}

func (m *DayModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

// entered is called by RootModel every time the page is opened.
func (m *DayModel) entered(string) tea.Cmd {
	m.composing = false
	m.saving = false
	m.status = ""
	m.errMsg = ""
	m.date = m.today()
	m.idx = 0
	return m.Init()
}

func (m *DayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.errMsg = ""
		m.book = msg.book
		if m.book == nil {
			m.book = models.NoteBook{}
		}
		m.clampIdx()
		return m, nil
	case dayChangedMsg:
		m.saving = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.composing = false
		m.errMsg = ""
		if len(msg.notes) == 0 {
			delete(m.book, msg.date)
		} else {
			m.book[msg.date] = msg.notes
		}
		m.clampIdx()
		return m, m.setStatus(msg.status)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if m.composing {
			return m.updateComposing(msg)
		}
		return m.updateBrowsing(msg)
	}

	if m.composing {
		var cmd tea.Cmd
		m.draft, cmd = m.draft.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DayModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := m.dayNotes()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.prevDay):
		m.moveDays(-1)
	case key.Matches(msg, keys.nextDay):
		m.moveDays(1)
	case key.Matches(msg, keys.today):
		m.date = m.today()
		m.idx = 0
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(notes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.composing = true
		m.errMsg = ""
		m.draft.Reset()
		return m, m.draft.Focus()
	case key.Matches(msg, keys.delete):
		if len(notes) == 0 || m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.cmdDelete(m.dateKey(), notes[m.idx].ID)
	case key.Matches(msg, keys.copy):
		if len(notes) == 0 {
			return m, nil
		}
		if err := copyToClipboard(notes[m.idx].Text); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		return m, m.setStatus(app.MsgCopied)
	case key.Matches(msg, keys.lock):
		return m, m.cmdLock()
	}

	return m, nil
}

func (m *DayModel) updateComposing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.composing = false
		m.draft.Blur()
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		text := strings.TrimSpace(m.draft.Value())
		if text == "" {
			m.errMsg = app.MsgEmptyMemory
			return m, nil
		}
		m.saving = true
		return m, m.cmdSave(m.dateKey(), text)
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	return m, cmd
}

func (m *DayModel) View() string {
	var b strings.Builder

	b.WriteString(m.date.Format("Monday, 2 January 2006"))
	b.WriteString("\n\n")

	notes := m.dayNotes()
	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(notes) == 0:
		b.WriteString(helpStyle.Render(app.MsgNoMemories))
		b.WriteString("\n")
	default:
		for i, n := range notes {
			cursor := "  "
			line := fitText(strings.ReplaceAll(n.Text, "\n", " "), 60)
			if i == m.idx && !m.composing {
				cursor = "♥ "
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor)
			b.WriteString(timeStyle.Render(n.CreatedAt.Local().Format("15:04")))
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.composing {
		b.WriteString("\n")
		b.WriteString(m.draft.View())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	title := fmt.Sprintf("MEMORIES: %s (%d days written)", m.dateKey(), m.book.Dates())
	return renderPage(title, strings.TrimRight(b.String(), "\n"), m.hotKeys())
}

func (m *DayModel) hotKeys() string {
	if m.composing {
		return "ctrl+s: save │ esc: cancel"
	}
	return "←/→: day │ t: today │ ↑/↓: select │ n: new │ d: delete │ c: copy │ x: lock │ v: about │ q: quit"
}

// fail reports err. A lost session sends the user back to the heart key.
func (m *DayModel) fail(err error) tea.Cmd {
	if errors.Is(err, service.ErrLocked) {
		return func() tea.Msg { return NavigateTo{Page: pageHeartKey, Notice: app.MsgJournalLocked} }
	}
	m.errMsg = humanizeError(err)
	return nil
}

func (m *DayModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *DayModel) today() time.Time {
	y, mo, d := m.now().Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.Local)
}

func (m *DayModel) moveDays(n int) {
	m.date = m.date.AddDate(0, 0, n)
	m.idx = 0
}

func (m *DayModel) dateKey() string {
	return m.date.Format(models.DateLayout)
}

func (m *DayModel) dayNotes() []models.NoteEntry {
	return m.book.Notes(m.dateKey())
}

func (m *DayModel) clampIdx() {
	if n := len(m.dayNotes()); m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *DayModel) cmdLoad() tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		book, err := journal.LoadAllNotes(ctx)
		return notesLoadedMsg{book: book, err: err}
	}
}

func (m *DayModel) cmdSave(date, text string) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		notes, err := journal.SaveNoteForDate(ctx, date, text)
		return dayChangedMsg{date: date, notes: notes, status: app.MsgMemorySaved, err: err}
	}
}

func (m *DayModel) cmdDelete(date, id string) tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		notes, err := journal.DeleteNote(ctx, date, id)
		return dayChangedMsg{date: date, notes: notes, status: app.MsgMemoryDeleted, err: err}
	}
}

func (m *DayModel) cmdLock() tea.Cmd {
	ctx, journal := m.ctx, m.journal
	return func() tea.Msg {
		if err := journal.Lock(ctx); err != nil {
			return NavigateTo{Page: pageHeartKey, Notice: humanizeError(err)}
		}
		return NavigateTo{Page: pageHeartKey}
	}
}
