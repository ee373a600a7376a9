// Package tui provides the interactive pad viewer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentpad/agentpad/internal/domain"
)

const (
	headerHeight = 1
	footerHeight = 1
)

// padChangedMsg signals that the pad file changed on disk.
type padChangedMsg struct{}

// loadedMsg carries one snapshot of the pad.
type loadedMsg struct {
	entries []*domain.Entry
	open    int
	skipped int
	err     error
}

// Model is the pad viewer model.
type Model struct {
	// Dependencies
	pad     domain.EntryLog
	watcher domain.PadWatcher

	// Watch plumbing
	events <-chan struct{}
	cancel context.CancelFunc

	// Components
	viewport viewport.Model
	keys     KeyMap
	styles   Styles

	// State
	entries []*domain.Entry
	open    int
	skipped int
	err     error

	width  int
	height int
	ready  bool
}

// New creates a new pad viewer model.
func New(pad domain.EntryLog, watcher domain.PadWatcher) *Model {
	m := &Model{
		pad:    pad,
		keys:   DefaultKeyMap(),
		styles: DefaultStyles(),
	}
	if watcher != nil {
		ctx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		events, err := watcher.Watch(ctx)
		if err != nil {
			m.err = err
		} else {
			m.events = events
		}
	}
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load, m.waitForChange())
}

// load reads one snapshot of the pad.
func (m *Model) load() tea.Msg {
	seq, err := m.pad.Scan()
	if err != nil {
		return loadedMsg{err: err}
	}
	var entries []*domain.Entry
	skipped := 0
	for item := range seq {
		if item.Skip != nil {
			skipped++
			continue
		}
		entries = append(entries, item.Entry)
	}
	return loadedMsg{entries: entries, open: countOpen(entries), skipped: skipped}
}

// waitForChange blocks on the next watcher event.
func (m *Model) waitForChange() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return padChangedMsg{}
	}
}

// countOpen returns the number of questions no answer closes.
func countOpen(entries []*domain.Entry) int {
	asked := make(map[string]bool)
	closed := make(map[string]bool)
	for _, e := range entries {
		switch e.Type {
		case domain.EntryQuestion:
			asked[e.ID] = true
		case domain.EntryAnswer:
			closed[e.Closes] = true
		}
	}
	open := 0
	for id := range asked {
		if !closed[id] {
			open++
		}
	}
	return open
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - headerHeight - footerHeight
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
			m.ready = true
			m.viewport.SetContent(m.renderEntries())
			m.viewport.GotoBottom()
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.load
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}

	case padChangedMsg:
		return m, tea.Batch(m.load, m.waitForChange())

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.entries = msg.entries
		m.open = msg.open
		m.skipped = msg.skipped
		if m.ready {
			atBottom := m.viewport.AtBottom()
			m.viewport.SetContent(m.renderEntries())
			if atBottom {
				m.viewport.GotoBottom()
			}
		}
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the viewer.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.styles.Header.Render(m.headerLine())
	footer := m.styles.Footer.Render("r refresh • G bottom • q quit")
	if m.err != nil {
		return header + "\n" + m.styles.Error.Render(m.err.Error()) + "\n" + footer
	}
	return header + "\n" + m.viewport.View() + "\n" + footer
}

func (m *Model) headerLine() string {
	line := fmt.Sprintf("%s — %d entries, %d open questions", m.pad.Path(), len(m.entries), m.open)
	if m.skipped > 0 {
		line += fmt.Sprintf(" (%d malformed skipped)", m.skipped)
	}
	return line
}

// renderEntries renders all entries for the viewport, headers colored by
// entry type.
func (m *Model) renderEntries() string {
	if len(m.entries) == 0 {
		return m.styles.Footer.Render("(empty pad)")
	}
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.ForType(e.Type).Render(e.Header()))
		b.WriteString("\n")
		b.WriteString(m.styles.Body.Render(strings.TrimSpace(e.Body)))
		b.WriteString("\n")
	}
	return b.String()
}
