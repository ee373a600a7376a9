package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agentpad/agentpad/internal/domain"
)

// Colors defines the color palette for the pad viewer.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color

	Task     lipgloss.Color
	Pointer  lipgloss.Color
	Note     lipgloss.Color
	Question lipgloss.Color
	Answer   lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red

	Task:     lipgloss.Color("#74B9FF"), // Light blue
	Pointer:  lipgloss.Color("#A29BFE"), // Lavender
	Note:     lipgloss.Color("#DFE6E9"), // Light gray
	Question: lipgloss.Color("#FDCB6E"), // Yellow
	Answer:   lipgloss.Color("#00B894"), // Green
}

// Styles holds the lipgloss styles for the pad viewer.
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style
	Error  lipgloss.Style
	Body   lipgloss.Style

	Task     lipgloss.Style
	Pointer  lipgloss.Style
	Note     lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Footer: lipgloss.NewStyle().Foreground(Colors.Muted),
		Error:  lipgloss.NewStyle().Foreground(Colors.Error),
		Body:   lipgloss.NewStyle(),

		Task:     lipgloss.NewStyle().Bold(true).Foreground(Colors.Task),
		Pointer:  lipgloss.NewStyle().Bold(true).Foreground(Colors.Pointer),
		Note:     lipgloss.NewStyle().Bold(true).Foreground(Colors.Note),
		Question: lipgloss.NewStyle().Bold(true).Foreground(Colors.Question),
		Answer:   lipgloss.NewStyle().Bold(true).Foreground(Colors.Answer),
	}
}

// ForType returns the header style for an entry type.
func (s Styles) ForType(t domain.EntryType) lipgloss.Style {
	switch t {
	case domain.EntryTask:
		return s.Task
	case domain.EntryPointer:
		return s.Pointer
	case domain.EntryQuestion:
		return s.Question
	case domain.EntryAnswer:
		return s.Answer
	default:
		return s.Note
	}
}
