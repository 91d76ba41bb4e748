package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles and symbols every renderer pulls from.
type Theme struct {
	Title, Success, Pending, Accent, Muted, Error lipgloss.Style
	Selected, Done, Help, Border                  lipgloss.Style

	BoxChecked, BoxUnchecked string
	SymOK, SymFail           string
}

var current = classic()

// SetTheme switches the palette. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mono":
		current = mono()
	case "neon":
		current = neon()
	default:
		current = classic()
	}
}

// Current returns the active theme.
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		BoxChecked:   "☑",
		BoxUnchecked: "☐",
		SymOK:        "✔",
		SymFail:      "✖",
	}
}

func neon() Theme {
	t := classic()
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	t.BoxChecked, t.BoxUnchecked = "◼", "◻"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Success: plain, Pending: plain, Accent: plain, Muted: plain, Error: plain,
		Selected: plain, Done: plain, Help: plain,
		Border:       lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		BoxChecked:   "[x]",
		BoxUnchecked: "[ ]",
		SymOK:        "x",
		SymFail:      "!",
	}
}
