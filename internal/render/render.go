// Package render formats cards and hand results for the terminal.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhand/internal/table"
	"github.com/lox/pokerhand/poker"
)

var (
	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// DisableColor strips ANSI styling from all output.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Card renders a single card glyph in its suit colour.
func Card(c poker.Card) string {
	if c.Suit.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// Cards renders cards separated by spaces.
func Cards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// Label renders the winning category.
func Label(c poker.HandCategory) string {
	return LabelStyle.Render(c.String())
}

// Evaluation renders the cards followed by the category label.
func Evaluation(ev poker.Evaluation) string {
	return Cards(ev.Cards) + "  " + Label(ev.Category)
}

// Result renders a table draw. Unclassified draws show the raw card codes and
// the error.
func Result(r *table.Result) string {
	if r.Evaluation != nil {
		return fmt.Sprintf("#%-3d %s", r.Number, Evaluation(*r.Evaluation))
	}
	codes := make([]string, len(r.Cards))
	for i, c := range r.Cards {
		codes[i] = c.Code
	}
	return fmt.Sprintf("#%-3d %s  %s", r.Number, strings.Join(codes, " "), ErrorStyle.Render(r.Error))
}

// Signals lists every pattern signal as "key=true|false", sorted by key.
func Signals(s poker.Signals) string {
	m := s.Map()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		line := fmt.Sprintf("%s=%t", k, m[k])
		if !m[k] {
			line = MutedStyle.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}

// Status renders the deck status label.
func Status(s string) string {
	return StatusStyle.Render(s)
}

// Error renders an error message.
func Error(err error) string {
	return ErrorStyle.Render(err.Error())
}
