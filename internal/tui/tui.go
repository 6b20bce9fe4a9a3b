// Package tui is an interactive terminal front end: request a deck, draw
// hands from it and watch each hand get classified.
package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/internal/deckapi"
	"github.com/lox/pokerhand/internal/render"
	"github.com/lox/pokerhand/internal/table"
)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

type freshMsg struct {
	deck deckapi.Deck
	err  error
}

type dealtMsg struct {
	result *table.Result
	err    error
}

// Model is the bubbletea model.
type Model struct {
	ctx       context.Context
	table     *table.Table
	logger    *log.Logger
	drawCount int

	keys    keyMap
	help    help.Model
	log     viewport.Model
	entries []string

	busy     bool
	err      error
	width    int
	quitting bool
}

// New creates a model that draws drawCount cards per draw.
func New(ctx context.Context, tbl *table.Table, drawCount int, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if drawCount <= 0 {
		drawCount = deckapi.DefaultDrawCount
	}
	return &Model{
		ctx:       ctx,
		table:     tbl,
		logger:    logger.WithPrefix("tui"),
		drawCount: drawCount,
		keys:      defaultKeys(),
		help:      help.New(),
		log:       viewport.New(80, 12),
	}
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, tbl *table.Table, drawCount int, logger *log.Logger) error {
	p := tea.NewProgram(New(ctx, tbl, drawCount, logger), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.log.Width = msg.Width
		m.log.Height = max(msg.Height-6, 3)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NewDeck):
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.fresh()
		case key.Matches(msg, m.keys.Draw):
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.deal()
		case key.Matches(msg, m.keys.Up):
			m.log.LineUp(1)
		case key.Matches(msg, m.keys.Down):
			m.log.LineDown(1)
		}
		return m, nil

	case freshMsg:
		m.busy = false
		m.err = msg.err
		if msg.err != nil {
			m.logger.Error("Failed to get deck", "error", msg.err)
			return m, nil
		}
		m.keys.Draw.SetEnabled(true)
		m.addEntry(render.MutedStyle.Render("New deck " + msg.deck.ID))
		return m, nil

	case dealtMsg:
		m.busy = false
		m.err = msg.err
		if msg.err != nil {
			m.logger.Error("Failed to draw", "error", msg.err)
			return m, nil
		}
		m.addEntry(render.Result(msg.result))
		return m, nil
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)
	return m, cmd
}

func (m *Model) fresh() tea.Cmd {
	return func() tea.Msg {
		deck, err := m.table.Fresh(m.ctx)
		return freshMsg{deck: deck, err: err}
	}
}

func (m *Model) deal() tea.Cmd {
	return func() tea.Msg {
		result, err := m.table.Deal(m.ctx, m.drawCount)
		return dealtMsg{result: result, err: err}
	}
}

func (m *Model) addEntry(entry string) {
	m.entries = append(m.entries, entry)
	m.log.SetContent(strings.Join(m.entries, "\n"))
	m.log.GotoBottom()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(" ♠ ♥ Poker Hands ♦ ♣ "))
	b.WriteString("  ")
	b.WriteString(render.Status(m.table.Status()))
	if m.busy {
		b.WriteString(render.MutedStyle.Render("  …"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.log.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(render.Error(m.err))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
