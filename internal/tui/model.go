package tui

import (
	"unicode"

	"github.com/Murilocrlh/jogodaforca/internal/game"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

type screen int

const (
	screenStart screen = iota
	screenGame
)

// Start screen entries.
const (
	menuPlay = iota
	menuExit
)

var menuLabels = []string{"Jogar", "Sair"}

// maxInput bounds the entry field; only its first letter is ever guessed.
const maxInput = 8

// Model is the terminal client: a start screen and the game screen.
type Model struct {
	width, height int
	screen        screen
	menuIndex     int
	picker        game.Picker
	session       *game.Session
	input         []rune
	status        string
}

// NewModel returns a Model on the start screen drawing words from picker.
func NewModel(picker game.Picker) Model {
	return Model{picker: picker, width: 80, height: 24}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles all incoming messages and updates the model state accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenStart {
			return m.updateStart(msg)
		}
		return m.updateGame(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) updateStart(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "up", "shift+tab", "k":
		m.menuIndex = (m.menuIndex + len(menuLabels) - 1) % len(menuLabels)
	case "down", "tab", "j":
		m.menuIndex = (m.menuIndex + 1) % len(menuLabels)
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		if m.menuIndex == menuExit {
			return m, tea.Quit
		}
		m.session = game.New(m.picker)
		m.screen = screenGame
		m.input = nil
		m.status = ""
		log.Debug().Str("round", m.session.ID).Msg("round started")
	}
	return m, nil
}

func (m Model) updateGame(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.screen = screenStart
		m.session = nil
		m.menuIndex = menuPlay
		return m, nil
	case "ctrl+r":
		m.session.Reset()
		m.input = nil
		m.status = ""
		log.Debug().Str("round", m.session.ID).Msg("round reset")
		return m, nil
	}

	// Input is disabled once the round is over.
	if m.session.Status() != game.StatusInProgress {
		return m, nil
	}

	switch key.Type {
	case tea.KeyEnter:
		return m.submit(), nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range key.Runes {
			if len(m.input) < maxInput && unicode.IsPrint(r) {
				m.input = append(m.input, r)
			}
		}
	}
	return m, nil
}

// submit guesses the entry field. A letter that is taken clears the field;
// rejected input stays so it can be corrected.
func (m Model) submit() Model {
	outcome, letter, ok := m.session.GuessInput(string(m.input))
	if !ok {
		return m
	}
	m.status = m.session.Message(outcome, letter)
	if outcome == game.OutcomeHit || outcome == game.OutcomeMiss {
		m.input = nil
	}
	log.Debug().
		Str("round", m.session.ID).
		Str("outcome", string(outcome)).
		Str("status", string(m.session.Status())).
		Msg("guess")
	return m
}

// Session exposes the active round, nil on the start screen.
func (m Model) Session() *game.Session { return m.session }

// Status returns the current status line.
func (m Model) Status() string { return m.status }

// Input returns the entry field contents.
func (m Model) Input() string { return string(m.input) }
