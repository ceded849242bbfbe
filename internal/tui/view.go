package tui

import (
	"fmt"
	"strings"

	"github.com/Murilocrlh/jogodaforca/internal/game"

	"github.com/charmbracelet/lipgloss"
)

const panelWidth = 44

type styles struct {
	title    lipgloss.Style
	panel    lipgloss.Style
	mask     lipgloss.Style
	label    lipgloss.Style
	selected lipgloss.Style
	normal   lipgloss.Style
	input    lipgloss.Style
	won      lipgloss.Style
	lost     lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
}

var st = styles{
	title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("2")).Padding(1, 2).Width(panelWidth),
	mask:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	label:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	input:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(12),
	won:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	lost:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
}

// gallows is drawn with one more body part per wrong guess.
var gallows = [game.MaxAttempts + 1][]string{
	{"  +---+", "  |   |", "      |", "      |", "      |", "========"},
	{"  +---+", "  |   |", "  O   |", "      |", "      |", "========"},
	{"  +---+", "  |   |", "  O   |", "  |   |", "      |", "========"},
	{"  +---+", "  |   |", "  O   |", " /|   |", "      |", "========"},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", "      |", "========"},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", " /    |", "========"},
	{"  +---+", "  |   |", "  O   |", " /|\\  |", " / \\  |", "========"},
}

// View implements tea.Model.
func (m Model) View() string {
	var body string
	if m.screen == screenStart {
		body = m.viewStart()
	} else {
		body = m.viewGame()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewStart() string {
	var b strings.Builder
	b.WriteString(st.title.Render("JOGO DA FORCA"))
	b.WriteString("\n\n")
	for i, label := range menuLabels {
		if i == m.menuIndex {
			b.WriteString(st.selected.Render("> " + label))
		} else {
			b.WriteString(st.normal.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.help.Render("↑/↓ escolher • enter confirmar"))
	return st.panel.Render(b.String())
}

func (m Model) viewGame() string {
	s := m.session
	wrong := game.MaxAttempts - s.RemainingAttempts()

	guessed := make([]string, 0, len(s.GuessedLetters()))
	for _, r := range s.GuessedLetters() {
		guessed = append(guessed, string(r))
	}

	var b strings.Builder
	b.WriteString(st.title.Render("JOGO DA FORCA"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(gallows[wrong], "\n"))
	b.WriteString("\n\n")
	b.WriteString(st.mask.Render(s.View().Mask))
	b.WriteString("\n\n")
	b.WriteString(st.label.Render("Categoria: ") + s.Category() + "\n")
	b.WriteString(st.label.Render("Tentativas restantes: ") + fmt.Sprint(s.RemainingAttempts()) + "\n")
	b.WriteString(st.label.Render("Letras usadas: ") + strings.Join(guessed, ", ") + "\n\n")

	if s.Status() == game.StatusInProgress {
		b.WriteString(st.input.Render(string(m.input) + "█"))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.statusStyle().Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(st.help.Render("enter adivinhar • ctrl+r reiniciar • esc voltar ao início"))
	return st.panel.Render(b.String())
}

func (m Model) statusStyle() lipgloss.Style {
	switch m.session.Status() {
	case game.StatusWon:
		return st.won
	case game.StatusLost:
		return st.lost
	}
	return st.warn
}
