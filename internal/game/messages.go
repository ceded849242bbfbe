package game

import "fmt"

// Message returns the status line shown after a guess of letter produced o.
// An empty string means nothing needs to be shown.
func (s *Session) Message(o Outcome, letter rune) string {
	switch o {
	case OutcomeAlreadyGuessed:
		return fmt.Sprintf("Letra '%c' já foi utilizada!", letter)
	case OutcomeInvalidInput:
		return "Por favor, insira uma letra válida."
	}
	return s.StatusLine()
}

// StatusLine describes a finished round; it is empty while in progress.
func (s *Session) StatusLine() string {
	word, over := s.SecretWord()
	if !over {
		return ""
	}
	if s.status == StatusWon {
		return "Parabéns! Você acertou a palavra: " + word
	}
	return "Você perdeu! A palavra era: " + word
}
