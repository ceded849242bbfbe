// internal/game/engine.go
//
// Core game engine for a single hangman round.
// Responsibilities:
//   - Start rounds from a (category, word) pair, normalised to upper case.
//   - Validate and apply letter guesses, revealing every occurrence.
//   - Track state transitions: in_progress → won/lost (win checked first).
//   - Reset to a freshly drawn pair from the Picker.
//
// Notes:
//   - A Session is not safe for concurrent use; callers serialise access
//     (see store.Store.Update).
//   - Letters and words go through the same pt-BR upper casing so mixed case
//     is never compared.
package game

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Session holds the mutable state of one round.
type Session struct {
	ID string

	picker    Picker
	category  string
	secret    []rune
	mask      []rune
	guessed   []rune
	remaining int
	status    Status
}

// New constructs a session and starts a round drawn from picker.
func New(picker Picker) *Session {
	s := &Session{ID: uuid.NewString(), picker: picker}
	s.Reset()
	return s
}

// Start begins a round with the given pair.
func (s *Session) Start(category, word string) {
	s.category = category
	s.secret = []rune(normalize(word))
	s.mask = make([]rune, len(s.secret))
	for i := range s.mask {
		s.mask[i] = Placeholder
	}
	s.guessed = s.guessed[:0]
	s.remaining = MaxAttempts
	s.status = StatusInProgress
}

// Reset starts a new round with a fresh pair from the picker.
// Valid from any state.
func (s *Session) Reset() {
	category, word := s.picker.PickRandom()
	s.Start(category, word)
}

// Guess applies one letter and reports the outcome.
//
// Rejections (no state change), in order:
//   - round over → OutcomeGameOver
//   - not a letter → OutcomeInvalidInput
//   - letter already tried → OutcomeAlreadyGuessed
func (s *Session) Guess(letter rune) Outcome {
	if s.status != StatusInProgress {
		return OutcomeGameOver
	}
	if !unicode.IsLetter(letter) {
		return OutcomeInvalidInput
	}
	letter = normalizeRune(letter)
	if s.hasGuessed(letter) {
		return OutcomeAlreadyGuessed
	}
	s.guessed = append(s.guessed, letter)

	outcome := OutcomeMiss
	for i, r := range s.secret {
		if r == letter {
			s.mask[i] = r
			outcome = OutcomeHit
		}
	}
	if outcome == OutcomeMiss && s.remaining > 0 {
		s.remaining--
	}

	switch {
	case !s.hasPlaceholder():
		s.status = StatusWon
	case s.remaining == 0:
		s.status = StatusLost
	}
	return outcome
}

// GuessInput handles raw text from an input field: the text is upper-cased
// and its first rune is guessed. Blank input is ignored (ok == false).
func (s *Session) GuessInput(text string) (outcome Outcome, letter rune, ok bool) {
	text = normalize(strings.TrimSpace(text))
	if text == "" {
		return "", 0, false
	}
	letter = []rune(text)[0]
	return s.Guess(letter), letter, true
}

// Category returns the category of the current round.
func (s *Session) Category() string { return s.category }

// RevealMask returns a copy of the per-position display state.
func (s *Session) RevealMask() []rune { return append([]rune(nil), s.mask...) }

// RemainingAttempts returns how many wrong guesses are left.
func (s *Session) RemainingAttempts() int { return s.remaining }

// GuessedLetters returns the letters tried this round in guess order.
func (s *Session) GuessedLetters() []rune { return append([]rune(nil), s.guessed...) }

// Status reports the current round state.
func (s *Session) Status() Status { return s.status }

// IsWon reports whether every position has been revealed.
func (s *Session) IsWon() bool { return !s.hasPlaceholder() }

// IsLost reports whether attempts ran out without a win.
func (s *Session) IsLost() bool { return s.remaining == 0 && !s.IsWon() }

// SecretWord returns the word once the round is over.
func (s *Session) SecretWord() (string, bool) {
	if s.status == StatusInProgress {
		return "", false
	}
	return string(s.secret), true
}

// View returns a display snapshot.
func (s *Session) View() View {
	cells := make([]string, len(s.mask))
	for i, r := range s.mask {
		cells[i] = string(r)
	}
	guessed := make([]string, len(s.guessed))
	for i, r := range s.guessed {
		guessed[i] = string(r)
	}
	v := View{
		ID:                s.ID,
		Category:          s.category,
		Mask:              strings.Join(cells, " "),
		RemainingAttempts: s.remaining,
		GuessedLetters:    guessed,
		Status:            s.status,
	}
	v.Word, _ = s.SecretWord()
	return v
}

func (s *Session) hasGuessed(letter rune) bool {
	for _, r := range s.guessed {
		if r == letter {
			return true
		}
	}
	return false
}

func (s *Session) hasPlaceholder() bool {
	for _, r := range s.mask {
		if r == Placeholder {
			return true
		}
	}
	return false
}

// normalize upper-cases s. A Caser is stateful, so one is built per call.
func normalize(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(s)
}

// normalizeRune upper-cases a single letter, keeping the first rune when
// the upper form expands (ß → SS).
func normalizeRune(r rune) rune {
	up := []rune(normalize(string(r)))
	if len(up) == 0 {
		return unicode.ToUpper(r)
	}
	return up[0]
}
