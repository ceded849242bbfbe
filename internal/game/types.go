// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - Status:  round state (in progress / won / lost).
//   - Outcome: result of a single guess.
//   - Picker:  anything that can draw a (category, word) pair.
//   - View:    read-only display snapshot for UI layers.

package game

// MaxAttempts is the number of wrong guesses allowed per round.
const MaxAttempts = 6

// Placeholder marks an unrevealed position in the mask.
const Placeholder = '_'

// Status is the coarse state of a round.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Outcome is the evaluation result of one guess.
//   - "hit":             letter occurs in the word; every occurrence revealed.
//   - "miss":            letter absent; one attempt consumed.
//   - "already_guessed": letter was tried before this round; nothing changed.
//   - "invalid_input":   not a letter; nothing changed.
//   - "game_over":       the round already ended; nothing changed.
type Outcome string

const (
	OutcomeHit            Outcome = "hit"
	OutcomeMiss           Outcome = "miss"
	OutcomeAlreadyGuessed Outcome = "already_guessed"
	OutcomeInvalidInput   Outcome = "invalid_input"
	OutcomeGameOver       Outcome = "game_over"
)

// Picker draws a random (category, word) pair. *words.Bank implements it.
type Picker interface {
	PickRandom() (category, word string)
}

// View is a display snapshot of a Session.
type View struct {
	ID                string   `json:"id"`
	Category          string   `json:"category"`
	Mask              string   `json:"mask"` // letters/placeholders joined by spaces
	RemainingAttempts int      `json:"remainingAttempts"`
	GuessedLetters    []string `json:"guessedLetters"`
	Status            Status   `json:"status"`
	Word              string   `json:"word,omitempty"` // only once the round is over
}
