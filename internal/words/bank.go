// internal/words/bank.go
//
// Word bank for the game engine.
//
// Responsibilities:
//   - Hold the static category → words mapping (embedded, not user configurable).
//   - Validate it once at construction; a bad bank is a startup error.
//   - Draw a random (category, word) pair from an injectable randomness source.
//
// Constraints:
//   • At least one category; every category has at least one word.
//   • Words are non-empty and letters only (unicode.IsLetter).
//   • Category names are kept sorted so a seeded Source is reproducible.

package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"unicode"

	"github.com/Murilocrlh/jogodaforca/assets"
)

// ErrConfiguration reports a word bank that cannot be played.
var ErrConfiguration = errors.New("words: invalid configuration")

// Source picks an index in [0, n). *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// Bank is an immutable category → words mapping.
type Bank struct {
	names []string
	words map[string][]string
	src   Source
}

// New validates categories and returns a Bank drawing from src.
// A nil src falls back to CryptoSource.
func New(categories map[string][]string, src Source) (*Bank, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrConfiguration)
	}
	if src == nil {
		src = CryptoSource{}
	}

	b := &Bank{words: make(map[string][]string, len(categories)), src: src}
	for name, list := range categories {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: blank category name", ErrConfiguration)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("%w: category %q has no words", ErrConfiguration, name)
		}
		for _, w := range list {
			if !isWord(w) {
				return nil, fmt.Errorf("%w: category %q has invalid word %q", ErrConfiguration, name, w)
			}
		}
		b.names = append(b.names, name)
		b.words[name] = append([]string(nil), list...)
	}
	sort.Strings(b.names)
	return b, nil
}

// Default builds the bank from the embedded category file.
func Default(src Source) (*Bank, error) {
	cats, err := assets.Categories()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return New(cats, src)
}

// PickRandom draws a category uniformly, then a word uniformly inside it.
func (b *Bank) PickRandom() (category, word string) {
	category = b.names[b.src.IntN(len(b.names))]
	list := b.words[category]
	return category, list[b.src.IntN(len(list))]
}

// Categories returns the category names in sorted order.
func (b *Bank) Categories() []string {
	return append([]string(nil), b.names...)
}

// Words returns a copy of the words configured for category.
func (b *Bank) Words(category string) []string {
	return append([]string(nil), b.words[category]...)
}

// Stats returns counts of loaded data: (categories, words).
func (b *Bank) Stats() (categoryCount int, wordCount int) {
	for _, list := range b.words {
		wordCount += len(list)
	}
	return len(b.names), wordCount
}

// isWord reports whether w is non-empty and made of letters only.
func isWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// CryptoSource draws indices from crypto/rand.
type CryptoSource struct{}

// IntN returns a uniform index in [0, n). It panics if n <= 0.
func (CryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("words: IntN called with non-positive n")
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("words: read crypto/rand: %v", err))
	}
	return int(nBig.Int64())
}
