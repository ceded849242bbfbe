package words

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// fixedSource returns queued indices in order.
type fixedSource struct{ picks []int }

func (f *fixedSource) IntN(n int) int {
	v := f.picks[0]
	f.picks = f.picks[1:]
	return v % n
}

func TestNewRejectsBadConfiguration(t *testing.T) {
	tests := map[string]map[string][]string{
		"empty map":     {},
		"empty list":    {"Cores": {}},
		"blank name":    {" ": {"azul"}},
		"empty word":    {"Cores": {"azul", ""}},
		"digit in word": {"Cores": {"azul5"}},
		"space in word": {"Cores": {"azul claro"}},
	}
	for name, cats := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := New(cats, nil)
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("expected ErrConfiguration, got %v", err)
			}
		})
	}
}

func TestPickRandomUsesSortedCategories(t *testing.T) {
	b, err := New(map[string][]string{
		"Cores":   {"vermelho", "azul", "amarelo"},
		"Animais": {"gato", "cachorro"},
	}, &fixedSource{picks: []int{0, 1, 1, 2}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	cat, word := b.PickRandom()
	if cat != "Animais" || word != "cachorro" {
		t.Fatalf("expected Animais/cachorro, got %s/%s", cat, word)
	}
	cat, word = b.PickRandom()
	if cat != "Cores" || word != "amarelo" {
		t.Fatalf("expected Cores/amarelo, got %s/%s", cat, word)
	}
}

func TestPickRandomSeededIsReproducible(t *testing.T) {
	cats := map[string][]string{
		"Tecnologia": {"kotlin", "android", "desenvolvedor"},
		"Animais":    {"gato", "cachorro", "elefante"},
		"Cores":      {"vermelho", "azul", "amarelo"},
	}
	a, _ := New(cats, rand.New(rand.NewPCG(7, 11)))
	b, _ := New(cats, rand.New(rand.NewPCG(7, 11)))
	for i := 0; i < 20; i++ {
		ca, wa := a.PickRandom()
		cb, wb := b.PickRandom()
		if ca != cb || wa != wb {
			t.Fatalf("draw %d differs: %s/%s vs %s/%s", i, ca, wa, cb, wb)
		}
		found := false
		for _, w := range cats[ca] {
			if w == wa {
				found = true
			}
		}
		if !found {
			t.Fatalf("word %q not in category %q", wa, ca)
		}
	}
}

func TestNewCopiesInput(t *testing.T) {
	cats := map[string][]string{"Cores": {"azul"}}
	b, err := New(cats, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	cats["Cores"][0] = "verde"
	if got := b.Words("Cores")[0]; got != "azul" {
		t.Fatalf("bank mutated through caller map: %q", got)
	}
}

func TestDefaultBank(t *testing.T) {
	b, err := Default(CryptoSource{})
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	cats, total := b.Stats()
	if cats != 3 || total != 9 {
		t.Fatalf("expected 3 categories / 9 words, got %d / %d", cats, total)
	}
	cat, word := b.PickRandom()
	if cat == "" || word == "" {
		t.Fatalf("empty pick %q/%q", cat, word)
	}
}
