package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Murilocrlh/jogodaforca/internal/game"
)

type fixedPicker struct{ category, word string }

func (p fixedPicker) PickRandom() (string, string) { return p.category, p.word }

func TestSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.New(fixedPicker{"Animais", "gato"})

	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Get(ctx, s.ID)
	if err != nil || got != s {
		t.Fatalf("get: %v (same=%v)", err, got == s)
	}
	if err := st.Delete(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMissingRound(t *testing.T) {
	err := NewMemoryStore().Update(context.Background(), "nope", func(*game.Session) error {
		t.Fatal("fn must not run")
		return nil
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateSerialisesGuesses(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := game.New(fixedPicker{"Tecnologia", "desenvolvedor"})
	_ = st.Save(ctx, s)

	var wg sync.WaitGroup
	hits := make(chan game.Outcome, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, s.ID, func(s *game.Session) error {
				hits <- s.Guess('E')
				return nil
			})
		}()
	}
	wg.Wait()
	close(hits)

	first := 0
	for o := range hits {
		if o == game.OutcomeHit {
			first++
		} else if o != game.OutcomeAlreadyGuessed {
			t.Fatalf("unexpected outcome %s", o)
		}
	}
	if first != 1 {
		t.Fatalf("expected exactly one hit, got %d", first)
	}
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	m := newMemory(func() time.Time { return now })

	old := game.New(fixedPicker{"Cores", "azul"})
	_ = m.Save(ctx, old)
	now = now.Add(time.Hour)
	fresh := game.New(fixedPicker{"Cores", "azul"})
	_ = m.Save(ctx, fresh)

	if n := m.Sweep(ctx, now.Add(-30*time.Minute)); n != 1 {
		t.Fatalf("expected 1 swept, got %d", n)
	}
	if m.Len() != 1 {
		t.Fatalf("expected 1 left, got %d", m.Len())
	}
	if _, err := m.Get(ctx, fresh.ID); err != nil {
		t.Fatalf("fresh round gone: %v", err)
	}
}
