// internal/store/memory.go
//
// In-memory round store for the HTTP API.
// Rounds are ephemeral by design of the game: state is lost when the
// process restarts.
//
// Characteristics:
//   - Stores *game.Session objects keyed by Session.ID.
//   - Update runs one action against a round while holding the write lock,
//     so every action on a round completes before the next starts.
//   - Sweep drops rounds that have been idle longer than a cutoff.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Murilocrlh/jogodaforca/internal/game"
)

// ErrNotFound is returned when no round exists for an ID.
var ErrNotFound = errors.New("store: round not found")

// Store defines the round persistence interface.
type Store interface {
	// Save persists or replaces a round.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a round by ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Update runs fn against the round exclusively.
	Update(ctx context.Context, id string, fn func(*game.Session) error) error

	// Delete removes a round; missing IDs are not an error.
	Delete(ctx context.Context, id string) error

	// Sweep removes rounds idle since before cutoff and returns how many.
	Sweep(ctx context.Context, cutoff time.Time) int

	// Len reports how many rounds are held.
	Len() int
}

type entry struct {
	session  *game.Session
	lastSeen time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex      // guards rounds
	rounds map[string]*entry // keyed by Session.ID
	now    func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return newMemory(time.Now)
}

func newMemory(now func() time.Time) *memory {
	return &memory{rounds: make(map[string]*entry), now: now}
}

func (m *memory) Save(ctx context.Context, s *game.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rounds[s.ID] = &entry{session: s, lastSeen: m.now()}
	return nil
}

// Get returns the stored pointer; callers that mutate it must go through
// Update instead.
func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.rounds[id]; ok {
		return e.session, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.rounds[id]
	if !ok {
		return ErrNotFound
	}
	e.lastSeen = m.now()
	return fn(e.session)
}

func (m *memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rounds, id)
	return nil
}

func (m *memory) Sweep(ctx context.Context, cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, e := range m.rounds {
		if ctx.Err() != nil {
			break
		}
		if e.lastSeen.Before(cutoff) {
			delete(m.rounds, id)
			n++
		}
	}
	return n
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rounds)
}
