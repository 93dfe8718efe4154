// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds the games of one process session; nothing outlives the process.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Keeps insertion order so a session can list its games oldest first.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/mastermind/internal/game"
)

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// List returns every saved game in the order it was first saved.
	List(ctx context.Context) ([]*game.Game, error)
}

type memory struct {
	mu    sync.RWMutex          // guards games and order
	games map[string]*game.Game // keyed by Game.ID
	order []string
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if g == nil || g.ID == "" {
		return errors.New("store: game has no id")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[g.ID]; !ok {
		m.order = append(m.order, g.ID)
	}
	m.games[g.ID] = g
	return nil
}

func (m *memory) List(ctx context.Context) ([]*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*game.Game, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.games[id])
	}
	return out, nil
}
