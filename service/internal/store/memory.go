package store

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/jason-s-yu/uno/engine"
)

// Memory keeps encoded games in a map. Games are stored encoded so callers
// never share slices with the store.
type Memory struct {
	mu    sync.RWMutex
	games map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{games: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, id string) (engine.Game, error) {
	m.mu.RLock()
	b, ok := m.games[id]
	m.mu.RUnlock()
	if !ok {
		return engine.Game{}, errors.Wrapf(ErrNotFound, "memory: %s", id)
	}
	g, err := decode(b)
	if err != nil {
		return engine.Game{}, errors.Wrapf(err, "memory: decoding %s", id)
	}
	return g, nil
}

func (m *Memory) Save(_ context.Context, id string, g engine.Game) error {
	b, err := encode(g)
	if err != nil {
		return errors.Wrapf(err, "memory: encoding %s", id)
	}
	m.mu.Lock()
	m.games[id] = b
	m.mu.Unlock()
	return nil
}
