// Package store persists engine.Game snapshots keyed by game id.
package store

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/jason-s-yu/uno/engine"
)

// ErrNotFound is returned by Load when no game is stored under the id.
var ErrNotFound = errors.New("game not found")

// Store loads and saves games. Implementations must be safe for concurrent
// use; callers serialize writers to the same id.
type Store interface {
	Load(ctx context.Context, id string) (engine.Game, error)
	Save(ctx context.Context, id string, g engine.Game) error
}

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

func encode(g engine.Game) ([]byte, error) {
	return codec.Marshal(g)
}

func decode(b []byte) (engine.Game, error) {
	var g engine.Game
	if err := codec.Unmarshal(b, &g); err != nil {
		return engine.Game{}, err
	}
	return g, nil
}
