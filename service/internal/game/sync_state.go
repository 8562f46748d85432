package game

import (
	"context"

	"github.com/jason-s-yu/uno/engine"
	"github.com/jason-s-yu/uno/service/internal/logging"
)

// StateMessageType tags StateMessage frames on the live stream.
const StateMessageType = "state"

// StateMessage is one frame of the live stream: the full view of the game
// for the watching player.
type StateMessage struct {
	Type string            `json:"type"`
	Game engine.PlayerView `json:"game"`
}

func stateMessage(v engine.PlayerView) StateMessage {
	return StateMessage{Type: StateMessageType, Game: v}
}

// Watch streams player's view of the game: the current view first, then a
// fresh one after every change notification. The channel is closed when ctx
// ends. The initial view is checked synchronously so an unknown game or seat
// fails here rather than on the stream.
func (s *Service) Watch(ctx context.Context, id string, player int) (<-chan StateMessage, error) {
	// Subscribe before the first load so no change slips between them.
	changes, cancel := s.events.Subscribe(ctx, id)
	first, err := s.View(ctx, id, player)
	if err != nil {
		cancel()
		return nil, err
	}

	out := make(chan StateMessage, 1)
	out <- stateMessage(first)
	go func() {
		defer close(out)
		defer cancel()
		log := s.log.WithField(logging.GameIDKey, id).WithField(logging.PlayerIndexKey, player)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				v, err := s.View(ctx, id, player)
				if err != nil {
					log.WithError(err).Warn("reloading watched game")
					continue
				}
				select {
				case out <- stateMessage(v):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
