// Package game hosts UNO games: it loads a game from the store, applies a
// request through the engine, saves the result and announces the change.
package game

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/uno/engine"
	"github.com/jason-s-yu/uno/service/internal/events"
	"github.com/jason-s-yu/uno/service/internal/logging"
	"github.com/jason-s-yu/uno/service/internal/store"
)

var (
	// ErrNotHost is returned when anyone but seat 0 tries to deal.
	ErrNotHost = errors.New("only the first player can start the game")
	// ErrInvalidName is returned for empty player names.
	ErrInvalidName = errors.New("player name must not be empty")
)

// IsRejected reports whether err is the caller's fault: an engine rule
// violation or a bad request to the service. Anything else is an
// infrastructure failure.
func IsRejected(err error) bool {
	return engine.IsRuleError(err) ||
		errors.Is(err, ErrNotHost) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrBadAction)
}

// Events is what the service needs from a notification backend.
type Events interface {
	events.Notifier
	events.Subscriber
}

// Service runs requests against stored games. Writers to the same game are
// serialized; reads work on whatever snapshot the store returns.
type Service struct {
	store    store.Store
	events   Events
	shuffler engine.Shuffler
	rules    engine.Rules
	newID    func() string
	locks    *keyedMutex
	log      logrus.FieldLogger
}

// Option configures a Service.
type Option func(*Service)

func WithRules(r engine.Rules) Option { return func(s *Service) { s.rules = r } }

func WithShuffler(sh engine.Shuffler) Option { return func(s *Service) { s.shuffler = sh } }

func WithLogger(l logrus.FieldLogger) Option { return func(s *Service) { s.log = l } }

// WithIDGenerator replaces the uuid game ids. Tests use it.
func WithIDGenerator(f func() string) Option { return func(s *Service) { s.newID = f } }

func NewService(st store.Store, ev Events, opts ...Option) *Service {
	s := &Service{
		store:    st,
		events:   ev,
		shuffler: engine.NewRandomShuffler(0),
		rules:    engine.DefaultRules(),
		newID:    uuid.NewString,
		locks:    newKeyedMutex(),
		log:      logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ----------------------------------------------------------------------------
// Lobby
// ----------------------------------------------------------------------------

// Create opens a new game with playerName in seat 0.
func (s *Service) Create(ctx context.Context, playerName string) (string, int, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return "", -1, ErrInvalidName
	}
	id := s.newID()
	g := engine.NewGame(id, name, s.rules)

	unlock := s.locks.Lock(id)
	defer unlock()
	if err := s.store.Save(ctx, id, g); err != nil {
		return "", -1, errors.Wrapf(err, "saving new game %s", id)
	}
	s.notify(ctx, id)
	s.log.WithFields(logrus.Fields{
		logging.GameIDKey:     id,
		logging.PlayerNameKey: name,
	}).Info("game created")
	return id, 0, nil
}

// Join seats playerName in the game and returns the new player's view.
func (s *Service) Join(ctx context.Context, id, playerName string) (engine.PlayerView, error) {
	name := strings.TrimSpace(playerName)
	if name == "" {
		return engine.PlayerView{}, ErrInvalidName
	}
	seat := -1
	g, err := s.update(ctx, id, func(g engine.Game) (engine.Game, error) {
		next, idx, err := g.Join(name)
		seat = idx
		return next, err
	})
	if err != nil {
		return engine.PlayerView{}, err
	}
	s.log.WithFields(logrus.Fields{
		logging.GameIDKey:      id,
		logging.PlayerNameKey:  name,
		logging.PlayerIndexKey: seat,
	}).Info("player joined")
	return engine.ViewForPlayer(g, seat)
}

// Start deals the next round. Only seat 0 may deal.
func (s *Service) Start(ctx context.Context, id string, player int) (engine.PlayerView, error) {
	if player != 0 {
		return engine.PlayerView{}, ErrNotHost
	}
	g, err := s.update(ctx, id, func(g engine.Game) (engine.Game, error) {
		return g.StartRound(s.shuffler)
	})
	if err != nil {
		return engine.PlayerView{}, err
	}
	s.log.WithFields(logrus.Fields{
		logging.GameIDKey: id,
		logging.RoundKey:  g.RoundNumber,
	}).Info("round dealt")
	return engine.ViewForPlayer(g, player)
}

// ----------------------------------------------------------------------------
// Play
// ----------------------------------------------------------------------------

// Act applies a player action and returns that player's view of the result.
func (s *Service) Act(ctx context.Context, id string, player int, action engine.Action) (engine.PlayerView, error) {
	fields := logrus.Fields{
		logging.GameIDKey:      id,
		logging.PlayerIndexKey: player,
		logging.ActionKey:      ToWire(action).Type,
	}
	g, err := s.update(ctx, id, func(g engine.Game) (engine.Game, error) {
		return g.Apply(player, action)
	})
	if err != nil {
		if IsRejected(err) {
			s.log.WithFields(fields).WithError(err).Debug("action rejected")
		}
		return engine.PlayerView{}, err
	}

	entry := s.log.WithFields(fields).WithField(logging.StatusKey, g.Status)
	if g.Status != engine.StatusInRound && g.RoundWinner != nil {
		entry.WithField("roundWinner", *g.RoundWinner).Info("round won")
	} else {
		entry.Debug("action applied")
	}
	return engine.ViewForPlayer(g, player)
}

// View returns the game as seen by player.
func (s *Service) View(ctx context.Context, id string, player int) (engine.PlayerView, error) {
	g, err := s.store.Load(ctx, id)
	if err != nil {
		return engine.PlayerView{}, err
	}
	return engine.ViewForPlayer(g, player)
}

// update runs one load-apply-save cycle under the game's lock and
// announces the change once the new state is stored.
func (s *Service) update(ctx context.Context, id string, apply func(engine.Game) (engine.Game, error)) (engine.Game, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	g, err := s.store.Load(ctx, id)
	if err != nil {
		return engine.Game{}, err
	}
	next, err := apply(g)
	if err != nil {
		return engine.Game{}, err
	}
	if err := s.store.Save(ctx, id, next); err != nil {
		return engine.Game{}, errors.Wrapf(err, "saving game %s", id)
	}
	s.notify(ctx, id)
	return next, nil
}

// notify never fails the request; the state is already saved.
func (s *Service) notify(ctx context.Context, id string) {
	if err := s.events.Notify(context.WithoutCancel(ctx), id); err != nil {
		s.log.WithField(logging.GameIDKey, id).WithError(err).Warn("change notification failed")
	}
}
