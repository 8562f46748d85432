package engine

import "fmt"

// Status is the lifecycle phase of a Game.
type Status string

const (
	StatusPre     Status = "PRE"
	StatusInRound Status = "IN-ROUND"
	StatusPost    Status = "POST"
)

// Game is a match: a sequence of rounds with cumulative scores. Like Round
// it is a value snapshot; methods return updated copies.
type Game struct {
	ID      string   `json:"gameId"`
	Players []string `json:"players"`
	Scores  []int    `json:"scores"`
	Status  Status   `json:"status"`
	Rules   Rules    `json:"rules"`

	// Round is the active round while IN-ROUND, and the last finished round
	// afterwards. Nil before the first deal.
	Round       *Round `json:"round,omitempty"`
	RoundNumber int    `json:"roundNumber"`
	Dealer      int    `json:"dealer"`
	RoundWinner *int   `json:"roundWinner,omitempty"`
	Winner      *int   `json:"winner,omitempty"`
}

// NewGame creates a pre-game lobby with creator in seat 0.
func NewGame(id, creator string, rules Rules) Game {
	return Game{
		ID:      id,
		Players: []string{creator},
		Scores:  []int{0},
		Status:  StatusPre,
		Rules:   rules,
	}
}

// Clone returns a deep copy of g.
func (g Game) Clone() Game {
	out := g
	out.Players = append([]string(nil), g.Players...)
	out.Scores = append([]int(nil), g.Scores...)
	if g.Round != nil {
		r := g.Round.Clone()
		out.Round = &r
	}
	if g.RoundWinner != nil {
		w := *g.RoundWinner
		out.RoundWinner = &w
	}
	if g.Winner != nil {
		w := *g.Winner
		out.Winner = &w
	}
	return out
}

// Join seats a new player. Only allowed before the first round is dealt.
func (g Game) Join(name string) (Game, int, error) {
	if g.Status != StatusPre || g.RoundNumber > 0 {
		return Game{}, -1, ErrGameStarted
	}
	for _, p := range g.Players {
		if p == name {
			return Game{}, -1, fmt.Errorf("%w: %q", ErrNameTaken, name)
		}
	}
	if len(g.Players) >= MaxPlayers {
		return Game{}, -1, fmt.Errorf("%w: %d players", ErrGameFull, len(g.Players))
	}
	next := g.Clone()
	next.Players = append(next.Players, name)
	next.Scores = append(next.Scores, 0)
	return next, len(next.Players) - 1, nil
}

// StartRound deals the next round. The dealer seat rotates by one after each
// round.
func (g Game) StartRound(shuffler Shuffler) (Game, error) {
	switch g.Status {
	case StatusInRound:
		return Game{}, ErrGameStarted
	case StatusPost:
		return Game{}, ErrGameOver
	}
	if len(g.Players) < MinPlayers {
		return Game{}, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughPlayers, len(g.Players), MinPlayers)
	}

	dealer := g.Dealer
	if g.RoundNumber > 0 {
		dealer = (g.Dealer + 1) % len(g.Players)
	}
	r, err := NewRound(g.Players, dealer, shuffler, g.Rules.cardsPerPlayer())
	if err != nil {
		return Game{}, err
	}

	next := g.Clone()
	next.Round = &r
	next.Dealer = dealer
	next.RoundNumber++
	next.RoundWinner = nil
	next.Status = StatusInRound
	return next, nil
}

// Apply applies a player action to the active round. When the action wins
// the round the scores are updated and the game moves to POST if the match
// is decided, or back to PRE to await the next deal.
func (g Game) Apply(player int, action Action) (Game, error) {
	if g.Status != StatusInRound || g.Round == nil {
		return Game{}, ErrNotInRound
	}
	out, err := ApplyAction(*g.Round, player, action)
	if err != nil {
		return Game{}, err
	}

	next := g.Clone()
	next.Round = &out.Round
	if !out.Won {
		return next, nil
	}

	points, err := RoundScores(out.Round, out.Winner)
	if err != nil {
		return Game{}, err
	}
	for i, p := range points {
		next.Scores[i] += p
	}
	w := out.Winner
	next.RoundWinner = &w

	if leader, done := next.matchWinner(); done {
		next.Winner = &leader
		next.Status = StatusPost
	} else {
		next.Status = StatusPre
	}
	return next, nil
}

// matchWinner reports the match winner once the target score is reached.
// With no target the round winner takes the match.
func (g Game) matchWinner() (int, bool) {
	if g.Rules.TargetScore <= 0 {
		return *g.RoundWinner, true
	}
	best := -1
	for i, s := range g.Scores {
		if s >= g.Rules.TargetScore && (best < 0 || s > g.Scores[best]) {
			best = i
		}
	}
	return best, best >= 0
}
