// Package engine implements the UNO round rules.
//
// The engine is a pure state-transition layer: every operation takes a
// snapshot and returns a new one, performs no I/O and holds no locks. Hosts
// serialize writers per game and may read snapshots concurrently.
package engine

import (
	"fmt"
	"sort"
)

// CallSet is the ordered set of player indices that have declared the
// one-card call and not yet been cleared. It is kept sorted without
// duplicates; methods return new sets and never modify the receiver.
type CallSet []int

// Has reports whether player is in the set.
func (s CallSet) Has(player int) bool {
	i := sort.SearchInts(s, player)
	return i < len(s) && s[i] == player
}

// With returns the set with player added.
func (s CallSet) With(player int) CallSet {
	i := sort.SearchInts(s, player)
	if i < len(s) && s[i] == player {
		return s
	}
	out := make(CallSet, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, player)
	return append(out, s[i:]...)
}

// Without returns the set with player removed.
func (s CallSet) Without(player int) CallSet {
	i := sort.SearchInts(s, player)
	if i >= len(s) || s[i] != player {
		return s
	}
	out := make(CallSet, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

// Round is the state of one hand of play. Values are treated as immutable
// snapshots: engine operations clone before changing anything.
type Round struct {
	Players      []string  `json:"players"`
	Hands        [][]Card  `json:"hands"`
	DiscardPile  []Card    `json:"discardPile"` // top = last
	DrawPile     []Card    `json:"drawPile"`    // top = first
	PlayerInTurn int       `json:"playerInTurn"`
	Direction    Direction `json:"direction"`
	CurrentColor Color     `json:"currentColor"`
	Dealer       int       `json:"dealer"`
	SaidCall     CallSet   `json:"saidCall"`
}

// NewRound deals a new round. cardsPerPlayer cards go to each player in seat
// order as contiguous blocks of the shuffled deck, the next card starts the
// discard pile and the rest forms the draw pile. A wild starting card causes
// a full re-deal with a fresh shuffle.
func NewRound(players []string, dealer int, shuffler Shuffler, cardsPerPlayer int) (Round, error) {
	n := len(players)
	if n < MinPlayers || n > MaxPlayers {
		return Round{}, fmt.Errorf("%w: need %d-%d players, got %d", ErrInvalidSetup, MinPlayers, MaxPlayers, n)
	}
	if dealer < 0 || dealer >= n {
		return Round{}, fmt.Errorf("%w: dealer index %d out of range", ErrInvalidSetup, dealer)
	}
	if cardsPerPlayer < 1 || n*cardsPerPlayer+1 > DeckSize {
		return Round{}, fmt.Errorf("%w: cannot deal %d cards to %d players", ErrInvalidSetup, cardsPerPlayer, n)
	}

	for attempt := 0; attempt < maxDealAttempts; attempt++ {
		deck := Shuffle(NewDeck(), shuffler)
		dealt := n * cardsPerPlayer
		first := deck[dealt]
		if first.IsWild() {
			continue
		}

		hands := make([][]Card, n)
		for p := 0; p < n; p++ {
			hand := make([]Card, cardsPerPlayer)
			copy(hand, deck[p*cardsPerPlayer:(p+1)*cardsPerPlayer])
			hands[p] = hand
		}
		drawPile := make([]Card, len(deck)-dealt-1)
		copy(drawPile, deck[dealt+1:])

		names := make([]string, n)
		copy(names, players)

		return Round{
			Players:      names,
			Hands:        hands,
			DiscardPile:  []Card{first},
			DrawPile:     drawPile,
			PlayerInTurn: 0,
			Direction:    Clockwise,
			CurrentColor: first.Color,
			Dealer:       dealer,
			SaidCall:     CallSet{},
		}, nil
	}
	return Round{}, fmt.Errorf("%w: no non-wild starting card after %d deals", ErrInvalidSetup, maxDealAttempts)
}

// Clone returns a deep copy of r.
func (r Round) Clone() Round {
	out := r
	out.Players = append([]string(nil), r.Players...)
	out.Hands = make([][]Card, len(r.Hands))
	for i, h := range r.Hands {
		out.Hands[i] = append([]Card{}, h...)
	}
	out.DiscardPile = append([]Card{}, r.DiscardPile...)
	out.DrawPile = append([]Card{}, r.DrawPile...)
	out.SaidCall = append(CallSet{}, r.SaidCall...)
	return out
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// NumPlayers returns the number of seats in the round.
func (r Round) NumPlayers() int { return len(r.Players) }

// TopCard returns the top of the discard pile.
func (r Round) TopCard() Card { return r.DiscardPile[len(r.DiscardPile)-1] }

// HandLen returns the number of cards in the given player's hand.
func (r Round) HandLen(player int) int { return len(r.Hands[player]) }

// HandSizes returns the hand size of every player in seat order.
func (r Round) HandSizes() []int {
	sizes := make([]int, len(r.Hands))
	for i, h := range r.Hands {
		sizes[i] = len(h)
	}
	return sizes
}

// validPlayer reports whether p is a seat in the round.
func (r Round) validPlayer(p int) bool { return p >= 0 && p < len(r.Hands) }

// AllCards returns every card in hands, discard pile and draw pile. The
// result is a permutation of the full deck for any reachable round.
func (r Round) AllCards() Deck {
	out := make(Deck, 0, DeckSize)
	for _, h := range r.Hands {
		out = append(out, h...)
	}
	out = append(out, r.DiscardPile...)
	return append(out, r.DrawPile...)
}

// ---------------------------------------------------------------------------
// Mutators, applied only to clones
// ---------------------------------------------------------------------------

// advanceTurn moves the turn one seat in the current direction.
func (r *Round) advanceTurn() {
	n := len(r.Players)
	r.PlayerInTurn = ((r.PlayerInTurn+int(r.Direction))%n + n) % n
}

// drawCards moves up to count cards from the top of the draw pile into the
// player's hand. An empty draw pile is not refilled from the discard pile.
func (r *Round) drawCards(player, count int) {
	if count > len(r.DrawPile) {
		count = len(r.DrawPile)
	}
	if count == 0 {
		return
	}
	r.Hands[player] = append(r.Hands[player], r.DrawPile[:count]...)
	r.DrawPile = r.DrawPile[count:]
}
