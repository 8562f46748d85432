package engine

import (
	"reflect"
	"testing"
)

// makeRound builds a round with the given hands and top discard. The draw
// pile holds every other card of the deck in build order, so the round
// satisfies card conservation. Player 0 is in turn.
func makeRound(t *testing.T, hands [][]Card, top Card) Round {
	t.Helper()
	remaining := NewDeck().Counts()
	take := func(c Card) {
		if remaining[c] == 0 {
			t.Fatalf("card %s not available in deck", c)
		}
		remaining[c]--
	}
	for _, h := range hands {
		for _, c := range h {
			take(c)
		}
	}
	take(top)

	var draw []Card
	for _, c := range NewDeck() {
		if remaining[c] > 0 {
			draw = append(draw, c)
			remaining[c]--
		}
	}

	players := make([]string, len(hands))
	hs := make([][]Card, len(hands))
	for i, h := range hands {
		players[i] = string(rune('A' + i))
		hs[i] = append([]Card{}, h...)
	}
	color := top.Color
	if !color.Valid() {
		color = Red
	}
	return Round{
		Players:      players,
		Hands:        hs,
		DiscardPile:  []Card{top},
		DrawPile:     draw,
		PlayerInTurn: 0,
		Direction:    Clockwise,
		CurrentColor: color,
		SaidCall:     CallSet{},
	}
}

// mustApply applies an action and fails the test on error.
func mustApply(t *testing.T, r Round, player int, a Action) Outcome {
	t.Helper()
	out, err := ApplyAction(r, player, a)
	if err != nil {
		t.Fatalf("ApplyAction(%d, %#v): %v", player, a, err)
	}
	return out
}

// checkInvariants verifies conservation, a non-empty discard pile and a
// valid player in turn.
func checkInvariants(t *testing.T, r Round) {
	t.Helper()
	if got, want := r.AllCards().Counts(), NewDeck().Counts(); !reflect.DeepEqual(got, want) {
		t.Fatalf("card multiset changed: %d cards in play", len(r.AllCards()))
	}
	if len(r.DiscardPile) == 0 {
		t.Fatal("discard pile is empty")
	}
	if r.PlayerInTurn < 0 || r.PlayerInTurn >= r.NumPlayers() {
		t.Fatalf("PlayerInTurn = %d, want [0, %d)", r.PlayerInTurn, r.NumPlayers())
	}
}
