package engine

import (
	"errors"
	"testing"
)

// winnableGame returns an IN-ROUND two-player game where player 0 wins by
// playing card 0.
func winnableGame(t *testing.T, rules Rules) Game {
	t.Helper()
	g := NewGame("g1", "A", rules)
	g, _, err := g.Join("B")
	if err != nil {
		t.Fatal(err)
	}
	g, err = g.StartRound(IdentityShuffler)
	if err != nil {
		t.Fatal(err)
	}
	r := makeRound(t, [][]Card{
		{Numbered(Red, 1)},
		{Numbered(Blue, 4), Skip(Green)},
	}, Numbered(Red, 5))
	g.Round = &r
	return g
}

func TestGameLobby(t *testing.T) {
	g := NewGame("g1", "A", DefaultRules())
	if g.Status != StatusPre || len(g.Scores) != 1 || g.Scores[0] != 0 {
		t.Fatalf("new game = %+v", g)
	}

	g2, idx, err := g.Join("B")
	if err != nil {
		t.Fatal(err)
	}
	if idx != 1 || len(g2.Players) != 2 || len(g2.Scores) != 2 {
		t.Errorf("after join: idx=%d players=%v scores=%v", idx, g2.Players, g2.Scores)
	}
	if len(g.Players) != 1 {
		t.Error("Join modified the receiver")
	}

	if _, _, err := g2.Join("B"); !errors.Is(err, ErrNameTaken) {
		t.Errorf("duplicate join: err = %v, want ErrNameTaken", err)
	}

	full := g2
	for i := 2; i < MaxPlayers; i++ {
		full, _, err = full.Join(string(rune('A' + i)))
		if err != nil {
			t.Fatal(err)
		}
	}
	if _, _, err := full.Join("Z"); !errors.Is(err, ErrGameFull) {
		t.Errorf("join full game: err = %v, want ErrGameFull", err)
	}
}

func TestGameStartRound(t *testing.T) {
	g := NewGame("g1", "A", DefaultRules())
	if _, err := g.StartRound(IdentityShuffler); !errors.Is(err, ErrNotEnoughPlayers) {
		t.Errorf("err = %v, want ErrNotEnoughPlayers", err)
	}

	g, _, _ = g.Join("B")
	g, err := g.StartRound(IdentityShuffler)
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != StatusInRound || g.Round == nil || g.RoundNumber != 1 {
		t.Fatalf("status=%s round=%v number=%d", g.Status, g.Round, g.RoundNumber)
	}
	if g.Round.HandLen(0) != 7 {
		t.Errorf("HandLen = %d, want 7", g.Round.HandLen(0))
	}
	if _, err := g.StartRound(IdentityShuffler); !errors.Is(err, ErrGameStarted) {
		t.Errorf("restart: err = %v, want ErrGameStarted", err)
	}
	if _, _, err := g.Join("C"); !errors.Is(err, ErrGameStarted) {
		t.Errorf("join started game: err = %v, want ErrGameStarted", err)
	}
}

func TestGameApplyRequiresRound(t *testing.T) {
	g := NewGame("g1", "A", DefaultRules())
	if _, err := g.Apply(0, DrawCard{}); !errors.Is(err, ErrNotInRound) {
		t.Errorf("err = %v, want ErrNotInRound", err)
	}
}

func TestGameApplyContinues(t *testing.T) {
	g := winnableGame(t, DefaultRules())
	next, err := g.Apply(0, DrawCard{})
	if err != nil {
		t.Fatal(err)
	}
	if next.Status != StatusInRound || next.Round.PlayerInTurn != 1 {
		t.Errorf("status=%s turn=%d", next.Status, next.Round.PlayerInTurn)
	}
	if g.Round.PlayerInTurn != 0 {
		t.Error("Apply modified the receiver's round")
	}
	if _, err := next.Apply(0, DrawCard{}); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("err = %v, want ErrNotYourTurn", err)
	}
}

// TestGameSingleRound: with no target score the first round decides the match.
func TestGameSingleRound(t *testing.T) {
	g := winnableGame(t, DefaultRules())
	g, err := g.Apply(0, PlayCard{CardIndex: 0})
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != StatusPost {
		t.Fatalf("Status = %s, want POST", g.Status)
	}
	if g.Winner == nil || *g.Winner != 0 || g.RoundWinner == nil || *g.RoundWinner != 0 {
		t.Errorf("winner=%v roundWinner=%v", g.Winner, g.RoundWinner)
	}
	if g.Scores[0] != 24 || g.Scores[1] != 0 {
		t.Errorf("Scores = %v, want [24 0]", g.Scores)
	}
	if _, err := g.StartRound(IdentityShuffler); !errors.Is(err, ErrGameOver) {
		t.Errorf("err = %v, want ErrGameOver", err)
	}
	if _, err := g.Apply(1, DrawCard{}); !errors.Is(err, ErrNotInRound) {
		t.Errorf("err = %v, want ErrNotInRound", err)
	}
}

// TestGameTargetScore: below the target the game waits for the next deal
// and the dealer rotates.
func TestGameTargetScore(t *testing.T) {
	g := winnableGame(t, Rules{CardsPerPlayer: 7, TargetScore: 30})
	g, err := g.Apply(0, PlayCard{CardIndex: 0})
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != StatusPre || g.Winner != nil {
		t.Fatalf("status=%s winner=%v, want PRE with no winner", g.Status, g.Winner)
	}
	if g.Scores[0] != 24 {
		t.Errorf("Scores = %v", g.Scores)
	}

	g, err = g.StartRound(IdentityShuffler)
	if err != nil {
		t.Fatal(err)
	}
	if g.Dealer != 1 || g.Round.Dealer != 1 || g.RoundNumber != 2 || g.RoundWinner != nil {
		t.Errorf("dealer=%d roundDealer=%d number=%d roundWinner=%v", g.Dealer, g.Round.Dealer, g.RoundNumber, g.RoundWinner)
	}

	r := makeRound(t, [][]Card{
		{Numbered(Red, 1)},
		{Numbered(Blue, 4), Skip(Green)},
	}, Numbered(Red, 5))
	g.Round = &r
	g, err = g.Apply(0, PlayCard{CardIndex: 0})
	if err != nil {
		t.Fatal(err)
	}
	if g.Status != StatusPost || g.Winner == nil || *g.Winner != 0 {
		t.Fatalf("status=%s winner=%v, want POST won by 0", g.Status, g.Winner)
	}
	if g.Scores[0] != 48 {
		t.Errorf("Scores = %v, want [48 0]", g.Scores)
	}
}

func TestGameCloneIsDeep(t *testing.T) {
	g := winnableGame(t, DefaultRules())
	c := g.Clone()
	c.Players[0] = "Z"
	c.Scores[0] = 99
	c.Round.Hands[0][0] = Wild()
	if g.Players[0] != "A" || g.Scores[0] != 0 || g.Round.Hands[0][0] != Numbered(Red, 1) {
		t.Error("Clone shares storage with the original")
	}
}
