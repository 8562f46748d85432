package agent

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jason-s-yu/uno/engine"
)

func inRound(rv engine.RoundView) engine.PlayerView {
	return engine.PlayerView{Status: engine.StatusInRound, Round: &rv}
}

func TestNextIdleOutsideRound(t *testing.T) {
	a := New(0, 1)
	if _, ok := a.Next(engine.PlayerView{Status: engine.StatusPre}); ok {
		t.Error("agent acted before the deal")
	}
	v := inRound(engine.RoundView{CurrentPlayerIndex: 1, HandSizes: []int{5, 5}})
	if _, ok := a.Next(v); ok {
		t.Error("agent acted out of turn")
	}
}

func TestNextChallengesUncalledOpponent(t *testing.T) {
	a := New(0, 1)
	v := inRound(engine.RoundView{CurrentPlayerIndex: 2, HandSizes: []int{4, 1, 1}, SaidCall: []int{1}})
	got, ok := a.Next(v)
	if !ok || got != (engine.ChallengeCall{Target: 2}) {
		t.Errorf("Next = %#v, %v; want challenge of 2", got, ok)
	}
}

func TestNextDrawsWithoutPlays(t *testing.T) {
	a := New(0, 1)
	v := inRound(engine.RoundView{
		MyHand:    []engine.Card{engine.Numbered(engine.Blue, 3)},
		HandSizes: []int{1, 3},
		SaidCall:  []int{0},
	})
	got, ok := a.Next(v)
	if !ok || got != (engine.DrawCard{}) {
		t.Errorf("Next = %#v, %v; want draw", got, ok)
	}
}

func TestNextCallsBeforeLastCard(t *testing.T) {
	a := New(0, 1)
	rv := engine.RoundView{
		MyHand:        []engine.Card{engine.Numbered(engine.Red, 3), engine.Numbered(engine.Blue, 3)},
		PlayableCards: []int{0},
		HandSizes:     []int{2, 5},
	}
	if got, _ := a.Next(inRound(rv)); got != (engine.SayCall{}) {
		t.Fatalf("Next = %#v, want SayCall", got)
	}
	rv.SaidCall = []int{0}
	if got, _ := a.Next(inRound(rv)); got != (engine.PlayCard{CardIndex: 0}) {
		t.Errorf("Next = %#v, want play of card 0", got)
	}
}

func TestNextPrefersPointsAndHoldsWilds(t *testing.T) {
	a := New(0, 1)
	hand := []engine.Card{
		engine.Wild(),
		engine.Numbered(engine.Red, 9),
		engine.Skip(engine.Red),
		engine.Numbered(engine.Green, 2),
		engine.Numbered(engine.Green, 4),
		engine.Numbered(engine.Green, 7),
	}
	v := inRound(engine.RoundView{MyHand: hand, PlayableCards: []int{0, 1, 2}, HandSizes: []int{6, 5}})
	if got, _ := a.Next(v); got != (engine.PlayCard{CardIndex: 2}) {
		t.Errorf("Next = %#v, want the skip", got)
	}

	v.Round.PlayableCards = []int{0}
	got, _ := a.Next(v)
	if got != (engine.PlayCard{CardIndex: 0, Color: engine.Green}) {
		t.Errorf("Next = %#v, want wild naming green", got)
	}
}

func TestPickColorTieBreaksWithinLeaders(t *testing.T) {
	hand := []engine.Card{engine.WildDrawFour(), engine.Numbered(engine.Blue, 1), engine.Numbered(engine.Yellow, 1)}
	for seed := uint64(0); seed < 20; seed++ {
		c := New(0, seed).pickColor(hand, 0)
		if c != engine.Blue && c != engine.Yellow {
			t.Fatalf("seed %d: picked %s", seed, c)
		}
	}
	if c := New(0, 3).pickColor([]engine.Card{engine.Wild()}, 0); !c.Valid() {
		t.Errorf("empty hand picked %s", c)
	}
}

// playMatch runs agents in every seat until the round ends or limit actions
// have been applied. Every action an agent proposes must be accepted.
func playMatch(t *testing.T, g engine.Game, agents []*Agent, limit int) (engine.Game, bool) {
	t.Helper()
	for step := 0; step < limit; step++ {
		if g.Status != engine.StatusInRound {
			return g, true
		}
		acted := false
		for _, a := range agents {
			v, err := engine.ViewForPlayer(g, a.Player)
			if err != nil {
				t.Fatal(err)
			}
			action, ok := a.Next(v)
			if !ok {
				continue
			}
			next, err := g.Apply(a.Player, action)
			if err != nil {
				t.Fatalf("step %d: %#v by %d rejected: %v", step, action, a.Player, err)
			}
			g, acted = next, true
			break
		}
		if !acted {
			t.Fatalf("step %d: nobody acted", step)
		}
	}
	return g, g.Status != engine.StatusInRound
}

func TestAgentsPlayRounds(t *testing.T) {
	finished := 0
	for n := 2; n <= 4; n++ {
		for seed := uint64(1); seed <= 10; seed++ {
			t.Run(fmt.Sprintf("n=%d/seed=%d", n, seed), func(t *testing.T) {
				g := engine.NewGame("g", "p0", engine.DefaultRules())
				agents := []*Agent{New(0, seed)}
				for i := 1; i < n; i++ {
					var err error
					if g, _, err = g.Join(fmt.Sprintf("p%d", i)); err != nil {
						t.Fatal(err)
					}
					agents = append(agents, New(i, seed))
				}
				g, err := g.StartRound(engine.NewRandomShuffler(seed))
				if err != nil {
					t.Fatal(err)
				}
				final, done := playMatch(t, g, agents, 3000)
				if !done {
					return
				}
				finished++
				if final.RoundWinner == nil || final.Round.HandLen(*final.RoundWinner) != 0 {
					t.Errorf("finished without an empty-handed winner: %+v", final.RoundWinner)
				}
			})
		}
	}
	if finished == 0 {
		t.Error("no round finished")
	}
}

func TestAgentMovesAreNeverRuleErrors(t *testing.T) {
	g := engine.NewGame("g", "a", engine.DefaultRules())
	g, _, _ = g.Join("b")
	g, err := g.StartRound(engine.IdentityShuffler)
	if err != nil {
		t.Fatal(err)
	}
	a := New(g.Round.PlayerInTurn, 7)
	v, _ := engine.ViewForPlayer(g, a.Player)
	action, ok := a.Next(v)
	if !ok {
		t.Fatal("player in turn has nothing to do")
	}
	if _, err := g.Apply(a.Player, action); engine.IsRuleError(err) || errors.Is(err, engine.ErrNotInRound) {
		t.Errorf("Apply(%#v) = %v", action, err)
	}
}
