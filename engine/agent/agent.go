// Package agent implements a rule-based UNO player that decides from its
// own PlayerView, the same information a human client receives.
package agent

import (
	"math/rand/v2"

	"github.com/jason-s-yu/uno/engine"
)

// Agent plays one seat. Its policy:
//   - challenge any opponent holding one card without having called
//   - call before playing down to the last card
//   - play the legal card worth the most points, wild cards last
//   - otherwise draw
type Agent struct {
	Player int
	rng    *rand.Rand
}

// New returns an agent for player. seed drives tie breaks between equally
// good colors.
func New(player int, seed uint64) *Agent {
	return &Agent{Player: player, rng: rand.New(rand.NewPCG(seed, uint64(player)))}
}

// Next returns the action the agent wants to take now. It reports false when
// the agent has nothing to do: no round is running, or it is someone
// else's turn and no challenge is available.
func (a *Agent) Next(v engine.PlayerView) (engine.Action, bool) {
	if v.Status != engine.StatusInRound || v.Round == nil {
		return nil, false
	}
	r := v.Round
	if target, ok := a.challengeTarget(r); ok {
		return engine.ChallengeCall{Target: target}, true
	}
	if r.CurrentPlayerIndex != a.Player {
		return nil, false
	}
	if len(r.PlayableCards) == 0 {
		return engine.DrawCard{}, true
	}
	if len(r.MyHand) == 2 && !said(r, a.Player) {
		return engine.SayCall{}, true
	}

	idx := bestPlay(r.MyHand, r.PlayableCards)
	play := engine.PlayCard{CardIndex: idx}
	if r.MyHand[idx].IsWild() {
		play.Color = a.pickColor(r.MyHand, idx)
	}
	return play, true
}

func (a *Agent) challengeTarget(r *engine.RoundView) (int, bool) {
	for p, n := range r.HandSizes {
		if p != a.Player && n == 1 && !said(r, p) {
			return p, true
		}
	}
	return -1, false
}

func said(r *engine.RoundView, player int) bool {
	for _, p := range r.SaidCall {
		if p == player {
			return true
		}
	}
	return false
}

// bestPlay picks from the playable indices: colored cards before wilds,
// then the most points, then the lowest index.
func bestPlay(hand []engine.Card, playable []int) int {
	best := playable[0]
	for _, i := range playable[1:] {
		c, b := hand[i], hand[best]
		switch {
		case c.IsWild() != b.IsWild():
			if !c.IsWild() {
				best = i
			}
		case engine.CardPoints(c) > engine.CardPoints(b):
			best = i
		}
	}
	return best
}

// pickColor names the color the agent holds most of, ignoring the card
// being played. Ties are broken at random.
func (a *Agent) pickColor(hand []engine.Card, playing int) engine.Color {
	var counts [len(engine.Colors)]int
	for i, c := range hand {
		if i == playing || !c.Color.Valid() {
			continue
		}
		counts[c.Color-engine.Red]++
	}
	var best []engine.Color
	top := -1
	for i, n := range counts {
		switch {
		case n > top:
			top = n
			best = append(best[:0], engine.Colors[i])
		case n == top:
			best = append(best, engine.Colors[i])
		}
	}
	return best[a.rng.IntN(len(best))]
}
