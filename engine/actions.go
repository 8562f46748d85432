package engine

import "fmt"

// Action is a player request. The set of variants is closed: PlayCard,
// DrawCard, SayCall and ChallengeCall.
type Action interface {
	isAction()
}

// PlayCard plays the card at CardIndex. Color is the chosen color for wild
// cards and must be NoColor otherwise.
type PlayCard struct {
	CardIndex int
	Color     Color
}

// DrawCard draws one card and passes the turn.
type DrawCard struct{}

// SayCall declares the one-card call.
type SayCall struct{}

// ChallengeCall challenges Target for holding one card without the call.
type ChallengeCall struct {
	Target int
}

func (PlayCard) isAction()      {}
func (DrawCard) isAction()      {}
func (SayCall) isAction()       {}
func (ChallengeCall) isAction() {}

// Outcome is the result of an accepted action. Won is set when the acting
// player emptied their hand; Winner is then their index, otherwise -1.
type Outcome struct {
	Round  Round
	Won    bool
	Winner int
}

// ApplyAction validates and applies action for player against r. The input
// round is never modified; on error the returned Outcome is zero and r is
// still the current state. An unknown Action variant is a programming error
// and panics.
func ApplyAction(r Round, player int, action Action) (Outcome, error) {
	switch a := action.(type) {
	case PlayCard:
		return playCard(r, player, a)
	case DrawCard:
		return drawCard(r, player)
	case SayCall:
		return sayCall(r, player)
	case ChallengeCall:
		return challengeCall(r, player, a.Target)
	default:
		panic(fmt.Sprintf("engine: unhandled action %T", action))
	}
}

func ok(r Round) (Outcome, error) { return Outcome{Round: r, Winner: -1}, nil }

// playCard moves a card from hand to discard and resolves its effect.
func playCard(r Round, player int, a PlayCard) (Outcome, error) {
	if !r.validPlayer(player) {
		return Outcome{}, fmt.Errorf("%w: player %d", ErrInvalidIndex, player)
	}
	hand := r.Hands[player]
	if a.CardIndex < 0 || a.CardIndex >= len(hand) {
		return Outcome{}, fmt.Errorf("%w: card %d", ErrInvalidIndex, a.CardIndex)
	}
	if player != r.PlayerInTurn {
		return Outcome{}, fmt.Errorf("%w: player %d is in turn", ErrNotYourTurn, r.PlayerInTurn)
	}
	card := hand[a.CardIndex]
	if !canPlay(hand, a.CardIndex, r.TopCard(), r.CurrentColor) {
		return Outcome{}, fmt.Errorf("%w: %s on %s (%s)", ErrIllegalPlay, card, r.TopCard(), r.CurrentColor)
	}

	color, err := colorAfterPlay(card, a.Color)
	if err != nil {
		return Outcome{}, err
	}

	next := r.Clone()
	h := next.Hands[player]
	next.Hands[player] = append(h[:a.CardIndex:a.CardIndex], h[a.CardIndex+1:]...)
	next.DiscardPile = append(next.DiscardPile, card)
	next.CurrentColor = color

	if len(next.Hands[player]) == 0 {
		next.SaidCall = next.SaidCall.Without(player)
		return Outcome{Round: next, Won: true, Winner: player}, nil
	}

	next.applyEffect(card)

	if len(next.Hands[player]) != 1 {
		next.SaidCall = next.SaidCall.Without(player)
	}
	return ok(next)
}

// colorAfterPlay returns the active color once card is played. Wild cards
// require a chosen color; colored cards reject one.
func colorAfterPlay(card Card, chosen Color) (Color, error) {
	if card.IsWild() {
		if !chosen.Valid() {
			return NoColor, fmt.Errorf("%w: %s", ErrMissingColor, card)
		}
		return chosen, nil
	}
	if chosen != NoColor {
		return NoColor, fmt.Errorf("%w: %s", ErrOverspecifiedColor, card)
	}
	return card.Color, nil
}

// applyEffect resolves the turn effect of a non-winning play. Turn movement
// is applied as sequential single steps so a direction change takes effect
// before any later step.
func (r *Round) applyEffect(card Card) {
	switch card.Type {
	case TypeNumbered, TypeWild:
		r.advanceTurn()
	case TypeReverse:
		if len(r.Players) == 2 {
			r.advanceTurn()
			r.advanceTurn()
			return
		}
		r.Direction = r.Direction.Flip()
		r.advanceTurn()
	case TypeSkip:
		r.advanceTurn()
		r.advanceTurn()
	case TypeDrawTwo:
		r.advanceTurn()
		r.drawCards(r.PlayerInTurn, 2)
		r.advanceTurn()
	case TypeWildDrawFour:
		r.advanceTurn()
		r.drawCards(r.PlayerInTurn, 4)
		r.advanceTurn()
	default:
		panic(fmt.Sprintf("engine: unhandled card type %v", card.Type))
	}
}

// drawCard draws one card for the player in turn and passes the turn.
func drawCard(r Round, player int) (Outcome, error) {
	if !r.validPlayer(player) {
		return Outcome{}, fmt.Errorf("%w: player %d", ErrInvalidIndex, player)
	}
	if player != r.PlayerInTurn {
		return Outcome{}, fmt.Errorf("%w: player %d is in turn", ErrNotYourTurn, r.PlayerInTurn)
	}
	next := r.Clone()
	next.drawCards(player, 1)
	next.advanceTurn()
	next.SaidCall = next.SaidCall.Without(player)
	return ok(next)
}

// sayCall records the call for player. It is allowed at any time.
func sayCall(r Round, player int) (Outcome, error) {
	if !r.validPlayer(player) {
		return Outcome{}, fmt.Errorf("%w: player %d", ErrInvalidIndex, player)
	}
	if r.SaidCall.Has(player) {
		return ok(r.Clone())
	}
	next := r.Clone()
	next.SaidCall = next.SaidCall.With(player)
	return ok(next)
}

// challengeCall penalizes target when they hold one card without the call.
func challengeCall(r Round, player, target int) (Outcome, error) {
	if !r.validPlayer(player) {
		return Outcome{}, fmt.Errorf("%w: player %d", ErrInvalidIndex, player)
	}
	if !r.validPlayer(target) {
		return Outcome{}, fmt.Errorf("%w: no player %d", ErrInvalidChallenge, target)
	}
	if len(r.Hands[target]) != 1 {
		return Outcome{}, fmt.Errorf("%w: player %d holds %d cards", ErrInvalidChallenge, target, len(r.Hands[target]))
	}
	if r.SaidCall.Has(target) {
		return Outcome{}, fmt.Errorf("%w: player %d already called", ErrInvalidChallenge, target)
	}
	next := r.Clone()
	next.drawCards(target, ChallengePenalty)
	return ok(next)
}
