package game

import (
	"github.com/pkg/errors"

	"github.com/jason-s-yu/uno/engine"
)

// ActionType is the wire name of a player action.
type ActionType string

const (
	ActionPlayCard     ActionType = "PLAY_CARD"
	ActionDrawCard     ActionType = "DRAW_CARD"
	ActionSayUno       ActionType = "SAY_UNO"
	ActionChallengeUno ActionType = "CHALLENGE_UNO"
)

// ErrBadAction marks an action payload that does not describe any engine
// action.
var ErrBadAction = errors.New("malformed action")

// WireAction is the JSON form of a player action as sent by clients:
//
//	{"type":"PLAY_CARD","cardIndex":2,"chosenColor":"RED"}
//	{"type":"DRAW_CARD"}
//	{"type":"SAY_UNO"}
//	{"type":"CHALLENGE_UNO","targetPlayer":1}
type WireAction struct {
	Type         ActionType   `json:"type"`
	CardIndex    *int         `json:"cardIndex,omitempty"`
	ChosenColor  engine.Color `json:"chosenColor,omitempty"`
	TargetPlayer *int         `json:"targetPlayer,omitempty"`
}

// ToEngine converts the wire form into an engine.Action. Fields that do not
// belong to the action type are rejected.
func (w WireAction) ToEngine() (engine.Action, error) {
	switch w.Type {
	case ActionPlayCard:
		if w.CardIndex == nil {
			return nil, errors.Wrap(ErrBadAction, "PLAY_CARD needs cardIndex")
		}
		if w.TargetPlayer != nil {
			return nil, errors.Wrap(ErrBadAction, "PLAY_CARD takes no targetPlayer")
		}
		return engine.PlayCard{CardIndex: *w.CardIndex, Color: w.ChosenColor}, nil
	case ActionDrawCard, ActionSayUno:
		if w.CardIndex != nil || w.TargetPlayer != nil || w.ChosenColor != engine.NoColor {
			return nil, errors.Wrapf(ErrBadAction, "%s takes no arguments", w.Type)
		}
		if w.Type == ActionDrawCard {
			return engine.DrawCard{}, nil
		}
		return engine.SayCall{}, nil
	case ActionChallengeUno:
		if w.TargetPlayer == nil {
			return nil, errors.Wrap(ErrBadAction, "CHALLENGE_UNO needs targetPlayer")
		}
		if w.CardIndex != nil || w.ChosenColor != engine.NoColor {
			return nil, errors.Wrap(ErrBadAction, "CHALLENGE_UNO takes only targetPlayer")
		}
		return engine.ChallengeCall{Target: *w.TargetPlayer}, nil
	case "":
		return nil, errors.Wrap(ErrBadAction, "missing type")
	default:
		return nil, errors.Wrapf(ErrBadAction, "unknown type %q", w.Type)
	}
}

// ToWire is the inverse of WireAction.ToEngine.
func ToWire(a engine.Action) WireAction {
	switch a := a.(type) {
	case engine.PlayCard:
		i := a.CardIndex
		return WireAction{Type: ActionPlayCard, CardIndex: &i, ChosenColor: a.Color}
	case engine.DrawCard:
		return WireAction{Type: ActionDrawCard}
	case engine.SayCall:
		return WireAction{Type: ActionSayUno}
	case engine.ChallengeCall:
		t := a.Target
		return WireAction{Type: ActionChallengeUno, TargetPlayer: &t}
	default:
		panic(errors.Errorf("game: unknown action %T", a))
	}
}
