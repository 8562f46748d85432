package engine

import "errors"

// Rule violations. Engine functions return these wrapped with detail; use
// errors.Is to classify.
var (
	ErrInvalidSetup       = errors.New("invalid setup")
	ErrInvalidIndex       = errors.New("invalid index")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrIllegalPlay        = errors.New("cannot play card")
	ErrMissingColor       = errors.New("must choose color for this card")
	ErrOverspecifiedColor = errors.New("cannot choose color for this card")
	ErrInvalidChallenge   = errors.New("invalid call challenge")

	ErrNotInRound       = errors.New("game not active")
	ErrGameStarted      = errors.New("game has already started")
	ErrGameOver         = errors.New("game is over")
	ErrNameTaken        = errors.New("player name already taken in this game")
	ErrGameFull         = errors.New("game is full")
	ErrNotEnoughPlayers = errors.New("not enough players to start the game")
)

var ruleErrors = []error{
	ErrInvalidSetup,
	ErrInvalidIndex,
	ErrNotYourTurn,
	ErrIllegalPlay,
	ErrMissingColor,
	ErrOverspecifiedColor,
	ErrInvalidChallenge,
	ErrNotInRound,
	ErrGameStarted,
	ErrGameOver,
	ErrNameTaken,
	ErrGameFull,
	ErrNotEnoughPlayers,
}

// IsRuleError reports whether err is a game-rule rejection rather than an
// infrastructure failure.
func IsRuleError(err error) bool {
	for _, target := range ruleErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
