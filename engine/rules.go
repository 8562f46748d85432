package engine

const (
	MinPlayers = 2
	MaxPlayers = 10

	// ChallengePenalty is the number of cards drawn by a player caught
	// holding one card without having said the call.
	ChallengePenalty = 2

	// maxDealAttempts bounds the re-deal loop when the first discard is wild.
	maxDealAttempts = 100
)

// Rules holds configurable match settings.
type Rules struct {
	CardsPerPlayer int `json:"cardsPerPlayer"`
	// TargetScore ends the match once a player's cumulative score reaches it.
	// 0 ends the match after a single round.
	TargetScore int `json:"targetScore"`
}

// DefaultRules returns the standard settings: seven cards, single round.
func DefaultRules() Rules {
	return Rules{
		CardsPerPlayer: 7,
		TargetScore:    0,
	}
}

// cardsPerPlayer returns the effective hand size, treating 0 as 7.
func (r Rules) cardsPerPlayer() int {
	if r.CardsPerPlayer == 0 {
		return 7
	}
	return r.CardsPerPlayer
}
