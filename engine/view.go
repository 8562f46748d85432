package engine

import "fmt"

// PlayerView is the state of a game as seen by one player. Other players'
// hands appear only as counts.
type PlayerView struct {
	GameID      string     `json:"gameId"`
	Players     []string   `json:"players"`
	Status      Status     `json:"status"`
	PlayerIndex int        `json:"myPlayerIndex"`
	Scores      []int      `json:"scores"`
	RoundNumber int        `json:"roundNumber"`
	Round       *RoundView `json:"round"`
	Winner      *int       `json:"winner,omitempty"`
}

// RoundView is the per-player projection of a round.
type RoundView struct {
	CurrentPlayerIndex int       `json:"currentPlayerIndex"`
	MyHand             []Card    `json:"myHand"`
	PlayableCards      []int     `json:"playableCards"`
	HandSizes          []int     `json:"handSizes"`
	TopCard            Card      `json:"topCard"`
	CurrentColor       Color     `json:"currentColor"`
	Direction          Direction `json:"direction"`
	DrawPileSize       int       `json:"drawPileSize"`
	Dealer             int       `json:"dealer"`
	SaidCall           []int     `json:"playersWhoSaidUno"`
	Winner             *int      `json:"winner"`
}

// ViewForPlayer projects g for player. It returns ErrInvalidIndex when player
// is not seated in the game.
func ViewForPlayer(g Game, player int) (PlayerView, error) {
	if player < 0 || player >= len(g.Players) {
		return PlayerView{}, fmt.Errorf("%w: player %d", ErrInvalidIndex, player)
	}
	v := PlayerView{
		GameID:      g.ID,
		Players:     append([]string(nil), g.Players...),
		Status:      g.Status,
		PlayerIndex: player,
		Scores:      append([]int(nil), g.Scores...),
		RoundNumber: g.RoundNumber,
	}
	if g.Winner != nil {
		w := *g.Winner
		v.Winner = &w
	}
	if g.Round == nil {
		return v, nil
	}

	r := g.Round
	rv := &RoundView{
		CurrentPlayerIndex: r.PlayerInTurn,
		MyHand:             []Card{},
		HandSizes:          r.HandSizes(),
		TopCard:            r.TopCard(),
		CurrentColor:       r.CurrentColor,
		Direction:          r.Direction,
		DrawPileSize:       len(r.DrawPile),
		Dealer:             r.Dealer,
		SaidCall:           append([]int{}, r.SaidCall...),
	}
	if r.validPlayer(player) {
		rv.MyHand = append(rv.MyHand, r.Hands[player]...)
		if g.Status == StatusInRound {
			rv.PlayableCards = r.LegalPlays(player)
		}
	}
	if g.RoundWinner != nil {
		w := *g.RoundWinner
		rv.Winner = &w
	}
	v.Round = rv
	return v, nil
}
