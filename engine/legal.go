package engine

// canPlay reports whether hand[idx] may be played on top with the active
// color.
//
// WildDrawFour is only legal when no other non-wild card in the hand would
// be playable by color, number or special type. Holding another wild does
// not block it.
func canPlay(hand []Card, idx int, top Card, color Color) bool {
	card := hand[idx]
	switch card.Type {
	case TypeWild:
		return true
	case TypeWildDrawFour:
		for i, c := range hand {
			if i == idx || c.IsWild() {
				continue
			}
			if matches(c, top, color) {
				return false
			}
		}
		return true
	case TypeNumbered, TypeSkip, TypeReverse, TypeDrawTwo:
		return matches(card, top, color)
	}
	return false
}

// matches applies the colored-card rule: same color as the active color,
// same number on a numbered top card, or same special type as the top card.
func matches(c, top Card, color Color) bool {
	if c.Color == color {
		return true
	}
	switch c.Type {
	case TypeNumbered:
		return top.Type == TypeNumbered && top.Number == c.Number
	case TypeSkip, TypeReverse, TypeDrawTwo:
		return top.Type == c.Type
	}
	return false
}

// LegalPlays returns the indices of the cards the player may play now,
// ignoring whose turn it is. Returns nil for an unknown player.
func (r Round) LegalPlays(player int) []int {
	if !r.validPlayer(player) {
		return nil
	}
	hand := r.Hands[player]
	top := r.TopCard()
	var out []int
	for i := range hand {
		if canPlay(hand, i, top, r.CurrentColor) {
			out = append(out, i)
		}
	}
	return out
}

// CanPlay reports whether the player's card at cardIndex is legal against
// the current discard and color.
func (r Round) CanPlay(player, cardIndex int) bool {
	if !r.validPlayer(player) || cardIndex < 0 || cardIndex >= len(r.Hands[player]) {
		return false
	}
	return canPlay(r.Hands[player], cardIndex, r.TopCard(), r.CurrentColor)
}
