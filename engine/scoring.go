package engine

import "fmt"

// CardPoints returns the official point value of a card:
//   - Numbered → its number
//   - Skip, Reverse, DrawTwo → 20
//   - Wild, WildDrawFour → 50
func CardPoints(c Card) int {
	switch c.Type {
	case TypeNumbered:
		return int(c.Number)
	case TypeSkip, TypeReverse, TypeDrawTwo:
		return 20
	case TypeWild, TypeWildDrawFour:
		return 50
	}
	return 0
}

// HandPoints returns the sum of CardPoints over hand.
func HandPoints(hand []Card) int {
	total := 0
	for _, c := range hand {
		total += CardPoints(c)
	}
	return total
}

// RoundScores returns the points earned in a finished round. The winner
// scores the sum of every other player's remaining hand; everyone else
// scores 0.
func RoundScores(r Round, winner int) ([]int, error) {
	if !r.validPlayer(winner) {
		return nil, fmt.Errorf("%w: winner %d", ErrInvalidIndex, winner)
	}
	scores := make([]int, len(r.Hands))
	for p, hand := range r.Hands {
		if p != winner {
			scores[winner] += HandPoints(hand)
		}
	}
	return scores, nil
}
