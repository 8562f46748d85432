package engine

// DeckSize is the number of cards in a full UNO deck.
const DeckSize = 108

// Deck is an ordered sequence of cards. Index 0 is the top.
type Deck []Card

// NewDeck builds the 108-card deck in a fixed order: for each color one 0,
// two of each 1-9, two Skip, two Reverse, two DrawTwo, then one Wild and one
// WildDrawFour.
func NewDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for _, c := range Colors {
		d = append(d, Numbered(c, 0))
		for n := uint8(1); n <= 9; n++ {
			d = append(d, Numbered(c, n), Numbered(c, n))
		}
		d = append(d,
			Skip(c), Skip(c),
			Reverse(c), Reverse(c),
			DrawTwo(c), DrawTwo(c),
			Wild(), WildDrawFour(),
		)
	}
	return d
}

// Clone returns a copy of the deck that shares no storage with d.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	copy(out, d)
	return out
}

// Counts returns the multiset of cards in d.
func (d Deck) Counts() map[Card]int {
	m := make(map[Card]int, 54)
	for _, c := range d {
		m[c]++
	}
	return m
}
