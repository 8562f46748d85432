package engine

import (
	"fmt"
	"strconv"
)

// Color is the color of a card, or the active color of a round.
// NoColor marks wild cards in hand and an absent color choice.
type Color uint8

const (
	NoColor Color = iota // 0
	Red                  // 1
	Green                // 2
	Blue                 // 3
	Yellow               // 4
)

// Colors lists the four playable colors in deck-building order.
var Colors = [4]Color{Red, Green, Blue, Yellow}

var colorNames = [...]string{"", "RED", "GREEN", "BLUE", "YELLOW"}

// Valid reports whether c is one of the four playable colors.
func (c Color) Valid() bool { return c >= Red && c <= Yellow }

func (c Color) String() string {
	if int(c) < len(colorNames) {
		if c == NoColor {
			return "NONE"
		}
		return colorNames[c]
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText encodes the color as its upper-case name. NoColor encodes as "".
func (c Color) MarshalText() ([]byte, error) {
	if c == NoColor {
		return []byte{}, nil
	}
	if !c.Valid() {
		return nil, fmt.Errorf("invalid color %d", c)
	}
	return []byte(colorNames[c]), nil
}

// UnmarshalText is the inverse of MarshalText.
func (c *Color) UnmarshalText(b []byte) error {
	col, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = col
	return nil
}

// ParseColor parses "RED", "GREEN", "BLUE" or "YELLOW". The empty string
// parses as NoColor.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return NoColor, nil
	}
	for i := Red; i <= Yellow; i++ {
		if colorNames[i] == s {
			return i, nil
		}
	}
	return NoColor, fmt.Errorf("unknown color %q", s)
}

// CardType distinguishes the six card variants.
type CardType uint8

const (
	TypeNumbered     CardType = iota // 0
	TypeSkip                         // 1
	TypeReverse                      // 2
	TypeDrawTwo                      // 3
	TypeWild                         // 4
	TypeWildDrawFour                 // 5
)

var typeNames = [...]string{"NUMBERED", "SKIP", "REVERSE", "DRAW_TWO", "WILD", "WILD_DRAW_FOUR"}

func (t CardType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "CardType(" + strconv.Itoa(int(t)) + ")"
}

func (t CardType) MarshalText() ([]byte, error) {
	if int(t) >= len(typeNames) {
		return nil, fmt.Errorf("invalid card type %d", t)
	}
	return []byte(typeNames[t]), nil
}

func (t *CardType) UnmarshalText(b []byte) error {
	for i, name := range typeNames {
		if name == string(b) {
			*t = CardType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown card type %q", string(b))
}

// Card is an immutable card value. Color is NoColor for wild variants and
// Number is only meaningful for TypeNumbered. Cards are comparable and can be
// used as map keys.
type Card struct {
	Type   CardType `json:"type"`
	Color  Color    `json:"color,omitempty"`
	Number uint8    `json:"number,omitempty"`
}

// Numbered returns the numbered card n (0-9) of color c.
func Numbered(c Color, n uint8) Card { return Card{Type: TypeNumbered, Color: c, Number: n} }

// Skip returns the skip card of color c.
func Skip(c Color) Card { return Card{Type: TypeSkip, Color: c} }

// Reverse returns the reverse card of color c.
func Reverse(c Color) Card { return Card{Type: TypeReverse, Color: c} }

// DrawTwo returns the draw-two card of color c.
func DrawTwo(c Color) Card { return Card{Type: TypeDrawTwo, Color: c} }

// Wild returns the wild card.
func Wild() Card { return Card{Type: TypeWild} }

// WildDrawFour returns the wild draw-four card.
func WildDrawFour() Card { return Card{Type: TypeWildDrawFour} }

// IsWild reports whether the card is Wild or WildDrawFour.
func (c Card) IsWild() bool { return c.Type == TypeWild || c.Type == TypeWildDrawFour }

// IsAction reports whether the card is a colored special (skip, reverse, draw two).
func (c Card) IsAction() bool {
	return c.Type == TypeSkip || c.Type == TypeReverse || c.Type == TypeDrawTwo
}

func (c Card) String() string {
	switch c.Type {
	case TypeNumbered:
		return fmt.Sprintf("%s %d", c.Color, c.Number)
	case TypeSkip:
		return c.Color.String() + " Skip"
	case TypeReverse:
		return c.Color.String() + " Reverse"
	case TypeDrawTwo:
		return c.Color.String() + " +2"
	case TypeWild:
		return "Wild"
	case TypeWildDrawFour:
		return "Wild +4"
	}
	return c.Type.String()
}

// Direction is the turn-order increment, +1 or -1.
type Direction int8

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}
