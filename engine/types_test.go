package engine

import (
	"encoding/json"
	"testing"
)

// TestNewDeckComposition verifies the 108-card breakdown.
func TestNewDeckComposition(t *testing.T) {
	d := NewDeck()
	if len(d) != DeckSize {
		t.Fatalf("len(NewDeck()) = %d, want %d", len(d), DeckSize)
	}

	counts := d.Counts()
	for _, c := range Colors {
		if got := counts[Numbered(c, 0)]; got != 1 {
			t.Errorf("%s 0 count = %d, want 1", c, got)
		}
		for n := uint8(1); n <= 9; n++ {
			if got := counts[Numbered(c, n)]; got != 2 {
				t.Errorf("%s %d count = %d, want 2", c, n, got)
			}
		}
		for _, special := range []Card{Skip(c), Reverse(c), DrawTwo(c)} {
			if got := counts[special]; got != 2 {
				t.Errorf("%s count = %d, want 2", special, got)
			}
		}
	}
	if got := counts[Wild()]; got != 4 {
		t.Errorf("Wild count = %d, want 4", got)
	}
	if got := counts[WildDrawFour()]; got != 4 {
		t.Errorf("WildDrawFour count = %d, want 4", got)
	}
}

// TestNewDeckDeterministic verifies the build order is fixed.
func TestNewDeckDeterministic(t *testing.T) {
	a, b := NewDeck(), NewDeck()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("card %d differs: %s vs %s", i, a[i], b[i])
		}
	}
	if a[0] != Numbered(Red, 0) {
		t.Errorf("first card = %s, want RED 0", a[0])
	}
	if a[26] != WildDrawFour() {
		t.Errorf("card 26 = %s, want Wild +4", a[26])
	}
}

func TestCardPredicates(t *testing.T) {
	tests := []struct {
		card   Card
		wild   bool
		action bool
	}{
		{Numbered(Blue, 4), false, false},
		{Skip(Red), false, true},
		{Reverse(Green), false, true},
		{DrawTwo(Yellow), false, true},
		{Wild(), true, false},
		{WildDrawFour(), true, false},
	}
	for _, tt := range tests {
		if got := tt.card.IsWild(); got != tt.wild {
			t.Errorf("%s IsWild = %v, want %v", tt.card, got, tt.wild)
		}
		if got := tt.card.IsAction(); got != tt.action {
			t.Errorf("%s IsAction = %v, want %v", tt.card, got, tt.action)
		}
	}
}

// TestCardJSON checks the wire names and that wild cards carry no color.
func TestCardJSON(t *testing.T) {
	b, err := json.Marshal(Numbered(Red, 5))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"type":"NUMBERED","color":"RED","number":5}` {
		t.Errorf("numbered JSON = %s", b)
	}

	b, err = json.Marshal(WildDrawFour())
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"type":"WILD_DRAW_FOUR"}` {
		t.Errorf("wild draw four JSON = %s", b)
	}

	var c Card
	if err := json.Unmarshal([]byte(`{"type":"DRAW_TWO","color":"YELLOW"}`), &c); err != nil {
		t.Fatal(err)
	}
	if c != DrawTwo(Yellow) {
		t.Errorf("decoded %s, want YELLOW +2", c)
	}

	if err := json.Unmarshal([]byte(`{"type":"NUMBERED","color":"PURPLE"}`), &c); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range Colors {
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, err)
		}
	}
	if got, err := ParseColor(""); err != nil || got != NoColor {
		t.Errorf("ParseColor(\"\") = %v, %v; want NoColor", got, err)
	}
	if _, err := ParseColor("red"); err == nil {
		t.Error("ParseColor is case sensitive; expected error for \"red\"")
	}
}

func TestDirectionFlip(t *testing.T) {
	if Clockwise.Flip() != CounterClockwise || CounterClockwise.Flip() != Clockwise {
		t.Error("Flip does not toggle direction")
	}
}

func TestCallSet(t *testing.T) {
	var s CallSet
	s = s.With(3).With(1).With(3)
	if len(s) != 2 || s[0] != 1 || s[1] != 3 {
		t.Fatalf("set = %v, want [1 3]", s)
	}
	if !s.Has(1) || !s.Has(3) || s.Has(2) {
		t.Errorf("Has mismatch for %v", s)
	}

	orig := s
	s2 := s.Without(1)
	if len(s2) != 1 || s2[0] != 3 {
		t.Errorf("Without(1) = %v, want [3]", s2)
	}
	if len(orig) != 2 || orig[0] != 1 {
		t.Errorf("Without modified receiver: %v", orig)
	}
	if got := s2.Without(7); len(got) != 1 {
		t.Errorf("Without(absent) = %v", got)
	}
}
