package engine

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Shuffler permutes a deck. Implementations must return a permutation of
// the input and may reorder the slice they are given.
type Shuffler interface {
	Shuffle(d Deck) Deck
}

// ShufflerFunc adapts a function to the Shuffler interface.
type ShufflerFunc func(d Deck) Deck

func (f ShufflerFunc) Shuffle(d Deck) Deck { return f(d) }

// IdentityShuffler leaves the deck in build order. Used in tests to get a
// known deal.
var IdentityShuffler Shuffler = ShufflerFunc(func(d Deck) Deck { return d })

// Shuffle returns a shuffled copy of d. The input deck is never modified.
func Shuffle(d Deck, s Shuffler) Deck {
	return s.Shuffle(d.Clone())
}

// RandomShuffler is a Fisher-Yates shuffler over a PCG source. It is safe for
// concurrent use.
type RandomShuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomShuffler returns a shuffler seeded with seed. A zero seed is
// replaced with the current time.
func NewRandomShuffler(seed uint64) *RandomShuffler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &RandomShuffler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle permutes d in place and returns it.
func (s *RandomShuffler) Shuffle(d Deck) Deck {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(d) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
	return d
}
