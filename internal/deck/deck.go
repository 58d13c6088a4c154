package deck

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/arcanaland/highlow/internal/card"
)

// ErrEmptyDeck is returned by Draw when no cards remain.
var ErrEmptyDeck = errors.New("no more cards in deck")

// Source supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Deck is an ordered pile of card ids. Cards are drawn from the end.
type Deck struct {
	cards []card.ID
}

// New builds a deck shuffled with a time-seeded source.
func New() *Deck {
	seed := uint64(time.Now().UnixNano())
	return Build(rand.New(rand.NewPCG(seed, seed>>1|1)))
}

// NewSeeded builds a deck shuffled from a fixed seed, so a game can be replayed.
func NewSeeded(seed uint64) *Deck {
	return Build(rand.New(rand.NewPCG(seed, 0)))
}

// Build lays out the 52 cards in canonical order and shuffles them with
// Fisher-Yates: walking from the last index down to 1, each element is
// swapped with a uniformly chosen element at or below it.
func Build(src Source) *Deck {
	cards := card.All()
	for i := len(cards) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
	return &Deck{cards: cards}
}

// FromIDs returns a deck holding exactly ids, in order. The last id is
// drawn first.
func FromIDs(ids ...card.ID) *Deck {
	cards := make([]card.ID, len(ids))
	copy(cards, ids)
	return &Deck{cards: cards}
}

// Draw removes and returns the last card.
func (d *Deck) Draw() (card.ID, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmptyDeck
	}
	last := len(d.cards) - 1
	id := d.cards[last]
	d.cards = d.cards[:last]
	return id, nil
}

// Len returns the number of undrawn cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the undrawn cards in deck order.
func (d *Deck) Cards() []card.ID {
	out := make([]card.ID, len(d.cards))
	copy(out, d.cards)
	return out
}
