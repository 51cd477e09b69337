package poker

import (
	"math/rand/v2"

	"github.com/lox/holdem-core/internal/randutil"
)

// Deck is a standard 52-card deck with an explicit, reproducible shuffle.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a freshly shuffled deck using the supplied RNG. Passing
// the same *rand.Rand state (or a deck built with the same seed via
// NewDeckSeeded) always produces the same card order.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	i := 0
	for suit := Suit(0); suit < 4; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}
	d.Shuffle()
	return d
}

// NewDeckSeeded creates a shuffled deck from an integer seed, deriving the
// underlying generator via randutil so the same seed always reproduces the
// same shuffle regardless of process or platform.
func NewDeckSeeded(seed int64) *Deck {
	return NewDeck(randutil.New(seed))
}

// Shuffle re-shuffles the deck in place using Fisher-Yates and rewinds the
// deal cursor to the top.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the top of the deck, or nil if not enough remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealOne deals a single card, or the zero Card if the deck is exhausted.
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return Card{}
	}
	c := d.cards[d.next]
	d.next++
	return c
}

// Reset reshuffles and rewinds the deck.
func (d *Deck) Reset() {
	d.Shuffle()
}

// CardsRemaining returns how many cards are left to deal.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
