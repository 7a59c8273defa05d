package cards

import (
	"errors"
	"fmt"
)

// ErrCutOutOfRange is returned when a cut position falls outside the shoe.
var ErrCutOutOfRange = errors.New("cut position out of range")

// Source picks a uniformly random int in [0, n). *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Shoe represents one or more decks of cards dealt from a single sequence.
// The top of the shoe is the end of the slice.
type Shoe struct {
	cards Stack
}

// NewShoe creates a new shoe with numDecks concatenated canonical decks.
func NewShoe(numDecks int) *Shoe {
	size := 0
	if numDecks > 0 {
		size = numDecks * DeckSize
	}

	cards := make(Stack, 0, size)
	for i := 0; i < numDecks; i++ {
		cards = append(cards, NewDeck52()...)
	}
	return &Shoe{cards: cards}
}

// NewShoeWithCards creates a shoe holding exactly the given cards in order.
// The last card is the first one issued.
func NewShoeWithCards(cards ...Card) *Shoe {
	stack := make(Stack, len(cards))
	copy(stack, cards)
	return &Shoe{cards: stack}
}

// Len returns the number of cards left in the shoe.
func (s *Shoe) Len() int {
	return len(s.cards)
}

// Cards returns a copy of the remaining cards, bottom first.
func (s *Shoe) Cards() Stack {
	out := make(Stack, len(s.cards))
	copy(out, s.cards)
	return out
}

// Shuffle runs passes independent Fisher–Yates passes over the shoe.
// Each pass swaps position m with a random position in [0, m) for m from
// len-1 down to 1.
func (s *Shoe) Shuffle(passes int, rng Source) {
	for i := 0; i < passes; i++ {
		for m := len(s.cards) - 1; m > 0; m-- {
			r := rng.Intn(m)
			s.cards[r], s.cards[m] = s.cards[m], s.cards[r]
		}
	}
}

// Cut moves cards[position:] in front of cards[:position].
func (s *Shoe) Cut(position int) error {
	if position < 0 || position > len(s.cards) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrCutOutOfRange, position, len(s.cards))
	}

	cut := make(Stack, 0, len(s.cards))
	cut = append(cut, s.cards[position:]...)
	cut = append(cut, s.cards[:position]...)
	s.cards = cut
	return nil
}

// IssueCard removes and returns the top card. ok is false once the shoe is empty.
func (s *Shoe) IssueCard() (card Card, ok bool) {
	if len(s.cards) == 0 {
		return Card{}, false
	}

	last := len(s.cards) - 1
	card = s.cards[last]
	s.cards = s.cards[:last]
	return card, true
}
