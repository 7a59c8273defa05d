package game

import (
	"errors"
	"fmt"

	"github.com/lazharichir/blackjack/cards"
)

// ErrInvalidRules is returned when round rules cannot produce a playable shoe.
var ErrInvalidRules = errors.New("invalid rules")

// Rules describes how the shoe is prepared before a round.
type Rules struct {
	Decks       int
	Shuffles    int
	CutPosition int
}

// ShoeSize returns the number of cards the rules put in the shoe.
func (r Rules) ShoeSize() int {
	return r.Decks * cards.DeckSize
}

// Validate checks the rules before any card is built.
func (r Rules) Validate() error {
	if r.Decks < 1 {
		return fmt.Errorf("%w: need at least one deck, got %d", ErrInvalidRules, r.Decks)
	}
	if r.Shuffles < 0 {
		return fmt.Errorf("%w: shuffle passes cannot be negative, got %d", ErrInvalidRules, r.Shuffles)
	}
	if r.CutPosition < 0 || r.CutPosition > r.ShoeSize() {
		return fmt.Errorf("%w: %w: %d not in [0, %d]", ErrInvalidRules, cards.ErrCutOutOfRange, r.CutPosition, r.ShoeSize())
	}
	return nil
}

// PrepareShoe builds, shuffles and cuts a shoe according to the rules.
func PrepareShoe(rules Rules, rng cards.Source) (*cards.Shoe, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	shoe := cards.NewShoe(rules.Decks)
	shoe.Shuffle(rules.Shuffles, rng)
	if err := shoe.Cut(rules.CutPosition); err != nil {
		return nil, fmt.Errorf("failed to cut shoe: %w", err)
	}
	return shoe, nil
}
