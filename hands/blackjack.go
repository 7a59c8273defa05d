// Package hands scores blackjack hands.
package hands

import "github.com/lazharichir/blackjack/cards"

const (
	// Blackjack is the best possible total.
	Blackjack = 21

	// softBonus is what one ace gains when counted as 11 instead of 1.
	softBonus = 10
)

// Evaluation is the full breakdown of a hand.
type Evaluation struct {
	Total     int
	Hard      int
	Soft      bool
	Bust      bool
	Blackjack bool
}

// Value returns the best blackjack total for the hand. Every ace counts as 1,
// and one ace is promoted to 11 when that does not exceed 21. Promoting a
// second ace would always bust, so at most one is promoted.
func Value(hand cards.Stack) int {
	aces, rest := split(hand)
	if aces == 0 {
		return rest
	}

	low := rest + aces
	if low > Blackjack || Blackjack-low < softBonus {
		return low
	}
	return low + softBonus
}

// HardTotal returns the hand total with every ace counted as 1.
func HardTotal(hand cards.Stack) int {
	aces, rest := split(hand)
	return rest + aces
}

// IsSoft reports whether an ace is being counted as 11.
func IsSoft(hand cards.Stack) bool {
	return Value(hand) != HardTotal(hand)
}

// IsBust reports whether the hand is over 21.
func IsBust(hand cards.Stack) bool {
	return Value(hand) > Blackjack
}

// IsBlackjack reports a natural: exactly two cards worth 21.
func IsBlackjack(hand cards.Stack) bool {
	return len(hand) == 2 && Value(hand) == Blackjack
}

// Evaluate returns every property of the hand at once.
func Evaluate(hand cards.Stack) Evaluation {
	total := Value(hand)
	hard := HardTotal(hand)
	return Evaluation{
		Total:     total,
		Hard:      hard,
		Soft:      total != hard,
		Bust:      total > Blackjack,
		Blackjack: len(hand) == 2 && total == Blackjack,
	}
}

// split counts the aces and sums the points of every other card.
func split(hand cards.Stack) (aces int, rest int) {
	for _, c := range hand {
		if c.IsAce() {
			aces++
			continue
		}
		rest += c.Rank.Points()
	}
	return aces, rest
}
