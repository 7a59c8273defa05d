package cards

import "strings"

// Stack represents multiple cards
type Stack []Card

// NewStack creates a new stack with the given cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// AddCard appends a card to the stack
func (s *Stack) AddCard(card Card) {
	*s = append(*s, card)
}

// String returns the cards separated by spaces
func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Counts returns how many times each card appears in the stack.
func (s Stack) Counts() map[Card]int {
	counts := make(map[Card]int, len(s))
	for _, c := range s {
		counts[c]++
	}
	return counts
}
