package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_AddCard(t *testing.T) {
	stack := NewStack()
	card := Card{Suit: Clubs, Rank: Ace}

	stack.AddCard(card)

	assert.Len(t, stack, 1, "Expected stack to have 1 card")
	assert.Equal(t, card, stack[0], "Expected card to be card")
}

func TestStack_String(t *testing.T) {
	card1 := Card{Suit: Clubs, Rank: Ace}
	card2 := Card{Suit: Diamonds, Rank: Two}
	stack := NewStack(card1, card2)

	assert.Equal(t, "A♣ 2♦", stack.String())
	assert.Equal(t, "", NewStack().String())
}

func TestStack_Counts(t *testing.T) {
	stack := MustParse("A♣", "A♣", "2♦")

	counts := stack.Counts()

	assert.Len(t, counts, 2)
	assert.Equal(t, 2, counts[Card{Suit: Clubs, Rank: Ace}])
	assert.Equal(t, 1, counts[Card{Suit: Diamonds, Rank: Two}])
}
