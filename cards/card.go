package cards

import "fmt"

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Rank: Ten}
func CardFromString(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	// suit symbols are multi-byte, so split on the last rune
	runes := []rune(s)
	suitPart := string(runes[len(runes)-1])
	rankPart := string(runes[:len(runes)-1])

	var suit Suit
	switch suitPart {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", suitPart)
	}

	rank := Rank(rankPart)
	if !rank.Valid() {
		return Card{}, fmt.Errorf("invalid card rank: %s", rankPart)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// MustParse parses each shorthand with CardFromString and panics on the first failure.
func MustParse(shorthands ...string) Stack {
	stack := make(Stack, 0, len(shorthands))
	for _, s := range shorthands {
		c, err := CardFromString(s)
		if err != nil {
			panic(err)
		}
		stack = append(stack, c)
	}
	return stack
}

// Suit represents a card suit
type Suit string

const (
	Clubs    Suit = "♣"
	Diamonds Suit = "♦"
	Hearts   Suit = "♥"
	Spades   Suit = "♠"
)

// Suits lists the suits in canonical deck order.
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank represents a card face value
type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Ranks lists the ranks in canonical deck order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankPoints = map[Rank]int{
	Ace: 1, Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7,
	Eight: 8, Nine: 9, Ten: 10, Jack: 10, Queen: 10, King: 10,
}

// Valid reports whether r is one of the thirteen known ranks.
func (r Rank) Valid() bool {
	_, ok := rankPoints[r]
	return ok
}

// Points returns the blackjack value of the rank with aces counted as 1.
// It panics on an unknown rank: cards only come from deck construction or
// CardFromString, so an unknown rank is a bug.
func (r Rank) Points() int {
	p, ok := rankPoints[r]
	if !ok {
		panic(fmt.Sprintf("cards: unknown rank %q", string(r)))
	}
	return p
}

// Card represents a playing card
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}
