package cards

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// NewDeck52 creates a standard deck of 52 cards in canonical order:
// rank-major, suit-minor (A♣ A♦ A♥ A♠ 2♣ ... K♠).
func NewDeck52() Stack {
	deck := make(Stack, 0, DeckSize)
	for _, rank := range Ranks {
		for _, suit := range Suits {
			deck.AddCard(Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}
