package game

import (
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroSource always picks index 0.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rules   Rules
		wantErr error
	}{
		{"single deck defaults", Rules{Decks: 1, Shuffles: 5, CutPosition: 5}, nil},
		{"cut at the end", Rules{Decks: 2, CutPosition: 104}, nil},
		{"cut at zero", Rules{Decks: 3}, nil},
		{"no decks", Rules{Decks: 0}, ErrInvalidRules},
		{"negative shuffles", Rules{Decks: 1, Shuffles: -1}, ErrInvalidRules},
		{"cut past the end", Rules{Decks: 1, CutPosition: 53}, cards.ErrCutOutOfRange},
		{"negative cut", Rules{Decks: 1, CutPosition: -1}, cards.ErrCutOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPrepareShoe(t *testing.T) {
	shoe, err := PrepareShoe(Rules{Decks: 2, Shuffles: 1, CutPosition: 10}, zeroSource{})
	require.NoError(t, err)

	assert.Equal(t, 104, shoe.Len())
	assert.Equal(t, cards.NewShoe(2).Cards().Counts(), shoe.Cards().Counts())
}

func TestPrepareShoe_NoShuffleNoCut(t *testing.T) {
	shoe, err := PrepareShoe(Rules{Decks: 1}, zeroSource{})
	require.NoError(t, err)

	assert.Equal(t, cards.NewDeck52(), shoe.Cards())
}

func TestPrepareShoe_InvalidRules(t *testing.T) {
	shoe, err := PrepareShoe(Rules{Decks: 0}, zeroSource{})

	assert.Nil(t, shoe)
	assert.ErrorIs(t, err, ErrInvalidRules)
}
