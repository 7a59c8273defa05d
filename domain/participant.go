package domain

import (
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/hands"
)

// Seat identifies which side of the table a participant plays.
type Seat string

const (
	SeatDealer Seat = "dealer"
	SeatPlayer Seat = "player"
)

// Status is the per-participant turn state within a round.
type Status string

const (
	StatusDrawing  Status = "drawing"
	StatusStanding Status = "standing"
)

// StandThreshold is the hand value at which a participant stops drawing.
const StandThreshold = 17

// Participant represents the dealer or the player in a round
type Participant struct {
	Seat   Seat
	Name   string
	Cards  cards.Stack
	Status Status
}

// NewParticipant creates a participant with an empty hand who is still drawing
func NewParticipant(seat Seat, name string) *Participant {
	return &Participant{
		Seat:   seat,
		Name:   name,
		Cards:  make(cards.Stack, 0, 5),
		Status: StatusDrawing,
	}
}

// TakeCard adds a card to the participant's hand
func (p *Participant) TakeCard(card cards.Card) {
	p.Cards.AddCard(card)
}

// HandValue returns the current blackjack total of the hand
func (p *Participant) HandValue() int {
	return hands.Value(p.Cards)
}

// ShouldStand reports whether the hand has reached the stand threshold
func (p *Participant) ShouldStand() bool {
	return p.HandValue() >= StandThreshold
}

// Stand marks the participant as done drawing. It cannot be undone.
func (p *Participant) Stand() {
	p.Status = StatusStanding
}

// IsStanding reports whether the participant has stopped drawing
func (p *Participant) IsStanding() bool {
	return p.Status == StatusStanding
}
