package events

import (
	"github.com/lazharichir/blackjack/cards"
)

// RoundStarted represents the event when a shoe has been prepared and a round begins.
type RoundStarted struct {
	RoundID    string `json:"roundId"`
	DealerName string `json:"dealerName"`
	PlayerName string `json:"playerName"`
	ShoeSize   int    `json:"shoeSize"`
}

func (e RoundStarted) EventName() string { return "round-started" }

// CardIssued represents the event when a card leaves the shoe for a participant.
type CardIssued struct {
	RoundID   string     `json:"roundId"`
	Seat      string     `json:"seat"`
	Card      cards.Card `json:"card"`
	Remaining int        `json:"remaining"`
}

func (e CardIssued) EventName() string { return "card-issued" }

// ParticipantStood represents the event when a participant reaches the stand threshold.
type ParticipantStood struct {
	RoundID string `json:"roundId"`
	Seat    string `json:"seat"`
	Score   int    `json:"score"`
}

func (e ParticipantStood) EventName() string { return "participant-stood" }

// ShoeExhausted represents the event when a participant needed a card and none was left.
type ShoeExhausted struct {
	RoundID string `json:"roundId"`
	Seat    string `json:"seat"`
}

func (e ShoeExhausted) EventName() string { return "shoe-exhausted" }

// RoundCompleted represents the event when both participants are standing.
type RoundCompleted struct {
	RoundID     string `json:"roundId"`
	DealerScore int    `json:"dealerScore"`
	PlayerScore int    `json:"playerScore"`
}

func (e RoundCompleted) EventName() string { return "round-completed" }
