package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
)

// ErrRoundNotFound is returned when no events exist for a round ID.
var ErrRoundNotFound = errors.New("round not found")

// RoundPhase represents where a round is in its lifecycle
type RoundPhase string

const (
	PhaseNotStarted RoundPhase = "not_started"
	PhaseDealing    RoundPhase = "dealing"
	PhaseCompleted  RoundPhase = "completed"
	PhaseAborted    RoundPhase = "aborted"
)

// RoundState is the state of a single round, built entirely by applying events.
type RoundState struct {
	ID       string
	Phase    RoundPhase
	ShoeSize int
	Dealer   *domain.Participant
	Player   *domain.Participant
}

func newRoundState(roundID string) *RoundState {
	return &RoundState{
		ID:     roundID,
		Phase:  PhaseNotStarted,
		Dealer: domain.NewParticipant(domain.SeatDealer, ""),
		Player: domain.NewParticipant(domain.SeatPlayer, ""),
	}
}

// Participants returns the participants in turn order, dealer first.
func (s *RoundState) Participants() []*domain.Participant {
	return []*domain.Participant{s.Dealer, s.Player}
}

// Participant returns the participant sitting at seat, or nil.
func (s *RoundState) Participant(seat domain.Seat) *domain.Participant {
	switch seat {
	case domain.SeatDealer:
		return s.Dealer
	case domain.SeatPlayer:
		return s.Player
	}
	return nil
}

// AllStanding reports whether both participants have stopped drawing.
func (s *RoundState) AllStanding() bool {
	return s.Dealer.IsStanding() && s.Player.IsStanding()
}

// Summary renders each participant's name, cards and score, one per line.
func (s *RoundState) Summary() string {
	var b strings.Builder
	for _, p := range s.Participants() {
		fmt.Fprintf(&b, "%s (%s): %s = %d\n", p.Name, p.Seat, p.Cards, p.HandValue())
	}
	return b.String()
}

// RehydrateRound reconstructs a round from its event history
func RehydrateRound(store events.EventStore, roundID string) (*RoundState, error) {
	history, err := store.LoadEvents(roundID)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrRoundNotFound, roundID)
	}

	state := newRoundState(roundID)
	for _, event := range history {
		state.apply(event)
	}
	return state, nil
}
