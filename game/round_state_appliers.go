package game

import (
	"log"

	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
)

// apply dispatches events to their appropriate handlers
func (s *RoundState) apply(event events.Event) {
	switch e := event.(type) {
	case events.RoundStarted:
		s.applyRoundStarted(e)
	case events.CardIssued:
		s.applyCardIssued(e)
	case events.ParticipantStood:
		s.applyParticipantStood(e)
	case events.ShoeExhausted:
		s.applyShoeExhausted(e)
	case events.RoundCompleted:
		s.applyRoundCompleted(e)
	default:
		log.Printf("Warning: unknown event type %T", e)
	}
}

func (s *RoundState) applyRoundStarted(event events.RoundStarted) {
	s.Dealer.Name = event.DealerName
	s.Player.Name = event.PlayerName
	s.ShoeSize = event.ShoeSize
	s.Phase = PhaseDealing
}

func (s *RoundState) applyCardIssued(event events.CardIssued) {
	if p := s.Participant(domain.Seat(event.Seat)); p != nil {
		p.TakeCard(event.Card)
	}
}

func (s *RoundState) applyParticipantStood(event events.ParticipantStood) {
	if p := s.Participant(domain.Seat(event.Seat)); p != nil {
		p.Stand()
	}
}

func (s *RoundState) applyShoeExhausted(events.ShoeExhausted) {
	s.Phase = PhaseAborted
}

func (s *RoundState) applyRoundCompleted(events.RoundCompleted) {
	s.Phase = PhaseCompleted
}
