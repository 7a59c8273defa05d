package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/lazharichir/blackjack/events"
)

var (
	// ErrShoeExhausted is returned when a participant must draw from an empty shoe.
	ErrShoeExhausted = errors.New("shoe exhausted")

	ErrRoundAlreadyStarted = errors.New("round already started")
	ErrRoundNotStarted     = errors.New("round not started")
	ErrRoundOver           = errors.New("round is over")
)

// RoundEngine plays one round between the dealer and the player and records
// every change as an event. A round is played by a single goroutine.
type RoundEngine struct {
	eventStore events.EventStore
	shoe       *cards.Shoe
	state      *RoundState
	handlers   []events.EventHandler
}

// NewRoundEngine creates an engine that deals from shoe. Nothing is recorded until Start.
func NewRoundEngine(eventStore events.EventStore, shoe *cards.Shoe, dealerName, playerName string) *RoundEngine {
	state := newRoundState(uuid.NewString())
	state.Dealer.Name = dealerName
	state.Player.Name = playerName

	return &RoundEngine{
		eventStore: eventStore,
		shoe:       shoe,
		state:      state,
	}
}

// AddEventHandler registers a handler called after each event is stored and applied.
func (re *RoundEngine) AddEventHandler(handler events.EventHandler) {
	re.handlers = append(re.handlers, handler)
}

// ID returns the round ID.
func (re *RoundEngine) ID() string {
	return re.state.ID
}

// State returns the live round state.
func (re *RoundEngine) State() *RoundState {
	return re.state
}

// Start records the beginning of the round.
func (re *RoundEngine) Start() error {
	if re.state.Phase != PhaseNotStarted {
		return ErrRoundAlreadyStarted
	}

	return re.record(events.RoundStarted{
		RoundID:    re.state.ID,
		DealerName: re.state.Dealer.Name,
		PlayerName: re.state.Player.Name,
		ShoeSize:   re.shoe.Len(),
	})
}

// Step runs one cycle: the dealer then the player each either stand or draw
// one card. The round completes in the cycle where both are standing.
func (re *RoundEngine) Step() error {
	switch re.state.Phase {
	case PhaseNotStarted:
		return ErrRoundNotStarted
	case PhaseCompleted, PhaseAborted:
		return ErrRoundOver
	}

	for _, p := range re.state.Participants() {
		if p.IsStanding() {
			continue
		}
		if err := re.takeTurn(p); err != nil {
			return err
		}
	}

	if !re.state.AllStanding() {
		return nil
	}

	return re.record(events.RoundCompleted{
		RoundID:     re.state.ID,
		DealerScore: re.state.Dealer.HandValue(),
		PlayerScore: re.state.Player.HandValue(),
	})
}

// Play starts the round if needed and steps until it is completed.
func (re *RoundEngine) Play() error {
	if re.state.Phase == PhaseNotStarted {
		if err := re.Start(); err != nil {
			return err
		}
	}

	for re.state.Phase == PhaseDealing {
		if err := re.Step(); err != nil {
			return err
		}
	}
	return nil
}

// takeTurn stands the participant if the hand reached the threshold before
// drawing, otherwise deals one card.
func (re *RoundEngine) takeTurn(p *domain.Participant) error {
	if p.ShouldStand() {
		return re.record(events.ParticipantStood{
			RoundID: re.state.ID,
			Seat:    string(p.Seat),
			Score:   p.HandValue(),
		})
	}

	card, ok := re.shoe.IssueCard()
	if !ok {
		if err := re.record(events.ShoeExhausted{RoundID: re.state.ID, Seat: string(p.Seat)}); err != nil {
			return err
		}
		return fmt.Errorf("%w: no card left for %s", ErrShoeExhausted, p.Name)
	}

	return re.record(events.CardIssued{
		RoundID:   re.state.ID,
		Seat:      string(p.Seat),
		Card:      card,
		Remaining: re.shoe.Len(),
	})
}

// record appends the event, applies it to the state and publishes it
func (re *RoundEngine) record(event events.Event) error {
	if err := re.eventStore.Append(event); err != nil {
		return fmt.Errorf("failed to append %s event: %w", event.EventName(), err)
	}
	re.state.apply(event)

	for _, handler := range re.handlers {
		handler(event)
	}
	return nil
}

// PlayRound validates the rules, prepares a shoe and plays a full round.
// On failure mid-round the partial state is returned with the error.
func PlayRound(store events.EventStore, rules Rules, rng cards.Source, dealerName, playerName string, handlers ...events.EventHandler) (*RoundState, error) {
	shoe, err := PrepareShoe(rules, rng)
	if err != nil {
		return nil, err
	}

	engine := NewRoundEngine(store, shoe, dealerName, playerName)
	for _, h := range handlers {
		engine.AddEventHandler(h)
	}

	if err := engine.Play(); err != nil {
		return engine.State(), err
	}
	return engine.State(), nil
}
