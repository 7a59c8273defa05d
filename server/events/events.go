package events

import (
	"encoding/json"
	"log"

	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/server/connection"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	RoundID string          `json:"roundId"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher handles routing events to clients
type Dispatcher struct {
	connMgr *connection.Manager
}

// NewDispatcher creates a new event dispatcher
func NewDispatcher(connMgr *connection.Manager) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
	}
}

// HandleEvent sends a round event to every connected spectator
func (d *Dispatcher) HandleEvent(event events.Event) {
	data, err := Encode(event)
	if err != nil {
		log.Println("Failed to encode event:", err)
		return
	}

	sent := d.connMgr.Broadcast(data)
	log.Printf("Dispatched %s for round %s to %d spectators", event.EventName(), events.GetRoundID(event), sent)
}

// Encode marshals an event inside its envelope
func Encode(event events.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	return json.Marshal(EventEnvelope{
		Name:    event.EventName(),
		RoundID: events.GetRoundID(event),
		Payload: payload,
	})
}
