package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/server/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	data, err := Encode(events.CardIssued{
		RoundID:   "round-1",
		Seat:      "player",
		Card:      cards.Card{Suit: cards.Hearts, Rank: cards.Queen},
		Remaining: 12,
	})
	require.NoError(t, err)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(data, &envelope))

	assert.Equal(t, "card-issued", envelope.Name)
	assert.Equal(t, "round-1", envelope.RoundID)
	assert.JSONEq(t, `{"roundId":"round-1","seat":"player","card":{"suit":"♥","rank":"Q"},"remaining":12}`, string(envelope.Payload))
}

func TestDispatcher_HandleEvent(t *testing.T) {
	connMgr := connection.NewManager()
	go connMgr.Start()

	client := &connection.Client{ID: "spectator", Send: make(chan []byte, 4)}
	connMgr.Register <- client
	require.Eventually(t, func() bool { return connMgr.Count() == 1 }, time.Second, 10*time.Millisecond)

	d := NewDispatcher(connMgr)
	d.HandleEvent(events.RoundCompleted{RoundID: "round-2", DealerScore: 19, PlayerScore: 20})

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(<-client.Send, &envelope))
	assert.Equal(t, "round-completed", envelope.Name)
	assert.Equal(t, "round-2", envelope.RoundID)
}
