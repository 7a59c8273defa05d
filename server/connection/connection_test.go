package connection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RegisterBroadcastUnregister(t *testing.T) {
	m := NewManager()
	go m.Start()

	a := &Client{ID: "a", Send: make(chan []byte, 1)}
	b := &Client{ID: "b", Send: make(chan []byte, 1)}
	m.Register <- a
	m.Register <- b

	require.Eventually(t, func() bool { return m.Count() == 2 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 2, m.Broadcast([]byte("first")))
	assert.Equal(t, []byte("first"), <-a.Send)

	// b has not drained its buffer, so it misses the second message
	assert.Equal(t, 1, m.Broadcast([]byte("second")))
	assert.Equal(t, []byte("second"), <-a.Send)
	assert.Equal(t, []byte("first"), <-b.Send)

	m.Unregister <- a
	require.Eventually(t, func() bool { return m.Count() == 1 }, time.Second, 10*time.Millisecond)

	_, open := <-a.Send
	assert.False(t, open, "send channel should be closed on unregister")
}
