package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribePublishCleanup(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))

	ch1, cleanup1 := hub.Subscribe("emp-1")
	ch2, cleanup2 := hub.Subscribe("emp-1")
	defer cleanup2()
	assert.Equal(t, 2, hub.SubscriberCount("emp-1"))

	hub.Publish("emp-1", Event{UserID: "emp-1", Event: "session_tick", Data: 42})

	for _, ch := range []chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, "session_tick", ev.Event)
			assert.Equal(t, 42, ev.Data)
		default:
			t.Fatal("subscriber did not receive the published event")
		}
	}

	// Closing one stream leaves the other subscribed.
	cleanup1()
	assert.Equal(t, 1, hub.SubscriberCount("emp-1"))
	_, open := <-ch1
	assert.False(t, open)
}

func TestHubPublishToOtherEmployeeIsInvisible(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-2", Event{UserID: "emp-2", Event: "session_tick"})

	select {
	case ev := <-ch:
		t.Fatalf("received another employee's event: %+v", ev)
	default:
	}
}

func TestHubStalledSubscriberDoesNotBlockPublish(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	_, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	// The channel buffers 10 events; past that, publishes are dropped for
	// this stream instead of blocking the timer goroutine.
	for i := 0; i < 25; i++ {
		hub.Publish("emp-1", Event{UserID: "emp-1", Event: "session_tick", Data: i})
	}

	require.Equal(t, 1, hub.SubscriberCount("emp-1"))
}
