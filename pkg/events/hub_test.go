package events

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvent(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_SequenceNumbers(t *testing.T) {
	hub := NewHub(DefaultRingSize)

	for i := 0; i < 3; i++ {
		seq, err := hub.Publish("task:a", map[string]any{"type": "task.output", "chunk": fmt.Sprintf("c%d", i)})
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), seq)
	}

	// Channels sequence independently.
	seq, err := hub.Publish("task:b", map[string]any{"type": "task.output"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	assert.Equal(t, int64(3), hub.Seq("task:a"))
	assert.Equal(t, int64(0), hub.Seq("task:never-published"))
}

func TestHub_SeqInjectedIntoPayload(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	sub := hub.Subscribe("task:a", 0)
	defer hub.Unsubscribe(sub)

	_, err := hub.Publish("task:a", TaskOutputPayload{Type: EventTypeTaskOutput, TaskID: "a", Data: TaskOutputData{Chunk: "hello"}})
	require.NoError(t, err)

	select {
	case data := <-sub.Events():
		msg := decodeEvent(t, data)
		assert.Equal(t, float64(1), msg["seq"])
		payload, ok := msg["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "hello", payload["chunk"])
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHub_ReplayOnSubscribe(t *testing.T) {
	hub := NewHub(4)

	// Publish more than the ring holds; only the tail is retained.
	for i := 1; i <= 10; i++ {
		_, err := hub.Publish("task:a", map[string]any{"type": "task.output", "n": i})
		require.NoError(t, err)
	}

	sub := hub.Subscribe("task:a", 0)
	defer hub.Unsubscribe(sub)

	var got []float64
	for i := 0; i < 4; i++ {
		select {
		case data := <-sub.Events():
			got = append(got, decodeEvent(t, data)["seq"].(float64))
		case <-time.After(time.Second):
			t.Fatal("replay incomplete")
		}
	}
	assert.Equal(t, []float64{7, 8, 9, 10}, got)

	t.Run("replay resumes after last seen seq", func(t *testing.T) {
		resumed := hub.Subscribe("task:a", 9)
		defer hub.Unsubscribe(resumed)

		select {
		case data := <-resumed.Events():
			assert.Equal(t, float64(10), decodeEvent(t, data)["seq"])
		case <-time.After(time.Second):
			t.Fatal("no replayed event")
		}
	})
}

func TestHub_LiveDeliveryAfterReplay(t *testing.T) {
	hub := NewHub(DefaultRingSize)

	_, err := hub.Publish("task:a", map[string]any{"type": "task.output", "phase": "before"})
	require.NoError(t, err)

	sub := hub.Subscribe("task:a", 0)
	defer hub.Unsubscribe(sub)

	_, err = hub.Publish("task:a", map[string]any{"type": "task.output", "phase": "after"})
	require.NoError(t, err)

	var phases []string
	for i := 0; i < 2; i++ {
		select {
		case data := <-sub.Events():
			phases = append(phases, decodeEvent(t, data)["phase"].(string))
		case <-time.After(time.Second):
			t.Fatal("missing event")
		}
	}
	assert.Equal(t, []string{"before", "after"}, phases)
}

func TestHub_SlowSubscriberEvicted(t *testing.T) {
	hub := NewHub(4)
	sub := hub.Subscribe("task:a", 0)

	// Never drain; overflow the subscription buffer.
	for i := 0; i < 4+subscriberBufferSlack+1; i++ {
		_, err := hub.Publish("task:a", map[string]any{"type": "task.output", "n": i})
		require.NoError(t, err)
	}

	// Evicted subscriptions have their channel closed after the buffered
	// events are drained.
	drained := 0
	for range sub.Events() {
		drained++
	}
	assert.Equal(t, 4+subscriberBufferSlack, drained)

	// Publishing continues without the evicted subscriber.
	_, err := hub.Publish("task:a", map[string]any{"type": "task.output"})
	require.NoError(t, err)
}

func TestHub_Replay(t *testing.T) {
	hub := NewHub(DefaultRingSize)

	for i := 0; i < 5; i++ {
		_, err := hub.Publish("task:a", map[string]any{"type": "task.output", "n": i})
		require.NoError(t, err)
	}

	t.Run("since seq", func(t *testing.T) {
		events := hub.Replay("task:a", 3, 0)
		require.Len(t, events, 2)
		assert.Equal(t, float64(4), decodeEvent(t, events[0])["seq"])
		assert.Equal(t, float64(5), decodeEvent(t, events[1])["seq"])
	})

	t.Run("limit", func(t *testing.T) {
		events := hub.Replay("task:a", 0, 2)
		require.Len(t, events, 2)
		assert.Equal(t, float64(1), decodeEvent(t, events[0])["seq"])
	})

	t.Run("unknown channel", func(t *testing.T) {
		assert.Empty(t, hub.Replay("task:unknown", 0, 0))
	})
}

func TestHub_DropChannel(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	sub := hub.Subscribe("task:a", 0)

	_, err := hub.Publish("task:a", map[string]any{"type": "task.output"})
	require.NoError(t, err)

	hub.DropChannel("task:a")

	// Subscription channel closes once buffered events are consumed.
	drained := 0
	for range sub.Events() {
		drained++
	}
	assert.Equal(t, 1, drained)

	assert.Empty(t, hub.Replay("task:a", 0, 0))

	// Sequence numbers restart for a dropped channel. Callers only drop
	// channels for terminal tasks, so the reset is never observed.
	assert.Equal(t, int64(0), hub.Seq("task:a"))

	// Unsubscribe after drop is a no-op.
	hub.Unsubscribe(sub)
}

func TestHub_RejectsNonObjectPayload(t *testing.T) {
	hub := NewHub(DefaultRingSize)

	_, err := hub.Publish("task:a", "just a string")
	assert.Error(t, err)
}
