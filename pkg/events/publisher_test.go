package events

import (
	"testing"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectOne(t *testing.T, sub *Subscription) map[string]any {
	t.Helper()
	select {
	case data := <-sub.Events():
		return decodeEvent(t, data)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
		return nil
	}
}

// eventData pulls the kind-specific sub-object out of an envelope.
func eventData(t *testing.T, msg map[string]any) map[string]any {
	t.Helper()
	data, ok := msg["data"].(map[string]any)
	require.True(t, ok, "envelope has no data object: %v", msg)
	return data
}

func TestTaskPublisher_LifecycleFanOut(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	publisher := NewTaskPublisher(hub)

	taskSub := hub.Subscribe(TaskChannel("task-1"), 0)
	sessionSub := hub.Subscribe(SessionChannel("sess-1"), 0)
	globalSub := hub.Subscribe(GlobalTasksChannel, 0)
	defer hub.Unsubscribe(taskSub)
	defer hub.Unsubscribe(sessionSub)
	defer hub.Unsubscribe(globalSub)

	publisher.PublishCreated(&ent.Task{
		ID:        "task-1",
		SessionID: "sess-1",
		FlowID:    "flow-1",
		AgentName: "planning",
		Status:    task.StatusQueued,
	})

	for _, sub := range []*Subscription{taskSub, sessionSub, globalSub} {
		msg := collectOne(t, sub)
		assert.Equal(t, EventTypeTaskCreated, msg["type"])
		assert.Equal(t, "task-1", msg["task_id"])
		assert.Equal(t, "queued", eventData(t, msg)["status"])
	}
}

func TestTaskPublisher_TerminalCarriesAccounting(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	publisher := NewTaskPublisher(hub)

	sub := hub.Subscribe(TaskChannel("task-2"), 0)
	defer hub.Unsubscribe(sub)

	publisher.PublishTerminal(&ent.Task{
		ID:              "task-2",
		SessionID:       "sess-1",
		Status:          task.StatusCompleted,
		CostUsd:         0.42,
		InputTokens:     1200,
		OutputTokens:    340,
		DurationSeconds: 7.5,
	})

	msg := collectOne(t, sub)
	assert.Equal(t, EventTypeTaskCompleted, msg["type"])
	data := eventData(t, msg)
	assert.Equal(t, 0.42, data["cost_usd"])
	assert.Equal(t, float64(1200), data["input_tokens"])
	assert.Equal(t, 7.5, data["duration_seconds"])
}

func TestTaskPublisher_FailedCarriesErrorMessage(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	publisher := NewTaskPublisher(hub)

	sub := hub.Subscribe(TaskChannel("task-3"), 0)
	defer hub.Unsubscribe(sub)

	errMsg := "worker lost"
	publisher.PublishTerminal(&ent.Task{
		ID:           "task-3",
		SessionID:    "sess-1",
		Status:       task.StatusFailed,
		ErrorMessage: &errMsg,
	})

	msg := collectOne(t, sub)
	assert.Equal(t, EventTypeTaskFailed, msg["type"])
	assert.Equal(t, "worker lost", eventData(t, msg)["error_message"])
}

func TestTaskPublisher_NonTerminalStatusIgnored(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	publisher := NewTaskPublisher(hub)

	publisher.PublishTerminal(&ent.Task{
		ID:        "task-4",
		SessionID: "sess-1",
		Status:    task.StatusRunning,
	})

	assert.Equal(t, int64(0), hub.Seq(TaskChannel("task-4")))
}

func TestTaskPublisher_OutputSequencing(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	publisher := NewTaskPublisher(hub)

	seq1 := publisher.PublishOutput("task-5", "sess-1", "hello ")
	seq2 := publisher.PublishOutput("task-5", "sess-1", "world")
	require.Equal(t, int64(1), seq1)
	require.Equal(t, int64(2), seq2)

	events := hub.Replay(TaskChannel("task-5"), 0, 0)
	require.Len(t, events, 2)
	assert.Equal(t, "hello ", eventData(t, decodeEvent(t, events[0]))["chunk"])
	assert.Equal(t, "world", eventData(t, decodeEvent(t, events[1]))["chunk"])
}

// Clients decode on a fixed envelope: header fields at the top level, every
// kind-specific field under data. Guard both event families against
// accidental flattening.
func TestTaskPublisher_EnvelopeShape(t *testing.T) {
	hub := NewHub(DefaultRingSize)
	publisher := NewTaskPublisher(hub)

	sub := hub.Subscribe(TaskChannel("task-6"), 0)
	defer hub.Unsubscribe(sub)

	publisher.PublishOutput("task-6", "sess-1", "hello world")

	msg := collectOne(t, sub)
	assert.Equal(t, EventTypeTaskOutput, msg["type"])
	assert.Equal(t, "task-6", msg["task_id"])
	assert.Equal(t, "sess-1", msg["session_id"])
	assert.Equal(t, float64(1), msg["seq"])
	assert.NotEmpty(t, msg["timestamp"])
	assert.Equal(t, "hello world", eventData(t, msg)["chunk"])
	assert.NotContains(t, msg, "chunk")

	publisher.PublishTerminal(&ent.Task{
		ID:              "task-6",
		SessionID:       "sess-1",
		Status:          task.StatusCompleted,
		CostUsd:         0.1,
		InputTokens:     10,
		OutputTokens:    5,
		DurationSeconds: 1.5,
	})

	msg = collectOne(t, sub)
	assert.Equal(t, EventTypeTaskCompleted, msg["type"])
	data := eventData(t, msg)
	assert.Equal(t, 0.1, data["cost_usd"])
	assert.Equal(t, float64(10), data["input_tokens"])
	assert.Equal(t, float64(5), data["output_tokens"])
	assert.Equal(t, 1.5, data["duration_seconds"])
	for _, flattened := range []string{"cost_usd", "status", "chunk"} {
		assert.NotContains(t, msg, flattened)
	}
}
