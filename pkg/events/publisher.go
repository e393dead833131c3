package events

import (
	"log/slog"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
)

// TaskPublisher publishes task events to the hub. Lifecycle events go to the
// task channel and are mirrored to the owning session channel and the global
// tasks channel; output events go to the task channel only.
//
// Publishing is best-effort: a marshal failure is logged and the task
// proceeds, since the persisted task row is the durable record.
type TaskPublisher struct {
	hub *Hub
}

// NewTaskPublisher creates a TaskPublisher.
func NewTaskPublisher(hub *Hub) *TaskPublisher {
	return &TaskPublisher{hub: hub}
}

// PublishCreated publishes task.created for a freshly enqueued task.
func (p *TaskPublisher) PublishCreated(t *ent.Task) {
	p.publishLifecycle(t, EventTypeTaskCreated, task.StatusQueued)
}

// PublishRunning publishes task.running after a worker claims the task.
func (p *TaskPublisher) PublishRunning(t *ent.Task) {
	p.publishLifecycle(t, EventTypeTaskRunning, task.StatusRunning)
}

// PublishTerminal publishes the terminal lifecycle event matching the task's
// final status. The task must already carry its terminal state and
// accounting fields.
func (p *TaskPublisher) PublishTerminal(t *ent.Task) {
	var eventType string
	switch t.Status {
	case task.StatusCompleted:
		eventType = EventTypeTaskCompleted
	case task.StatusFailed:
		eventType = EventTypeTaskFailed
	case task.StatusCancelled:
		eventType = EventTypeTaskCancelled
	default:
		slog.Warn("Refusing to publish terminal event for non-terminal task",
			"task_id", t.ID, "status", t.Status)
		return
	}
	p.publishLifecycle(t, eventType, t.Status)
}

// PublishOutput publishes one chunk of CLI output on the task channel.
// Returns the assigned sequence number.
func (p *TaskPublisher) PublishOutput(taskID, sessionID, chunk string) int64 {
	seq, err := p.hub.Publish(TaskChannel(taskID), TaskOutputPayload{
		Type:      EventTypeTaskOutput,
		TaskID:    taskID,
		SessionID: sessionID,
		Timestamp: nowRFC3339Nano(),
		Data:      TaskOutputData{Chunk: chunk},
	})
	if err != nil {
		slog.Error("Failed to publish task output event", "task_id", taskID, "error", err)
	}
	return seq
}

// DropTaskChannel releases the task's ring buffer. Called after the terminal
// event's grace window.
func (p *TaskPublisher) DropTaskChannel(taskID string) {
	p.hub.DropChannel(TaskChannel(taskID))
}

func (p *TaskPublisher) publishLifecycle(t *ent.Task, eventType string, status task.Status) {
	payload := TaskLifecyclePayload{
		Type:      eventType,
		TaskID:    t.ID,
		SessionID: t.SessionID,
		Timestamp: nowRFC3339Nano(),
		Data: TaskLifecycleData{
			FlowID:    t.FlowID,
			AgentName: t.AgentName,
			Status:    status,
		},
	}
	if t.ConversationID != nil {
		payload.Data.ConversationID = *t.ConversationID
	}
	if t.ErrorMessage != nil {
		payload.Data.ErrorMessage = *t.ErrorMessage
	}
	switch eventType {
	case EventTypeTaskCompleted, EventTypeTaskFailed, EventTypeTaskCancelled:
		payload.Data.CostUSD = t.CostUsd
		payload.Data.InputTokens = t.InputTokens
		payload.Data.OutputTokens = t.OutputTokens
		payload.Data.DurationSeconds = t.DurationSeconds
	}

	for _, channel := range []string{TaskChannel(t.ID), SessionChannel(t.SessionID), GlobalTasksChannel} {
		if _, err := p.hub.Publish(channel, payload); err != nil {
			slog.Error("Failed to publish task lifecycle event",
				"task_id", t.ID, "event_type", eventType, "channel", channel, "error", err)
		}
	}
}
