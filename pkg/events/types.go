// Package events provides real-time delivery of task output and lifecycle
// events via an in-process hub and WebSocket fan-out.
//
// Every event for a task carries a per-task sequence number assigned at
// publish time. The hub retains the most recent events per channel in a ring
// buffer, so a client that attaches after a task started (or reconnects after
// a drop) replays the tail of the stream and resumes live delivery without a
// gap. If the client missed more than the ring holds, it receives a
// catchup.overflow message and should reload task state over REST, where the
// full output_stream is persisted.
package events

// Task lifecycle event types.
const (
	EventTypeTaskCreated   = "task.created"
	EventTypeTaskRunning   = "task.running"
	EventTypeTaskCompleted = "task.completed"
	EventTypeTaskFailed    = "task.failed"
	EventTypeTaskCancelled = "task.cancelled"
)

// EventTypeTaskOutput is the streaming output event. High frequency while a
// task is running; each event carries one chunk of CLI output.
const EventTypeTaskOutput = "task.output"

// GlobalTasksChannel carries lifecycle events for every task. Dashboards
// subscribe to this for the live task list; output events are not mirrored
// here.
const GlobalTasksChannel = "tasks"

// TaskChannel returns the channel name for a specific task's events.
// Format: "task:{task_id}"
func TaskChannel(taskID string) string {
	return "task:" + taskID
}

// SessionChannel returns the channel name for a session's task lifecycle
// events. Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action  string `json:"action"`            // "subscribe", "unsubscribe", "catchup", "ping"
	Channel string `json:"channel,omitempty"` // channel name (e.g. "task:abc-123")
	LastSeq *int64 `json:"last_seq,omitempty"`
}
