package events

import (
	"time"

	"github.com/droverhq/drover/ent/task"
)

// Event envelopes share a fixed header (type, task_id, session_id, timestamp,
// plus the hub-injected seq); everything kind-specific rides under "data" so
// clients can switch on type and decode data without sniffing the top level.

// TaskLifecyclePayload is the envelope for task.created, task.running,
// task.completed, task.failed and task.cancelled events.
type TaskLifecyclePayload struct {
	Type      string            `json:"type"`
	TaskID    string            `json:"task_id"`
	SessionID string            `json:"session_id"`
	Timestamp string            `json:"timestamp"` // RFC3339Nano
	Data      TaskLifecycleData `json:"data"`
}

// TaskLifecycleData carries the kind-specific lifecycle fields. Accounting
// fields are populated on terminal events only.
type TaskLifecycleData struct {
	ConversationID  string      `json:"conversation_id,omitempty"`
	FlowID          string      `json:"flow_id,omitempty"`
	AgentName       string      `json:"agent_name,omitempty"`
	Status          task.Status `json:"status"`
	ErrorMessage    string      `json:"error_message,omitempty"`
	CostUSD         float64     `json:"cost_usd,omitempty"`
	InputTokens     int         `json:"input_tokens,omitempty"`
	OutputTokens    int         `json:"output_tokens,omitempty"`
	DurationSeconds float64     `json:"duration_seconds,omitempty"`
}

// TaskOutputPayload is the envelope for task.output events. One event per
// flushed chunk of CLI output, in stream order.
type TaskOutputPayload struct {
	Type      string         `json:"type"` // always EventTypeTaskOutput
	TaskID    string         `json:"task_id"`
	SessionID string         `json:"session_id"`
	Timestamp string         `json:"timestamp"` // RFC3339Nano
	Data      TaskOutputData `json:"data"`
}

// TaskOutputData carries the chunk for a task.output event.
type TaskOutputData struct {
	Chunk string `json:"chunk"`
}

func nowRFC3339Nano() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
