// Package models contains request, response, and filter types shared between
// the HTTP handlers and the service layer.
package models

import (
	"time"

	"github.com/droverhq/drover/ent"
)

// CreateTaskRequest contains the data needed to enqueue a new task.
// ID is optional; a UUID is generated when empty.
type CreateTaskRequest struct {
	ID             string
	SessionID      string
	ConversationID string
	FlowID         string
	ExternalID     string
	ParentTaskID   string
	AgentName      string
	AgentKind      string
	Input          string
	Source         string // chat, webhook, subagent
	SourceMetadata map[string]any
}

// TaskResult carries the terminal accounting of a finished CLI invocation.
type TaskResult struct {
	Output          string
	ErrorMessage    string
	CostUSD         float64
	InputTokens     int
	OutputTokens    int
	DurationSeconds float64
}

// TaskFilters contains filtering and pagination options for task listing.
type TaskFilters struct {
	Status         string
	AgentName      string
	SessionID      string
	ConversationID string
	FlowID         string
	Source         string
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
	IncludeDeleted bool

	// Pagination and ordering. SortBy is validated against a whitelist by
	// the service; unknown columns are rejected.
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string // asc or desc
}

// TaskListResponse contains paginated task results.
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}
