package models

import "github.com/droverhq/drover/ent"

// CreateConversationRequest contains the data needed to create a conversation.
type CreateConversationRequest struct {
	ID     string // optional, generated when empty
	Title  string
	UserID string
	FlowID string
}

// AppendMessageRequest adds one message to a conversation's append-only log.
type AppendMessageRequest struct {
	ConversationID string
	Role           string // user, assistant, system
	Content        string
	TaskID         string // assistant messages produced by a task
}

// ConversationFilters contains filtering and pagination options for
// conversation listing.
type ConversationFilters struct {
	UserID          string
	FlowID          string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// ConversationListResponse contains paginated conversation results.
type ConversationListResponse struct {
	Conversations []*ent.Conversation `json:"conversations"`
	TotalCount    int                 `json:"total_count"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
}
