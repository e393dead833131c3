package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	entconversation "github.com/droverhq/drover/ent/conversation"
	entmessage "github.com/droverhq/drover/ent/message"
	"github.com/droverhq/drover/pkg/models"
	"github.com/google/uuid"
)

// DefaultContextMessages is how many trailing messages are folded into a
// task prompt when the conversation has history.
const DefaultContextMessages = 20

// ConversationService manages conversations and their append-only message
// logs.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService.
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// CreateConversation creates a new conversation.
func (s *ConversationService) CreateConversation(httpCtx context.Context, req models.CreateConversationRequest) (*ent.Conversation, error) {
	if req.FlowID == "" {
		return nil, NewValidationError("flow_id", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conversationID := req.ID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	builder := s.client.Conversation.Create().
		SetID(conversationID).
		SetFlowID(req.FlowID)

	if req.Title != "" {
		builder.SetTitle(req.Title)
	}
	if req.UserID != "" {
		builder.SetUserID(req.UserID)
	}

	conversation, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	return conversation, nil
}

// GetConversation retrieves a conversation by ID, optionally with its
// messages loaded in order.
func (s *ConversationService) GetConversation(ctx context.Context, conversationID string, withMessages bool) (*ent.Conversation, error) {
	query := s.client.Conversation.Query().
		Where(entconversation.IDEQ(conversationID))

	if withMessages {
		query = query.WithMessages(func(q *ent.MessageQuery) {
			q.Order(ent.Asc(entmessage.FieldSequenceNumber))
		})
	}

	conversation, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return conversation, nil
}

// GetOrCreateByFlow returns the conversation bound to a flow, creating one on
// first use. Webhook follow-ups for the same external resource resolve to the
// same flow and therefore land in the same conversation.
func (s *ConversationService) GetOrCreateByFlow(httpCtx context.Context, flowID, title, userID string) (*ent.Conversation, bool, error) {
	if flowID == "" {
		return nil, false, NewValidationError("flow_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Conversation.Query().
		Where(
			entconversation.FlowIDEQ(flowID),
			entconversation.ArchivedEQ(false),
		).
		Order(ent.Asc(entconversation.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query conversation by flow: %w", err)
	}

	conversation, err := s.CreateConversation(ctx, models.CreateConversationRequest{
		Title:  title,
		UserID: userID,
		FlowID: flowID,
	})
	if errors.Is(err, ErrAlreadyExists) {
		// Lost a concurrent-create race: the partial unique index on active
		// flow_id rejected the duplicate, the winner's row is the answer.
		winner, qerr := s.client.Conversation.Query().
			Where(
				entconversation.FlowIDEQ(flowID),
				entconversation.ArchivedEQ(false),
			).
			First(ctx)
		if qerr != nil {
			return nil, false, fmt.Errorf("failed to re-read conversation after create race: %w", qerr)
		}
		return winner, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return conversation, true, nil
}

// ListConversations lists conversations with filtering and pagination.
func (s *ConversationService) ListConversations(ctx context.Context, filters models.ConversationFilters) (*models.ConversationListResponse, error) {
	query := s.client.Conversation.Query()

	if filters.UserID != "" {
		query = query.Where(entconversation.UserIDEQ(filters.UserID))
	}
	if filters.FlowID != "" {
		query = query.Where(entconversation.FlowIDEQ(filters.FlowID))
	}
	if !filters.IncludeArchived {
		query = query.Where(entconversation.ArchivedEQ(false))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	conversations, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(entconversation.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	return &models.ConversationListResponse{
		Conversations: conversations,
		TotalCount:    totalCount,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// AppendMessage appends one message to a conversation's log. Sequence numbers
// are assigned inside a transaction so concurrent appends stay strictly
// ordered.
func (s *ConversationService) AppendMessage(httpCtx context.Context, req models.AppendMessageRequest) (*ent.Message, error) {
	if req.ConversationID == "" {
		return nil, NewValidationError("conversation_id", "required")
	}
	if req.Role == "" {
		return nil, NewValidationError("role", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Verify the conversation exists before appending.
	exists, err := tx.Conversation.Query().
		Where(entconversation.IDEQ(req.ConversationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify conversation existence: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	// Next sequence number within the conversation.
	last, err := tx.Message.Query().
		Where(entmessage.ConversationIDEQ(req.ConversationID)).
		Order(ent.Desc(entmessage.FieldSequenceNumber)).
		First(ctx)
	nextSeq := 1
	if err == nil {
		nextSeq = last.SequenceNumber + 1
	} else if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query last message: %w", err)
	}

	messageID := uuid.New().String()
	builder := tx.Message.Create().
		SetID(messageID).
		SetConversationID(req.ConversationID).
		SetRole(entmessage.Role(req.Role)).
		SetContent(req.Content).
		SetSequenceNumber(nextSeq)

	if req.TaskID != "" {
		builder.SetTaskID(req.TaskID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	// Bump the conversation's activity timestamp.
	err = tx.Conversation.UpdateOneID(req.ConversationID).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update conversation timestamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message: %w", err)
	}

	return msg, nil
}

// GetContext returns the trailing messages of a conversation in chronological
// order, for folding into a task prompt. Limit <= 0 uses the default window.
func (s *ConversationService) GetContext(ctx context.Context, conversationID string, limit int) ([]*ent.Message, error) {
	if limit <= 0 {
		limit = DefaultContextMessages
	}

	// Fetch the newest N, then reverse into chronological order.
	messages, err := s.client.Message.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Desc(entmessage.FieldSequenceNumber)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation context: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// ListMessages returns all messages of a conversation in order.
func (s *ConversationService) ListMessages(ctx context.Context, conversationID string) ([]*ent.Message, error) {
	messages, err := s.client.Message.Query().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Order(ent.Asc(entmessage.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

// ClearConversation deletes a conversation's messages while preserving the
// conversation row and its cost/token aggregates.
func (s *ConversationService) ClearConversation(httpCtx context.Context, conversationID string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := s.client.Conversation.Query().
		Where(entconversation.IDEQ(conversationID)).
		Exist(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to verify conversation existence: %w", err)
	}
	if !exists {
		return 0, ErrNotFound
	}

	count, err := s.client.Message.Delete().
		Where(entmessage.ConversationIDEQ(conversationID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear conversation: %w", err)
	}

	return count, nil
}

// ApplyTaskCompletion folds a finished task's accounting into the
// conversation aggregates.
func (s *ConversationService) ApplyTaskCompletion(ctx context.Context, conversationID string, result models.TaskResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Conversation.UpdateOneID(conversationID).
		AddTotalCostUsd(result.CostUSD).
		AddTotalInputTokens(result.InputTokens).
		AddTotalOutputTokens(result.OutputTokens).
		AddTaskCount(1).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to apply task completion: %w", err)
	}

	return nil
}

// UpdateTitle sets a conversation's title.
func (s *ConversationService) UpdateTitle(httpCtx context.Context, conversationID, title string) error {
	if title == "" {
		return NewValidationError("title", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.Conversation.UpdateOneID(conversationID).
		SetTitle(title).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update title: %w", err)
	}
	return nil
}

// ArchiveConversation soft-archives a conversation, removing it from default
// listings and flow lookup.
func (s *ConversationService) ArchiveConversation(httpCtx context.Context, conversationID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.Conversation.UpdateOneID(conversationID).
		SetArchived(true).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to archive conversation: %w", err)
	}
	return nil
}
