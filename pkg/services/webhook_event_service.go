package services

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	entwebhookevent "github.com/droverhq/drover/ent/webhookevent"
	"github.com/droverhq/drover/pkg/models"
	"github.com/google/uuid"
)

// WebhookEventService writes and reads the webhook audit log. Every accepted
// request gets a row, whether or not it matched a command or produced a task.
type WebhookEventService struct {
	client *ent.Client
}

// NewWebhookEventService creates a new WebhookEventService.
func NewWebhookEventService(client *ent.Client) *WebhookEventService {
	return &WebhookEventService{client: client}
}

// RecordEvent writes one audit row for an accepted webhook request.
func (s *WebhookEventService) RecordEvent(httpCtx context.Context, req models.RecordWebhookEventRequest) (*ent.WebhookEvent, error) {
	if req.WebhookID == "" {
		return nil, NewValidationError("webhook_id", "required")
	}
	if req.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.WebhookEvent.Create().
		SetID(uuid.New().String()).
		SetWebhookID(req.WebhookID).
		SetProvider(req.Provider).
		SetEventType(req.EventType)

	if req.Payload != nil {
		builder.SetPayload(req.Payload)
	}
	if req.MatchedCommand != "" {
		builder.SetMatchedCommand(req.MatchedCommand)
	}
	if req.TaskID != "" {
		builder.SetTaskID(req.TaskID)
	}

	event, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record webhook event: %w", err)
	}

	return event, nil
}

// MarkResponseSent flags that the immediate acknowledgement for an event
// went out.
func (s *WebhookEventService) MarkResponseSent(ctx context.Context, eventID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WebhookEvent.UpdateOneID(eventID).
		SetResponseSent(true).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark response sent: %w", err)
	}
	return nil
}

// AttachTask links a created task to its originating event.
func (s *WebhookEventService) AttachTask(ctx context.Context, eventID, taskID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WebhookEvent.UpdateOneID(eventID).
		SetTaskID(taskID).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to attach task to event: %w", err)
	}
	return nil
}

// ListEvents returns recent audit rows, optionally scoped to one webhook.
func (s *WebhookEventService) ListEvents(ctx context.Context, webhookID string, limit int) ([]*ent.WebhookEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	query := s.client.WebhookEvent.Query()
	if webhookID != "" {
		query = query.Where(entwebhookevent.WebhookIDEQ(webhookID))
	}

	events, err := query.
		Order(ent.Desc(entwebhookevent.FieldReceivedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook events: %w", err)
	}
	return events, nil
}
