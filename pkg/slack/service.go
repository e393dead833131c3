package slack

import (
	"context"
	"log/slog"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/queue"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Service announces terminal tasks to the configured channel. It implements
// queue.CompletionNotifier.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack announcement service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyTaskFinished announces a terminal task.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyTaskFinished(ctx context.Context, t *ent.Task, result *queue.ExecutionResult) {
	if s == nil {
		return
	}

	input := TaskFinishedInput{
		TaskID:    t.ID,
		AgentName: t.AgentName,
		Source:    string(t.Source),
		Status:    string(t.Status),
		CostUSD:   t.CostUsd,
	}
	if result != nil {
		input.Output = result.Result.Output
		if result.Err != nil {
			input.ErrorMessage = result.Err.Error()
		}
	}
	if input.ErrorMessage == "" && t.ErrorMessage != nil {
		input.ErrorMessage = *t.ErrorMessage
	}

	blocks := BuildTaskFinishedMessage(input, s.dashboardURL)
	if _, err := s.client.PostMessage(ctx, blocks, "", 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack task announcement",
			"task_id", t.ID,
			"status", t.Status,
			"error", err)
	}
}
