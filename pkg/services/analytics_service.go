package services

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
)

// AnalyticsService aggregates cost and token accounting across tasks.
// Daily and per-agent rollups use raw SQL; ent's query builder cannot express
// date_trunc grouping.
type AnalyticsService struct {
	client *ent.Client
	db     *stdsql.DB
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(client *ent.Client, db *stdsql.DB) *AnalyticsService {
	return &AnalyticsService{client: client, db: db}
}

// Summary returns overall task and spend aggregates since the given time.
// A zero since covers all history.
func (s *AnalyticsService) Summary(ctx context.Context, since time.Time) (*models.AnalyticsSummary, error) {
	query := s.client.Task.Query().
		Where(enttask.DeletedAtIsNil())
	if !since.IsZero() {
		query = query.Where(enttask.CreatedAtGTE(since))
	}

	tasks, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for summary: %w", err)
	}

	summary := &models.AnalyticsSummary{TotalTasks: len(tasks)}
	var totalDuration float64
	var finishedCount int
	for _, t := range tasks {
		switch t.Status {
		case enttask.StatusCompleted:
			summary.CompletedTasks++
		case enttask.StatusFailed:
			summary.FailedTasks++
		case enttask.StatusCancelled:
			summary.CancelledTasks++
		}
		summary.TotalCostUSD += t.CostUsd
		summary.TotalInputTokens += t.InputTokens
		summary.TotalOutputTokens += t.OutputTokens
		if t.DurationSeconds > 0 {
			totalDuration += t.DurationSeconds
			finishedCount++
		}
	}
	if finishedCount > 0 {
		summary.AvgDurationSeconds = totalDuration / float64(finishedCount)
	}

	return summary, nil
}

// DailyCosts returns per-day spend for the trailing N days, oldest first.
func (s *AnalyticsService) DailyCosts(ctx context.Context, days int) ([]models.DailyCost, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	rows, err := s.db.QueryContext(ctx,
		`SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day,
		        COALESCE(SUM(cost_usd), 0),
		        COUNT(*)
		FROM tasks
		WHERE created_at >= $1 AND deleted_at IS NULL
		GROUP BY day
		ORDER BY day ASC`,
		since,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily costs: %w", err)
	}
	defer rows.Close()

	var out []models.DailyCost
	for rows.Next() {
		var dc models.DailyCost
		if err := rows.Scan(&dc.Date, &dc.CostUSD, &dc.TaskCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily cost row: %w", err)
		}
		out = append(out, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily cost rows: %w", err)
	}

	return out, nil
}

// ByAgent returns per-agent spend since the given time, highest spend first.
func (s *AnalyticsService) ByAgent(ctx context.Context, since time.Time) ([]models.AgentUsage, error) {
	args := []any{}
	query := `SELECT agent_name, COUNT(*), COALESCE(SUM(cost_usd), 0)
		FROM tasks
		WHERE deleted_at IS NULL`
	if !since.IsZero() {
		query += ` AND created_at >= $1`
		args = append(args, since)
	}
	query += ` GROUP BY agent_name ORDER BY SUM(cost_usd) DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query agent usage: %w", err)
	}
	defer rows.Close()

	var out []models.AgentUsage
	for rows.Next() {
		var au models.AgentUsage
		if err := rows.Scan(&au.AgentName, &au.TaskCount, &au.CostUSD); err != nil {
			return nil, fmt.Errorf("failed to scan agent usage row: %w", err)
		}
		out = append(out, au)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read agent usage rows: %w", err)
	}

	return out, nil
}
