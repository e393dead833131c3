package services

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	entsession "github.com/droverhq/drover/ent/session"
	"github.com/droverhq/drover/pkg/models"
	"github.com/google/uuid"
)

// SessionService manages client session lifecycle.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new session. Called when a WebSocket attaches, or
// with Synthetic=true when the webhook path needs a container for its tasks.
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionID := req.ID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	builder := s.client.Session.Create().
		SetID(sessionID).
		SetSynthetic(req.Synthetic)

	if req.UserID != "" {
		builder.SetUserID(req.UserID)
	}
	if req.MachineID != "" {
		builder.SetMachineID(req.MachineID)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	session, err := s.client.Session.Query().
		Where(entsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// GetOrCreateSession returns the session with the given ID, creating it when
// absent. The WebSocket attach path uses this so reconnects with a known
// session ID resume rather than fork.
func (s *SessionService) GetOrCreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.Session, bool, error) {
	if req.ID == "" {
		session, err := s.CreateSession(httpCtx, req)
		return session, true, err
	}

	session, err := s.GetSession(httpCtx, req.ID)
	if err == nil {
		return session, false, nil
	}
	if err != ErrNotFound {
		return nil, false, err
	}

	session, err = s.CreateSession(httpCtx, req)
	if err == ErrAlreadyExists {
		// Race with a concurrent attach; fetch the winner.
		session, err = s.GetSession(httpCtx, req.ID)
		return session, false, err
	}
	return session, true, err
}

// MarkDisconnected records the time a session's client detached.
func (s *SessionService) MarkDisconnected(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		SetDisconnectedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark session disconnected: %w", err)
	}
	return nil
}

// ApplyTaskCompletion folds a finished task's cost into the session
// aggregates.
func (s *SessionService) ApplyTaskCompletion(ctx context.Context, sessionID string, result models.TaskResult) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Session.UpdateOneID(sessionID).
		AddTotalCostUsd(result.CostUSD).
		AddTaskCount(1).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to apply task completion: %w", err)
	}
	return nil
}

// PruneIdleSessions deletes sessions that disconnected before the idle
// threshold and never accrued any tasks. Sessions with tasks are kept for
// accounting. Returns the number of sessions removed.
func (s *SessionService) PruneIdleSessions(ctx context.Context, idleThreshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-idleThreshold)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Session.Delete().
		Where(
			entsession.DisconnectedAtNotNil(),
			entsession.DisconnectedAtLT(cutoff),
			entsession.TaskCountEQ(0),
		).
		Exec(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune idle sessions: %w", err)
	}

	return count, nil
}
