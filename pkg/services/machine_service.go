package services

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	entmachine "github.com/droverhq/drover/ent/machine"
	"github.com/google/uuid"
)

// MachineService tracks daemon instances for multi-instance deployments.
type MachineService struct {
	client *ent.Client
}

// NewMachineService creates a new MachineService.
func NewMachineService(client *ent.Client) *MachineService {
	return &MachineService{client: client}
}

// RegisterMachine creates or refreshes this instance's machine row.
func (s *MachineService) RegisterMachine(ctx context.Context, machineID, hostname string) (*ent.Machine, error) {
	if hostname == "" {
		return nil, NewValidationError("hostname", "required")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if machineID == "" {
		machineID = uuid.New().String()
	}

	machine, err := s.client.Machine.Create().
		SetID(machineID).
		SetHostname(hostname).
		SetLastHeartbeatAt(time.Now()).
		Save(writeCtx)
	if err == nil {
		return machine, nil
	}
	if !ent.IsConstraintError(err) {
		return nil, fmt.Errorf("failed to register machine: %w", err)
	}

	// Existing row; refresh and return it.
	if err := s.Heartbeat(writeCtx, machineID); err != nil {
		return nil, err
	}
	machine, err = s.client.Machine.Get(writeCtx, machineID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch machine: %w", err)
	}
	return machine, nil
}

// Heartbeat advances a machine's heartbeat. The update is monotonic: a
// delayed write can never move the timestamp backwards.
func (s *MachineService) Heartbeat(ctx context.Context, machineID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	count, err := s.client.Machine.Update().
		Where(
			entmachine.IDEQ(machineID),
			entmachine.LastHeartbeatAtLT(now),
		).
		SetLastHeartbeatAt(now).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	if count == 0 {
		// Either the machine is unknown or a newer heartbeat already landed.
		exists, err := s.client.Machine.Query().
			Where(entmachine.IDEQ(machineID)).
			Exist(writeCtx)
		if err != nil {
			return fmt.Errorf("failed to check machine existence: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
	}
	return nil
}

// FindStaleMachines returns machines whose heartbeat is older than the
// threshold.
func (s *MachineService) FindStaleMachines(ctx context.Context, threshold time.Duration) ([]*ent.Machine, error) {
	cutoff := time.Now().Add(-threshold)

	machines, err := s.client.Machine.Query().
		Where(entmachine.LastHeartbeatAtLT(cutoff)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find stale machines: %w", err)
	}
	return machines, nil
}
