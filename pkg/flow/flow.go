// Package flow derives flow identifiers, the end-to-end causal chain keys
// that tie a webhook event to every task and conversation it spawns.
package flow

import (
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
)

// FromExternalID returns the flow identifier for a derivable external
// identifier. The mapping is deterministic and stable across process
// restarts, so a retried or duplicate webhook event lands in the same flow.
func FromExternalID(externalID string) string {
	h := fnv.New64a()
	h.Write([]byte(externalID))
	return fmt.Sprintf("flow-%016x", h.Sum64())
}

// NewFlowID returns a fresh opaque flow identifier for tasks with no
// external identity (interactive chat).
func NewFlowID() string {
	return "flow-" + uuid.New().String()
}

// Resolve applies the flow identity rules for a new task:
// a parent's flow is inherited, otherwise a derivable external identifier
// yields a stable flow, otherwise the flow is fresh.
func Resolve(parentFlowID, externalID string) string {
	if parentFlowID != "" {
		return parentFlowID
	}
	if externalID != "" {
		return FromExternalID(externalID)
	}
	return NewFlowID()
}
