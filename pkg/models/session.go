package models

// CreateSessionRequest contains the data needed to create a session.
// Synthetic sessions are created by the webhook path when no client is
// attached; they behave identically except for the flag.
type CreateSessionRequest struct {
	ID        string // optional, generated when empty
	UserID    string
	MachineID string
	Synthetic bool
}
