// Package credentials manages the CLI credentials artifact: a JSON file the
// headless CLI reads to authenticate. The daemon only stores and inspects it;
// refresh is the CLI's job.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// minTokenLength rejects obviously truncated token uploads.
const minTokenLength = 10

// Validation errors surfaced to the upload endpoint.
var (
	ErrNotFound      = errors.New("credentials not found")
	ErrTokenTooShort = errors.New("token too short")
	ErrExpired       = errors.New("credentials already expired")
)

// Credentials is the stored artifact. ExpiresAt is unix milliseconds, the
// format the CLI writes itself.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// Status summarizes the stored artifact without exposing token material.
type Status struct {
	Present   bool      `json:"present"`
	Expired   bool      `json:"expired"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

// Store reads and writes the credentials artifact at a fixed path.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a Store for the given artifact path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Save validates and persists uploaded credentials. Rejects short tokens and
// artifacts that are already expired; accepting either would only surface as
// a confusing CLI failure on the next task.
func (s *Store) Save(creds Credentials) error {
	if len(creds.AccessToken) < minTokenLength {
		return fmt.Errorf("%w: access_token", ErrTokenTooShort)
	}
	if creds.RefreshToken != "" && len(creds.RefreshToken) < minTokenLength {
		return fmt.Errorf("%w: refresh_token", ErrTokenTooShort)
	}
	if creds.ExpiresAt > 0 && s.expiresAtTime(creds.ExpiresAt).Before(s.now()) {
		return ErrExpired
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}

	// Write-then-rename so the CLI never reads a half-written artifact.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing credentials: %w", err)
	}

	slog.Info("Credentials updated", "path", s.path, "expires_at", s.expiresAtTime(creds.ExpiresAt))
	return nil
}

// Load reads the stored artifact.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading credentials: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("decoding credentials: %w", err)
	}
	return &creds, nil
}

// Status reports presence and expiry without token material.
func (s *Store) Status() Status {
	creds, err := s.Load()
	if err != nil {
		return Status{}
	}

	status := Status{Present: true}
	if creds.ExpiresAt > 0 {
		status.ExpiresAt = s.expiresAtTime(creds.ExpiresAt)
		status.Expired = status.ExpiresAt.Before(s.now())
	}
	return status
}

func (s *Store) expiresAtTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}
