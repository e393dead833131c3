package config

import "time"

// RetentionConfig controls data retention and background sweeps.
type RetentionConfig struct {
	// SessionIdleThreshold is how long a disconnected session may stay
	// idle before the sweep prunes it.
	SessionIdleThreshold time.Duration `yaml:"session_idle_threshold"`

	// TaskRetentionDays is how many days to keep terminal tasks before
	// soft-deleting them (setting deleted_at).
	TaskRetentionDays int `yaml:"task_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionIdleThreshold: 24 * time.Hour,
		TaskRetentionDays:    365,
		CleanupInterval:      12 * time.Hour,
	}
}
