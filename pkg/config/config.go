package config

// Config is the umbrella configuration object returned by Initialize()
// and passed by reference from the application root.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide infrastructure settings
	System *SystemConfig

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Retention and background sweeps
	Retention *RetentionConfig

	// Headless CLI subprocess settings
	CLI *CLIConfig

	// Per-agent-kind model routing (env-overridable)
	Models *ModelMapping

	// Per-agent-kind allowed-tools sets
	Tools *ToolsConfig

	// Built-in webhook definitions
	Webhooks *WebhookRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	BuiltinWebhooks int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Webhooks != nil {
		s.BuiltinWebhooks = c.Webhooks.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}
