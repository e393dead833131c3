package config

// SystemConfig groups system-wide infrastructure settings.
type SystemConfig struct {
	// PublicDomain is the externally reachable base URL used when
	// reporting webhook endpoint URLs (e.g. "https://drover.example.com").
	PublicDomain string `yaml:"public_domain"`

	// DashboardURL is linked from outbound notifications.
	DashboardURL string `yaml:"dashboard_url"`

	// AllowedWSOrigins restricts WebSocket origins (empty = same-origin).
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`

	// CredentialsPath is where the CLI credentials JSON artifact lives.
	CredentialsPath string `yaml:"credentials_path"`

	// Outbound provider token env var names.
	GitHubTokenEnv string `yaml:"github_token_env"`
	JiraTokenEnv   string `yaml:"jira_token_env"`
	SlackTokenEnv  string `yaml:"slack_token_env"`
	SentryTokenEnv string `yaml:"sentry_token_env"`

	// JiraBaseURL is the Jira site base URL for outbound comment calls.
	JiraBaseURL string `yaml:"jira_base_url"`

	// Slack notification settings (task completion messages).
	Slack *SlackConfig `yaml:"slack"`

	// MaskingPatterns adds deployment-specific secret patterns on top of
	// the built-in ones, keyed by pattern name.
	MaskingPatterns map[string]MaskingPattern `yaml:"masking_patterns"`
}

// MaskingPattern is a custom regex rule for scrubbing task output.
type MaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// SlackConfig holds Slack notification configuration.
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"` // Default: "SLACK_BOT_TOKEN"
	Channel  string `yaml:"channel"`   // Slack channel ID (e.g., "C12345678")
}

// DefaultSystemConfig returns the built-in system defaults.
func DefaultSystemConfig() *SystemConfig {
	return &SystemConfig{
		CredentialsPath: "./data/credentials.json",
		GitHubTokenEnv:  "GITHUB_TOKEN",
		JiraTokenEnv:    "JIRA_TOKEN",
		SlackTokenEnv:   "SLACK_BOT_TOKEN",
		SentryTokenEnv:  "SENTRY_TOKEN",
	}
}
