package config

import "os"

// Agent kinds recognized for model routing. The kind is opaque metadata on a
// task; only routing and tool restriction read it.
const (
	AgentKindPlanning = "planning"
	AgentKindBrain    = "brain"
	AgentKindExecutor = "executor"
	AgentKindDefault  = "default"
)

// Environment variables that override the per-kind model mapping.
const (
	EnvModelPlanning = "DROVER_MODEL_PLANNING"
	EnvModelBrain    = "DROVER_MODEL_BRAIN"
	EnvModelExecutor = "DROVER_MODEL_EXECUTOR"
	EnvModelDefault  = "DROVER_MODEL_DEFAULT"
)

// ModelMapping binds agent kinds to model names. Planning and brain agents
// bind to the heavier model; executor binds to the faster one.
type ModelMapping struct {
	Planning string `yaml:"planning"`
	Brain    string `yaml:"brain"`
	Executor string `yaml:"executor"`
	Default  string `yaml:"default"`
}

// DefaultModelMapping returns the built-in model routing defaults.
func DefaultModelMapping() *ModelMapping {
	return &ModelMapping{
		Planning: "opus",
		Brain:    "opus",
		Executor: "sonnet",
		Default:  "sonnet",
	}
}

// Resolve returns the model name for an agent kind, applying the environment
// override layer. Unknown kinds fall back to Default.
func (m *ModelMapping) Resolve(agentKind string) string {
	switch agentKind {
	case AgentKindPlanning:
		return envOverride(EnvModelPlanning, m.Planning)
	case AgentKindBrain:
		return envOverride(EnvModelBrain, m.Brain)
	case AgentKindExecutor:
		return envOverride(EnvModelExecutor, m.Executor)
	default:
		return envOverride(EnvModelDefault, m.Default)
	}
}

func envOverride(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ToolsConfig maps agent kinds to the allowed-tools set forwarded to the CLI.
// An empty list means the CLI default tool set.
type ToolsConfig struct {
	Planning []string `yaml:"planning"`
	Brain    []string `yaml:"brain"`
	Executor []string `yaml:"executor"`
	Default  []string `yaml:"default"`
}

// DefaultToolsConfig returns the built-in allowed-tools defaults.
func DefaultToolsConfig() *ToolsConfig {
	return &ToolsConfig{
		Planning: []string{"Read", "Grep", "Glob", "WebFetch"},
		Brain:    []string{"Read", "Grep", "Glob", "Bash", "WebFetch"},
		Executor: []string{"Read", "Write", "Edit", "Bash", "Grep", "Glob"},
		Default:  []string{"Read", "Grep", "Glob"},
	}
}

// Resolve returns the allowed-tools set for an agent kind.
func (t *ToolsConfig) Resolve(agentKind string) []string {
	var tools []string
	switch agentKind {
	case AgentKindPlanning:
		tools = t.Planning
	case AgentKindBrain:
		tools = t.Brain
	case AgentKindExecutor:
		tools = t.Executor
	default:
		tools = t.Default
	}
	out := make([]string, len(tools))
	copy(out, tools)
	return out
}
