package config

import "time"

// CLIConfig holds settings for the headless LM CLI subprocess.
type CLIConfig struct {
	// Binary is the CLI executable name or absolute path.
	Binary string `yaml:"binary"`

	// WorkDir is the working directory containing the agent configuration
	// tree the CLI reads (skills, agents). Per-task overrides win.
	WorkDir string `yaml:"work_dir"`

	// InvokeTimeout is the default per-invocation ceiling. The queue's
	// TaskTimeout bounds the whole task; this bounds the child process.
	InvokeTimeout time.Duration `yaml:"invoke_timeout"`
}

// DefaultCLIConfig returns the built-in CLI defaults.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Binary:        "claude",
		WorkDir:       ".",
		InvokeTimeout: 10 * time.Minute,
	}
}
