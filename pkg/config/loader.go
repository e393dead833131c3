package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DroverYAMLConfig represents the complete drover.yaml file structure.
// Every section is optional; omitted sections fall back to built-in defaults.
type DroverYAMLConfig struct {
	System    *SystemConfig       `yaml:"system"`
	Queue     *QueueConfig        `yaml:"queue"`
	Retention *RetentionConfig    `yaml:"retention"`
	CLI       *CLIConfig          `yaml:"cli"`
	Models    *ModelMapping       `yaml:"models"`
	Tools     *ToolsConfig        `yaml:"tools"`
	Webhooks  []WebhookDefinition `yaml:"webhooks"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Read drover.yaml from configDir (missing file = all defaults)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML into structs
//  4. Merge user values over built-in defaults
//  5. Build the webhook registry (built-ins + file-declared, path-unique)
//  6. Validate and return Config ready for use
func Initialize(_ context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	fileCfg, err := loadDroverYAML(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg := &Config{
		configDir: configDir,
		System:    DefaultSystemConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		CLI:       DefaultCLIConfig(),
		Models:    DefaultModelMapping(),
		Tools:     DefaultToolsConfig(),
	}

	if fileCfg != nil {
		// User values override defaults; zero values fall through.
		if fileCfg.System != nil {
			if err := mergo.Merge(cfg.System, fileCfg.System, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge system config: %w", err)
			}
		}
		if fileCfg.Queue != nil {
			if err := mergo.Merge(cfg.Queue, fileCfg.Queue, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge queue config: %w", err)
			}
		}
		if fileCfg.Retention != nil {
			if err := mergo.Merge(cfg.Retention, fileCfg.Retention, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge retention config: %w", err)
			}
		}
		if fileCfg.CLI != nil {
			if err := mergo.Merge(cfg.CLI, fileCfg.CLI, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge cli config: %w", err)
			}
		}
		if fileCfg.Models != nil {
			if err := mergo.Merge(cfg.Models, fileCfg.Models, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge models config: %w", err)
			}
		}
		if fileCfg.Tools != nil {
			if err := mergo.Merge(cfg.Tools, fileCfg.Tools, mergo.WithOverride); err != nil {
				return nil, fmt.Errorf("failed to merge tools config: %w", err)
			}
		}
	}

	// Built-in webhooks plus any declared in drover.yaml. File-declared
	// definitions replace built-ins for the same provider.
	defs := BuiltinWebhooks()
	if fileCfg != nil && len(fileCfg.Webhooks) > 0 {
		defs = overlayWebhooks(defs, fileCfg.Webhooks)
	}
	registry, err := NewWebhookRegistry(defs)
	if err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	cfg.Webhooks = registry

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"builtin_webhooks", cfg.Webhooks.Len(),
		"workers", cfg.Queue.WorkerCount)

	return cfg, nil
}

// loadDroverYAML reads and parses drover.yaml. A missing file is not an
// error; the daemon runs on defaults.
func loadDroverYAML(configDir string) (*DroverYAMLConfig, error) {
	path := filepath.Join(configDir, "drover.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No drover.yaml found, using built-in defaults", "path", path)
			return nil, nil
		}
		return nil, NewLoadError("drover.yaml", err)
	}

	// Expand {{.VAR}} environment references before parsing
	data = ExpandEnv(data)

	var cfg DroverYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewLoadError("drover.yaml", fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	return &cfg, nil
}

// overlayWebhooks replaces built-in definitions with file-declared ones for
// the same provider, and appends new providers.
func overlayWebhooks(builtin, declared []WebhookDefinition) []WebhookDefinition {
	byProvider := make(map[string]int, len(builtin))
	out := make([]WebhookDefinition, len(builtin))
	copy(out, builtin)
	for i, def := range out {
		byProvider[def.Provider] = i
	}
	for _, def := range declared {
		if i, ok := byProvider[def.Provider]; ok {
			out[i] = def
		} else {
			out = append(out, def)
		}
	}
	return out
}

// validate checks cross-field invariants not covered by registry construction.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", ErrInvalidValue)
	}
	if cfg.Queue.Capacity < 1 {
		return NewValidationError("queue", "queue", "capacity", ErrInvalidValue)
	}
	if cfg.CLI.Binary == "" {
		return NewValidationError("cli", "cli", "binary", ErrMissingRequiredField)
	}
	for _, provider := range cfg.Webhooks.Providers() {
		def := cfg.Webhooks.Get(provider)
		if def.RequiresSignature && def.SecretEnv == "" {
			return NewValidationError("webhook", def.Name, "secret_env", ErrMissingRequiredField)
		}
		for _, cmd := range def.Commands {
			if cmd.Name == "" {
				return NewValidationError("webhook", def.Name, "command.name", ErrMissingRequiredField)
			}
			if cmd.Action == ActionCreateTask && cmd.Agent == "" {
				return NewValidationError("webhook", def.Name, "command.agent", ErrMissingRequiredField)
			}
		}
	}
	return nil
}
