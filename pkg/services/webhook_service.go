package services

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent"
	entwebhookcommand "github.com/droverhq/drover/ent/webhookcommand"
	entwebhookconfig "github.com/droverhq/drover/ent/webhookconfig"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/models"
	"github.com/google/uuid"
)

// WebhookService manages dynamic webhook configs stored in the database.
// Built-in configs live in pkg/config; this service converts stored rows into
// the same unified definition model so the matching engine sees one shape.
type WebhookService struct {
	client   *ent.Client
	registry *config.WebhookRegistry
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client, registry *config.WebhookRegistry) *WebhookService {
	return &WebhookService{client: client, registry: registry}
}

// CreateWebhookConfig registers a dynamic webhook endpoint with its commands.
// Enabled-path uniqueness is checked against both built-ins and stored
// configs; the partial unique index backs the stored side under concurrency.
func (s *WebhookService) CreateWebhookConfig(httpCtx context.Context, req models.CreateWebhookConfigRequest) (*ent.WebhookConfig, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Provider == "" {
		return nil, NewValidationError("provider", "required")
	}
	if req.Path == "" {
		return nil, NewValidationError("path", "required")
	}
	if req.DefaultAgent == "" {
		return nil, NewValidationError("default_agent", "required")
	}
	for _, cmd := range req.Commands {
		if cmd.Name == "" {
			return nil, NewValidationError("commands.name", "required")
		}
		action := cmd.Action
		if action == "" {
			action = config.ActionCreateTask
		}
		if action == config.ActionCreateTask && cmd.Agent == "" {
			return nil, NewValidationError("commands.agent", "create_task commands require an agent")
		}
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}
	requiresSignature := true
	if req.RequiresSignature != nil {
		requiresSignature = *req.RequiresSignature
	}
	if requiresSignature && req.SecretEnv == "" {
		return nil, NewValidationError("secret_env", "required when requires_signature is set")
	}

	// Reject paths claimed by an enabled built-in.
	if enabled {
		if builtin := s.registry.Get(req.Provider); builtin != nil && builtin.Enabled && builtin.Path == req.Path {
			return nil, ErrAlreadyExists
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	webhookID := uuid.New().String()
	builder := tx.WebhookConfig.Create().
		SetID(webhookID).
		SetName(req.Name).
		SetProvider(req.Provider).
		SetPath(req.Path).
		SetDefaultAgent(req.DefaultAgent).
		SetRequiresSignature(requiresSignature).
		SetEnabled(enabled)

	if req.DefaultCommand != "" {
		builder.SetDefaultCommand(req.DefaultCommand)
	}
	if req.CommandPrefix != "" {
		builder.SetCommandPrefix(req.CommandPrefix)
	}
	if req.SecretEnv != "" {
		builder.SetSecretEnv(req.SecretEnv)
	}
	if req.EventTypeExpr != "" {
		builder.SetEventTypeExpr(req.EventTypeExpr)
	}
	if req.BrainPreamble != "" {
		builder.SetBrainPreamble(req.BrainPreamble)
	}
	if req.CreatedBy != "" {
		builder.SetCreatedBy(req.CreatedBy)
	}

	webhook, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create webhook config: %w", err)
	}

	for _, cmd := range req.Commands {
		if _, err := s.createCommand(ctx, tx, webhook.ID, cmd); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit webhook config: %w", err)
	}

	return webhook, nil
}

// createCommand persists one command row inside an open transaction.
func (s *WebhookService) createCommand(ctx context.Context, tx *ent.Tx, webhookID string, cmd models.CreateWebhookCommandRequest) (*ent.WebhookCommand, error) {
	priority := 10
	if cmd.Priority != nil {
		priority = *cmd.Priority
	}
	action := cmd.Action
	if action == "" {
		action = config.ActionCreateTask
	}

	builder := tx.WebhookCommand.Create().
		SetID(uuid.New().String()).
		SetWebhookID(webhookID).
		SetName(cmd.Name).
		SetAgent(cmd.Agent).
		SetPriority(priority).
		SetAction(entwebhookcommand.Action(action))

	if len(cmd.Aliases) > 0 {
		builder.SetAliases(cmd.Aliases)
	}
	if cmd.Template != "" {
		builder.SetTemplate(cmd.Template)
	}
	if cmd.Trigger != "" {
		builder.SetTrigger(cmd.Trigger)
	}
	if cmd.Conditions != nil {
		builder.SetConditions(cmd.Conditions)
	}
	if cmd.ActionArgs != nil {
		builder.SetActionArgs(cmd.ActionArgs)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create webhook command: %w", err)
	}
	return row, nil
}

// AddCommand attaches a command to an existing webhook config.
func (s *WebhookService) AddCommand(httpCtx context.Context, webhookID string, cmd models.CreateWebhookCommandRequest) (*ent.WebhookCommand, error) {
	if cmd.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	action := cmd.Action
	if action == "" {
		action = config.ActionCreateTask
	}
	if action == config.ActionCreateTask && cmd.Agent == "" {
		return nil, NewValidationError("agent", "create_task commands require an agent")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exists, err := tx.WebhookConfig.Query().
		Where(entwebhookconfig.IDEQ(webhookID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify webhook existence: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	row, err := s.createCommand(ctx, tx, webhookID, cmd)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit webhook command: %w", err)
	}
	return row, nil
}

// GetWebhookConfig retrieves a dynamic webhook config with its commands.
func (s *WebhookService) GetWebhookConfig(ctx context.Context, webhookID string) (*ent.WebhookConfig, error) {
	webhook, err := s.client.WebhookConfig.Query().
		Where(entwebhookconfig.IDEQ(webhookID)).
		WithCommands(func(q *ent.WebhookCommandQuery) {
			q.Order(ent.Asc(entwebhookcommand.FieldPriority), ent.Asc(entwebhookcommand.FieldID))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get webhook config: %w", err)
	}
	return webhook, nil
}

// ListWebhookConfigs lists all dynamic webhook configs with their commands.
func (s *WebhookService) ListWebhookConfigs(ctx context.Context, includeDisabled bool) ([]*ent.WebhookConfig, error) {
	query := s.client.WebhookConfig.Query().
		WithCommands(func(q *ent.WebhookCommandQuery) {
			q.Order(ent.Asc(entwebhookcommand.FieldPriority), ent.Asc(entwebhookcommand.FieldID))
		})

	if !includeDisabled {
		query = query.Where(entwebhookconfig.EnabledEQ(true))
	}

	webhooks, err := query.
		Order(ent.Asc(entwebhookconfig.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhook configs: %w", err)
	}
	return webhooks, nil
}

// UpdateWebhookConfig applies a partial update to a dynamic webhook config.
func (s *WebhookService) UpdateWebhookConfig(httpCtx context.Context, webhookID string, req models.UpdateWebhookConfigRequest) (*ent.WebhookConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.WebhookConfig.UpdateOneID(webhookID).
		SetUpdatedAt(time.Now())

	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.DefaultAgent != nil {
		update.SetDefaultAgent(*req.DefaultAgent)
	}
	if req.DefaultCommand != nil {
		update.SetDefaultCommand(*req.DefaultCommand)
	}
	if req.CommandPrefix != nil {
		update.SetCommandPrefix(*req.CommandPrefix)
	}
	if req.SecretEnv != nil {
		update.SetSecretEnv(*req.SecretEnv)
	}
	if req.RequiresSignature != nil {
		update.SetRequiresSignature(*req.RequiresSignature)
	}
	if req.EventTypeExpr != nil {
		update.SetEventTypeExpr(*req.EventTypeExpr)
	}
	if req.BrainPreamble != nil {
		update.SetBrainPreamble(*req.BrainPreamble)
	}
	if req.Enabled != nil {
		update.SetEnabled(*req.Enabled)
	}

	webhook, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update webhook config: %w", err)
	}
	return webhook, nil
}

// DeleteWebhookConfig removes a dynamic webhook config and, via cascade, its
// commands.
func (s *WebhookService) DeleteWebhookConfig(httpCtx context.Context, webhookID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WebhookConfig.DeleteOneID(webhookID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete webhook config: %w", err)
	}
	return nil
}

// ResolveDefinition returns the effective webhook definition for an incoming
// request. For the provider's built-in path (empty path segment) the built-in
// definition is returned with dynamic commands for the same provider merged
// in; for a named path the stored config is returned alone.
func (s *WebhookService) ResolveDefinition(ctx context.Context, provider, path string) (*config.WebhookDefinition, error) {
	if path == "" {
		builtin := s.registry.Get(provider)
		if builtin == nil || !builtin.Enabled {
			return nil, ErrNotFound
		}

		def := *builtin
		dynamic, err := s.dynamicCommandsForProvider(ctx, provider)
		if err != nil {
			return nil, err
		}
		def.Commands = def.MergeCommands(dynamic)
		return &def, nil
	}

	webhook, err := s.client.WebhookConfig.Query().
		Where(
			entwebhookconfig.ProviderEQ(provider),
			entwebhookconfig.PathEQ(path),
			entwebhookconfig.EnabledEQ(true),
		).
		WithCommands(func(q *ent.WebhookCommandQuery) {
			q.Order(ent.Asc(entwebhookcommand.FieldPriority), ent.Asc(entwebhookcommand.FieldID))
		}).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve webhook definition: %w", err)
	}

	return toDefinition(webhook), nil
}

// dynamicCommandsForProvider collects commands from all enabled dynamic
// configs of a provider, for merging into the built-in definition.
func (s *WebhookService) dynamicCommandsForProvider(ctx context.Context, provider string) ([]config.CommandDefinition, error) {
	rows, err := s.client.WebhookCommand.Query().
		Where(entwebhookcommand.HasWebhookWith(
			entwebhookconfig.ProviderEQ(provider),
			entwebhookconfig.EnabledEQ(true),
		)).
		Order(ent.Asc(entwebhookcommand.FieldPriority), ent.Asc(entwebhookcommand.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query dynamic commands: %w", err)
	}

	commands := make([]config.CommandDefinition, 0, len(rows))
	for _, row := range rows {
		commands = append(commands, toCommandDefinition(row))
	}
	return commands, nil
}

// toDefinition converts a stored webhook config into the unified definition
// model.
func toDefinition(w *ent.WebhookConfig) *config.WebhookDefinition {
	def := &config.WebhookDefinition{
		ID:                w.ID,
		Name:              w.Name,
		Provider:          w.Provider,
		Path:              w.Path,
		DefaultAgent:      w.DefaultAgent,
		RequiresSignature: w.RequiresSignature,
		BrainPreamble:     w.BrainPreamble,
		Enabled:           w.Enabled,
		Source:            config.SourceDynamic,
	}
	if w.DefaultCommand != nil {
		def.DefaultCommand = *w.DefaultCommand
	}
	if w.CommandPrefix != nil {
		def.CommandPrefix = *w.CommandPrefix
	}
	if w.SecretEnv != nil {
		def.SecretEnv = *w.SecretEnv
	}
	if w.EventTypeExpr != nil {
		def.EventTypeExpr = *w.EventTypeExpr
	}
	for _, row := range w.Edges.Commands {
		def.Commands = append(def.Commands, toCommandDefinition(row))
	}
	return def
}

// toCommandDefinition converts a stored command row into the unified model.
func toCommandDefinition(c *ent.WebhookCommand) config.CommandDefinition {
	cmd := config.CommandDefinition{
		ID:         c.ID,
		Name:       c.Name,
		Aliases:    c.Aliases,
		Agent:      c.Agent,
		Template:   c.Template,
		Conditions: c.Conditions,
		Priority:   c.Priority,
		Action:     string(c.Action),
		ActionArgs: c.ActionArgs,
	}
	if c.Trigger != nil {
		cmd.Trigger = *c.Trigger
	}
	return cmd
}

// UpdateCommand modifies a command on a dynamic webhook config. Nil request
// fields are left unchanged.
func (s *WebhookService) UpdateCommand(httpCtx context.Context, webhookID, commandID string, req models.UpdateWebhookCommandRequest) (*ent.WebhookCommand, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	row, err := s.client.WebhookCommand.Query().
		Where(
			entwebhookcommand.IDEQ(commandID),
			entwebhookcommand.WebhookIDEQ(webhookID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load webhook command: %w", err)
	}

	builder := row.Update()
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "required")
		}
		builder.SetName(*req.Name)
	}
	if req.Aliases != nil {
		builder.SetAliases(*req.Aliases)
	}
	if req.Agent != nil {
		builder.SetAgent(*req.Agent)
	}
	if req.Template != nil {
		builder.SetTemplate(*req.Template)
	}
	if req.Trigger != nil {
		builder.SetTrigger(*req.Trigger)
	}
	if req.Conditions != nil {
		builder.SetConditions(*req.Conditions)
	}
	if req.Priority != nil {
		builder.SetPriority(*req.Priority)
	}
	if req.Action != nil {
		builder.SetAction(entwebhookcommand.Action(*req.Action))
	}
	if req.ActionArgs != nil {
		builder.SetActionArgs(*req.ActionArgs)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to update webhook command: %w", err)
	}
	return updated, nil
}

// DeleteCommand removes a command from a dynamic webhook config.
func (s *WebhookService) DeleteCommand(httpCtx context.Context, webhookID, commandID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.WebhookCommand.Delete().
		Where(
			entwebhookcommand.IDEQ(commandID),
			entwebhookcommand.WebhookIDEQ(webhookID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete webhook command: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
