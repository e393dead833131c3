package services

import (
	"context"
	"testing"

	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWebhookService(t *testing.T) *WebhookService {
	t.Helper()
	client := testdb.NewTestClient(t)
	registry, err := config.NewWebhookRegistry(config.BuiltinWebhooks())
	require.NoError(t, err)
	return NewWebhookService(client.Client, registry)
}

func TestWebhookService_CRUD(t *testing.T) {
	webhookService := newTestWebhookService(t)
	ctx := context.Background()

	t.Run("creates config with commands", func(t *testing.T) {
		priority := 5
		webhook, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "ci-bot",
			Provider:     "custom",
			Path:         "ci-bot",
			DefaultAgent: "brain",
			SecretEnv:    "CI_BOT_SECRET",
			Commands: []models.CreateWebhookCommandRequest{
				{
					Name:     "investigate",
					Agent:    "brain",
					Template: "Investigate CI failure {{build.id}}",
					Priority: &priority,
				},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, webhook.ID)

		got, err := webhookService.GetWebhookConfig(ctx, webhook.ID)
		require.NoError(t, err)
		require.Len(t, got.Edges.Commands, 1)
		assert.Equal(t, "investigate", got.Edges.Commands[0].Name)
		assert.Equal(t, 5, got.Edges.Commands[0].Priority)
	})

	t.Run("rejects duplicate enabled path", func(t *testing.T) {
		_, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "ci-bot-clone",
			Provider:     "custom",
			Path:         "ci-bot",
			DefaultAgent: "brain",
			SecretEnv:    "CI_BOT_SECRET",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects path claimed by enabled builtin", func(t *testing.T) {
		_, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "shadow-github",
			Provider:     "github",
			Path:         "", // builtin github path
			DefaultAgent: "planning",
			SecretEnv:    "GITHUB_WEBHOOK_SECRET",
		})
		require.Error(t, err)
	})

	t.Run("requires secret when signature required", func(t *testing.T) {
		_, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "no-secret",
			Provider:     "custom",
			Path:         "no-secret",
			DefaultAgent: "brain",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("create_task command requires agent", func(t *testing.T) {
		_, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "bad-command",
			Provider:     "custom",
			Path:         "bad-command",
			DefaultAgent: "brain",
			SecretEnv:    "X",
			Commands: []models.CreateWebhookCommandRequest{
				{Name: "broken"},
			},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("update and disable", func(t *testing.T) {
		webhook, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "toggler",
			Provider:     "custom",
			Path:         "toggler",
			DefaultAgent: "brain",
			SecretEnv:    "X",
		})
		require.NoError(t, err)

		disabled := false
		updated, err := webhookService.UpdateWebhookConfig(ctx, webhook.ID, models.UpdateWebhookConfigRequest{
			Enabled: &disabled,
		})
		require.NoError(t, err)
		assert.False(t, updated.Enabled)

		// Disabled config frees its path.
		_, err = webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "toggler-2",
			Provider:     "custom",
			Path:         "toggler",
			DefaultAgent: "brain",
			SecretEnv:    "X",
		})
		require.NoError(t, err)
	})

	t.Run("delete cascades commands", func(t *testing.T) {
		webhook, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "ephemeral",
			Provider:     "custom",
			Path:         "ephemeral",
			DefaultAgent: "brain",
			SecretEnv:    "X",
			Commands: []models.CreateWebhookCommandRequest{
				{Name: "go", Agent: "brain"},
			},
		})
		require.NoError(t, err)

		require.NoError(t, webhookService.DeleteWebhookConfig(ctx, webhook.ID))

		_, err = webhookService.GetWebhookConfig(ctx, webhook.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestWebhookService_ResolveDefinition(t *testing.T) {
	webhookService := newTestWebhookService(t)
	ctx := context.Background()

	t.Run("builtin path merges dynamic commands", func(t *testing.T) {
		// Dynamic command overriding the builtin "analyze" by name.
		priority := 3
		_, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "github-extras",
			Provider:     "github",
			Path:         "extras",
			DefaultAgent: "planning",
			SecretEnv:    "GITHUB_WEBHOOK_SECRET",
			Commands: []models.CreateWebhookCommandRequest{
				{
					Name:     "analyze",
					Agent:    "executor",
					Template: "custom analyze",
					Priority: &priority,
				},
				{
					Name:  "deploy",
					Agent: "executor",
				},
			},
		})
		require.NoError(t, err)

		def, err := webhookService.ResolveDefinition(ctx, "github", "")
		require.NoError(t, err)
		assert.Equal(t, config.SourceBuiltin, def.Source)

		// Dynamic wins on name collision.
		analyze := def.Command("analyze")
		require.NotNil(t, analyze)
		assert.Equal(t, "executor", analyze.Agent)
		assert.Equal(t, 3, analyze.Priority)

		// New dynamic commands are present alongside builtins.
		assert.NotNil(t, def.Command("deploy"))
		assert.NotNil(t, def.Command("implement"))

		// Merged set is sorted by priority.
		for i := 1; i < len(def.Commands); i++ {
			assert.LessOrEqual(t, def.Commands[i-1].Priority, def.Commands[i].Priority)
		}
	})

	t.Run("named path resolves stored config", func(t *testing.T) {
		def, err := webhookService.ResolveDefinition(ctx, "github", "extras")
		require.NoError(t, err)
		assert.Equal(t, config.SourceDynamic, def.Source)
		assert.Equal(t, "github-extras", def.Name)
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		_, err := webhookService.ResolveDefinition(ctx, "github", "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("aliases resolve through stored commands", func(t *testing.T) {
		_, err := webhookService.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
			Name:         "aliased",
			Provider:     "custom",
			Path:         "aliased",
			DefaultAgent: "brain",
			SecretEnv:    "X",
			Commands: []models.CreateWebhookCommandRequest{
				{Name: "analyze", Aliases: []string{"look", "check"}, Agent: "brain"},
			},
		})
		require.NoError(t, err)

		def, err := webhookService.ResolveDefinition(ctx, "custom", "aliased")
		require.NoError(t, err)
		cmd := def.Command("look")
		require.NotNil(t, cmd)
		assert.Equal(t, "analyze", cmd.Name)
	})
}
