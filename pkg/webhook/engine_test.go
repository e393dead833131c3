package webhook

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/flow"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingOutbound captures provider calls instead of hitting real APIs.
type recordingOutbound struct {
	mu        sync.Mutex
	comments  []string
	reactions []string
	labels    [][]string
	forwards  []string
	err       error
}

func (o *recordingOutbound) Comment(_ context.Context, _ string, _ map[string]any, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.comments = append(o.comments, text)
	return nil
}

func (o *recordingOutbound) React(_ context.Context, _ string, _ map[string]any, emoji string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.reactions = append(o.reactions, emoji)
	return nil
}

func (o *recordingOutbound) Label(_ context.Context, _ string, _ map[string]any, labels []string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.labels = append(o.labels, labels)
	return nil
}

func (o *recordingOutbound) Forward(_ context.Context, url string, _ map[string]any) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.err != nil {
		return o.err
	}
	o.forwards = append(o.forwards, url)
	return nil
}

type engineFixture struct {
	engine   *Engine
	client   *ent.Client
	tasks    *services.TaskService
	convs    *services.ConversationService
	webhooks *services.WebhookService
	audit    *services.WebhookEventService
	queue    *queue.Queue
	outbound *recordingOutbound
}

var testSecrets = map[string]string{
	"GITHUB_WEBHOOK_SECRET": "gh-secret",
	"SLACK_SIGNING_SECRET":  "sl-secret",
	"SENTRY_CLIENT_SECRET":  "sn-secret",
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	client := testdb.NewTestClient(t)

	registry, err := config.NewWebhookRegistry(config.BuiltinWebhooks())
	require.NoError(t, err)

	hub := events.NewHub(events.DefaultRingSize)
	q := queue.NewQueue(64)
	outbound := &recordingOutbound{}

	deps := Deps{
		Webhooks:      services.NewWebhookService(client.Client, registry),
		Audit:         services.NewWebhookEventService(client.Client),
		Tasks:         services.NewTaskService(client.Client),
		Conversations: services.NewConversationService(client.Client),
		Sessions:      services.NewSessionService(client.Client),
		Queue:         q,
		Publisher:     events.NewTaskPublisher(hub),
		Outbound:      outbound,
	}

	return &engineFixture{
		engine:   NewEngine(deps, fakeSecrets(testSecrets)),
		client:   client.Client,
		tasks:    deps.Tasks,
		convs:    deps.Conversations,
		webhooks: deps.Webhooks,
		audit:    deps.Audit,
		queue:    q,
		outbound: outbound,
	}
}

func (f *engineFixture) githubRequest(t *testing.T, event, body string) (http.Header, []byte) {
	t.Helper()
	raw := []byte(body)
	header := http.Header{}
	header.Set(headerGitHubEvent, event)
	header.Set(headerGitHubSignature, "sha256="+signHex("gh-secret", raw))
	return header, raw
}

const githubCommentPayload = `{
	"action": "created",
	"repository": {"full_name": "acme/web"},
	"issue": {"number": 42, "title": "Login broken", "body": "Stack trace attached"},
	"comment": {"body": "@agent investigate this crash"}
}`

func TestEngine_GitHubCommentCreatesTask(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	header, body := f.githubRequest(t, "issue_comment", githubCommentPayload)
	result, err := f.engine.HandleRequest(ctx, "github", "", header, body)
	require.NoError(t, err)

	assert.Equal(t, "issue_comment.created", result.EventType)
	assert.Equal(t, []string{"ack-react", "ack-comment", "analyze"}, result.MatchedCommands)
	require.Len(t, result.TaskIDs, 1)
	assert.True(t, result.AckSent)

	t.Run("acknowledgements posted in priority order", func(t *testing.T) {
		assert.Equal(t, []string{"eyes"}, f.outbound.reactions)
		require.Len(t, f.outbound.comments, 1)
		assert.Contains(t, f.outbound.comments[0], "issue #42")
	})

	t.Run("task carries rendered input and webhook source", func(t *testing.T) {
		task, err := f.tasks.GetTask(ctx, result.TaskIDs[0])
		require.NoError(t, err)
		assert.Equal(t, "webhook", string(task.Source))
		assert.Contains(t, task.Input, "issue #42")
		assert.Contains(t, task.Input, "acme/web")
		assert.Contains(t, task.Input, "@agent investigate this crash")
		assert.Equal(t, "planning", task.AgentName)
		assert.Equal(t, "github", task.SourceMetadata["provider"])
		assert.Equal(t, "issue_comment.created", task.SourceMetadata["event_type"])
	})

	t.Run("flow identity derived from the issue", func(t *testing.T) {
		task, err := f.tasks.GetTask(ctx, result.TaskIDs[0])
		require.NoError(t, err)
		assert.Equal(t, flow.FromExternalID("github:acme/web:42"), task.FlowID)
		require.NotNil(t, task.ConversationID)
	})

	t.Run("task enqueued", func(t *testing.T) {
		id, ok := f.queue.Pop(time.Second)
		require.True(t, ok)
		assert.Equal(t, result.TaskIDs[0], id)
	})

	t.Run("audit row complete", func(t *testing.T) {
		rows, err := f.audit.ListEvents(ctx, "github", 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		row := rows[0]
		assert.Equal(t, "issue_comment.created", row.EventType)
		require.NotNil(t, row.MatchedCommand)
		assert.Equal(t, "ack-react,ack-comment,analyze", *row.MatchedCommand)
		require.NotNil(t, row.TaskID)
		assert.Equal(t, result.TaskIDs[0], *row.TaskID)
		assert.True(t, row.ResponseSent)
	})
}

func TestEngine_FollowUpLandsInSameConversation(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	header, body := f.githubRequest(t, "issue_comment", githubCommentPayload)
	first, err := f.engine.HandleRequest(ctx, "github", "", header, body)
	require.NoError(t, err)

	second, err := f.engine.HandleRequest(ctx, "github", "", header, body)
	require.NoError(t, err)

	taskA, err := f.tasks.GetTask(ctx, first.TaskIDs[0])
	require.NoError(t, err)
	taskB, err := f.tasks.GetTask(ctx, second.TaskIDs[0])
	require.NoError(t, err)

	assert.Equal(t, taskA.FlowID, taskB.FlowID)
	require.NotNil(t, taskA.ConversationID)
	require.NotNil(t, taskB.ConversationID)
	assert.Equal(t, *taskA.ConversationID, *taskB.ConversationID)
}

func TestEngine_SentrySyntheticAck(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	body := []byte(`{
		"event": "created",
		"data": {"issue": {"id": "9001", "shortId": "WEB-12", "title": "NPE in checkout", "culprit": "cart.go", "level": "error"}}
	}`)
	header := http.Header{}
	header.Set(headerSentrySignature, signHex("sn-secret", body))

	result, err := f.engine.HandleRequest(ctx, "sentry", "", header, body)
	require.NoError(t, err)

	require.Len(t, result.TaskIDs, 1)
	assert.True(t, result.AckSent)
	assert.Equal(t, map[string]any{"status": "accepted"}, result.ResponseBody)
	// No comment-style surface on sentry, so no reaction attempt either.
	assert.Empty(t, f.outbound.reactions)

	task, err := f.tasks.GetTask(ctx, result.TaskIDs[0])
	require.NoError(t, err)
	assert.Contains(t, task.Input, "WEB-12")
	assert.Equal(t, flow.FromExternalID("sentry:9001"), task.FlowID)
}

func TestEngine_SlackRespondAck(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	body := []byte(`{
		"type": "event_callback",
		"event": {"type": "app_mention", "channel": "C123", "user": "U42", "text": "<@bot> help with deploys", "ts": "1700000000.1"}
	}`)
	ts := time.Now().Unix()
	header := http.Header{}
	header.Set(headerSlackTimestamp, timeString(ts))
	header.Set(headerSlackSignature, "v0="+signHex("sl-secret", []byte("v0:"+timeString(ts)+":"+string(body))))

	result, err := f.engine.HandleRequest(ctx, "slack", "", header, body)
	require.NoError(t, err)

	assert.Equal(t, "app_mention", result.EventType)
	require.Len(t, result.TaskIDs, 1)
	assert.True(t, result.AckSent)
	assert.Equal(t, map[string]any{"text": "Working on it."}, result.ResponseBody)

	task, err := f.tasks.GetTask(ctx, result.TaskIDs[0])
	require.NoError(t, err)
	assert.Contains(t, task.Input, "C123")
	assert.Equal(t, flow.FromExternalID("slack:C123:1700000000.1"), task.FlowID)
}

func TestEngine_DynamicCustomWebhook(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	noSig := false
	prio := 10
	cfg, err := f.webhooks.CreateWebhookConfig(ctx, models.CreateWebhookConfigRequest{
		Name:              "deploy-events",
		Provider:          "custom",
		Path:              "deploys",
		DefaultAgent:      "brain",
		EventTypeExpr:     "meta.kind",
		RequiresSignature: &noSig,
		Commands: []models.CreateWebhookCommandRequest{
			{
				Name:     "announce-failure",
				Agent:    "brain",
				Trigger:  "deploy.failed",
				Priority: &prio,
				Action:   config.ActionCreateTask,
				Template: "Deploy of {{service}} failed: {{reason}}",
			},
		},
	})
	require.NoError(t, err)

	body := []byte(`{
		"meta": {"kind": "deploy.failed"},
		"service": "checkout",
		"reason": "migration timeout",
		"external_id": "deploy-7"
	}`)
	result, err := f.engine.HandleRequest(ctx, "custom", "deploys", http.Header{}, body)
	require.NoError(t, err)

	assert.Equal(t, "deploy.failed", result.EventType)
	require.Len(t, result.TaskIDs, 1)

	task, err := f.tasks.GetTask(ctx, result.TaskIDs[0])
	require.NoError(t, err)
	assert.Equal(t, "Deploy of checkout failed: migration timeout", task.Input)
	assert.Equal(t, flow.FromExternalID("custom:deploy-7"), task.FlowID)

	t.Run("audit keyed by config id", func(t *testing.T) {
		rows, err := f.audit.ListEvents(ctx, cfg.ID, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})
}

func TestEngine_RequestRejections(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	t.Run("unknown endpoint", func(t *testing.T) {
		_, err := f.engine.HandleRequest(ctx, "gitlab", "", http.Header{}, []byte(`{}`))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("bad signature", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerGitHubSignature, "sha256=deadbeef")
		_, err := f.engine.HandleRequest(ctx, "github", "", header, []byte(`{}`))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("non-json payload", func(t *testing.T) {
		body := []byte("not json")
		header := http.Header{}
		header.Set(headerGitHubSignature, "sha256="+signHex("gh-secret", body))
		_, err := f.engine.HandleRequest(ctx, "github", "", header, body)
		assert.ErrorIs(t, err, ErrBadPayload)
	})

	t.Run("rejected requests leave no audit rows", func(t *testing.T) {
		rows, err := f.audit.ListEvents(ctx, "github", 10)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestEngine_NoMatchStillAudited(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	header, body := f.githubRequest(t, "push", `{"ref": "refs/heads/main"}`)
	result, err := f.engine.HandleRequest(ctx, "github", "", header, body)
	require.NoError(t, err)

	assert.Empty(t, result.MatchedCommands)
	assert.Empty(t, result.TaskIDs)
	assert.False(t, result.AckSent)

	rows, err := f.audit.ListEvents(ctx, "github", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "push", rows[0].EventType)
	assert.False(t, rows[0].ResponseSent)
}

func TestEngine_FailedAckFallsBackToSynthetic(t *testing.T) {
	f := newEngineFixture(t)
	f.outbound.err = assert.AnError
	ctx := context.Background()

	header, body := f.githubRequest(t, "issue_comment", githubCommentPayload)
	result, err := f.engine.HandleRequest(ctx, "github", "", header, body)
	require.NoError(t, err)

	// The provider calls failed; the synthetic acknowledgement still goes out
	// before the task is created.
	require.Len(t, result.TaskIDs, 1)
	assert.True(t, result.AckSent)
	assert.Equal(t, map[string]any{"status": "accepted"}, result.ResponseBody)
}

func timeString(ts int64) string {
	return strconv.FormatInt(ts, 10)
}
