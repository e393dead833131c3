package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/flow"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
)

// Outbound posts acknowledgements back to the originating provider. All calls
// are best-effort from the engine's perspective; failures are logged, never
// surfaced to the webhook sender.
type Outbound interface {
	Comment(ctx context.Context, provider string, payload map[string]any, text string) error
	React(ctx context.Context, provider string, payload map[string]any, emoji string) error
	Label(ctx context.Context, provider string, payload map[string]any, labels []string) error
	Forward(ctx context.Context, url string, payload map[string]any) error
}

// Result is the outcome of one handled webhook request, consumed by the HTTP
// layer to shape the response.
type Result struct {
	EventID         string
	EventType       string
	MatchedCommands []string
	TaskIDs         []string
	// ResponseBody is set by respond actions (or the synthetic
	// acknowledgement); nil means the handler sends its default body.
	ResponseBody map[string]any
	AckSent      bool
}

// enqueueWait bounds how long task creation blocks on a full queue before
// deferring delivery to the stale-queued sweep.
const enqueueWait = 2 * time.Second

// Deps bundles the engine's collaborators.
type Deps struct {
	Webhooks      *services.WebhookService
	Audit         *services.WebhookEventService
	Tasks         *services.TaskService
	Conversations *services.ConversationService
	Sessions      *services.SessionService
	Queue         *queue.Queue
	Publisher     queue.TaskEventPublisher
	Outbound      Outbound
}

// Engine turns an inbound webhook request into side effects: provider
// acknowledgements, queued tasks, and an audit record. One request may fire
// several commands; execution is priority-ascending with an acknowledgement
// guaranteed before the first task-creating action.
type Engine struct {
	deps     Deps
	verifier *Verifier
}

// NewEngine creates an Engine. A nil secrets resolver reads the process
// environment.
func NewEngine(deps Deps, secrets SecretResolver) *Engine {
	return &Engine{deps: deps, verifier: NewVerifier(secrets)}
}

// HandleRequest processes one inbound webhook request.
//
// Steps:
//  1. Resolve the effective definition (built-in merged with dynamic
//     commands, or a stored config for pathed endpoints).
//  2. Verify the signature; fail closed on missing secrets.
//  3. Parse the payload and extract the event type.
//  4. Record the audit row. Every accepted request gets one, matched or not.
//  5. Match and execute commands in priority order.
func (e *Engine) HandleRequest(ctx context.Context, provider, path string, header http.Header, body []byte) (*Result, error) {
	def, err := e.deps.Webhooks.ResolveDefinition(ctx, provider, path)
	if err != nil {
		return nil, err
	}

	if err := e.verifier.Verify(def, header, body); err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	eventType := ExtractEventType(def, header, payload)
	matched := MatchCommands(def, eventType, payload)

	auditID := def.ID
	if auditID == "" {
		auditID = def.Provider
	}
	matchedNames := make([]string, 0, len(matched))
	for _, cmd := range matched {
		matchedNames = append(matchedNames, cmd.Name)
	}
	event, err := e.deps.Audit.RecordEvent(ctx, models.RecordWebhookEventRequest{
		WebhookID:      auditID,
		Provider:       def.Provider,
		EventType:      eventType,
		Payload:        payload,
		MatchedCommand: strings.Join(matchedNames, ","),
	})
	if err != nil {
		return nil, fmt.Errorf("recording webhook event: %w", err)
	}

	result := &Result{
		EventID:         event.ID,
		EventType:       eventType,
		MatchedCommands: matchedNames,
	}
	if len(matched) == 0 {
		return result, nil
	}

	e.executeCommands(ctx, def, matched, eventType, payload, result)
	return result, nil
}

// executeCommands runs matched commands in order. Before the first
// task-creating action an acknowledgement must have gone out; if no immediate
// action precedes it, the engine pulls one forward or synthesizes one.
func (e *Engine) executeCommands(ctx context.Context, def *config.WebhookDefinition, matched []config.CommandDefinition, eventType string, payload map[string]any, result *Result) {
	executed := make([]bool, len(matched))

	for i, cmd := range matched {
		if executed[i] {
			continue
		}

		if createsTask(cmd.Action) && !result.AckSent {
			e.ensureAcknowledged(ctx, def, matched, executed, i, payload, result)
		}

		e.executeCommand(ctx, def, cmd, eventType, payload, result)
		executed[i] = true
	}
}

// ensureAcknowledged runs the first pending immediate action, or emits a
// synthetic acknowledgement when none is configured.
func (e *Engine) ensureAcknowledged(ctx context.Context, def *config.WebhookDefinition, matched []config.CommandDefinition, executed []bool, from int, payload map[string]any, result *Result) {
	for i := from; i < len(matched); i++ {
		if executed[i] || createsTask(matched[i].Action) {
			continue
		}
		e.executeCommand(ctx, def, matched[i], "", payload, result)
		executed[i] = true
		if result.AckSent {
			return
		}
	}

	// Synthetic acknowledgement: a response body for the caller plus a
	// best-effort reaction on comment-style providers.
	result.ResponseBody = map[string]any{"status": "accepted"}
	if def.Provider == config.ProviderGitHub || def.Provider == config.ProviderSlack {
		if err := e.deps.Outbound.React(ctx, def.Provider, payload, "eyes"); err != nil {
			slog.Warn("Synthetic acknowledgement reaction failed",
				"provider", def.Provider, "error", err)
		}
	}
	e.markAckSent(ctx, result)
}

func (e *Engine) executeCommand(ctx context.Context, def *config.WebhookDefinition, cmd config.CommandDefinition, eventType string, payload map[string]any, result *Result) {
	log := slog.With("provider", def.Provider, "command", cmd.Name, "action", cmd.Action)

	switch cmd.Action {
	case config.ActionCreateTask, config.ActionAsk:
		taskID, err := e.createTask(ctx, def, cmd, eventType, payload)
		if err != nil {
			log.Error("Webhook task creation failed", "error", err)
			return
		}
		result.TaskIDs = append(result.TaskIDs, taskID)
		if err := e.deps.Audit.AttachTask(ctx, result.EventID, taskID); err != nil {
			log.Warn("Failed to attach task to audit event", "error", err)
		}

	case config.ActionComment:
		text := RenderTemplate(cmd.Template, payload)
		if err := e.deps.Outbound.Comment(ctx, def.Provider, payload, text); err != nil {
			log.Warn("Acknowledgement comment failed", "error", err)
			return
		}
		e.markAckSent(ctx, result)

	case config.ActionReact:
		emoji := argString(cmd.ActionArgs, "emoji", "eyes")
		if err := e.deps.Outbound.React(ctx, def.Provider, payload, emoji); err != nil {
			log.Warn("Acknowledgement reaction failed", "error", err)
			return
		}
		e.markAckSent(ctx, result)

	case config.ActionLabel:
		labels := argStrings(cmd.ActionArgs, "labels")
		if len(labels) == 0 {
			log.Warn("Label action with no labels configured")
			return
		}
		if err := e.deps.Outbound.Label(ctx, def.Provider, payload, labels); err != nil {
			log.Warn("Label action failed", "error", err)
			return
		}
		e.markAckSent(ctx, result)

	case config.ActionRespond:
		if body, ok := cmd.ActionArgs["body"].(map[string]any); ok {
			result.ResponseBody = body
		} else {
			result.ResponseBody = map[string]any{"status": "ok"}
		}
		e.markAckSent(ctx, result)

	case config.ActionForward:
		url := argString(cmd.ActionArgs, "url", "")
		if url == "" {
			log.Warn("Forward action with no url configured")
			return
		}
		if err := e.deps.Outbound.Forward(ctx, url, payload); err != nil {
			log.Warn("Forward action failed", "error", err)
		}

	default:
		log.Warn("Unknown webhook action")
	}
}

// createTask renders the command template into a task input, resolves flow
// and conversation identity, persists the task, and enqueues it.
func (e *Engine) createTask(ctx context.Context, def *config.WebhookDefinition, cmd config.CommandDefinition, eventType string, payload map[string]any) (string, error) {
	input := RenderTemplate(cmd.Template, payload)
	if strings.TrimSpace(input) == "" {
		input = ExtractCommandText(def.Provider, payload)
	}
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("command %q rendered an empty task input", cmd.Name)
	}

	externalID := flow.DeriveExternalID(def.Provider, payload)
	flowID := flow.Resolve("", externalID)

	conversationID := ""
	if externalID != "" {
		conv, _, err := e.deps.Conversations.GetOrCreateByFlow(ctx, flowID, externalID, "")
		if err != nil {
			return "", fmt.Errorf("resolving conversation: %w", err)
		}
		conversationID = conv.ID
	}

	// All tasks from one provider share a synthetic session; there is no
	// client connection to bind them to.
	session, _, err := e.deps.Sessions.GetOrCreateSession(ctx, models.CreateSessionRequest{
		ID:        "webhook-" + def.Provider,
		Synthetic: true,
	})
	if err != nil {
		return "", fmt.Errorf("resolving synthetic session: %w", err)
	}

	metadata := map[string]any{
		"provider":   def.Provider,
		"event_type": eventType,
		"payload":    payload,
	}
	if def.BrainPreamble != "" {
		metadata["brain_preamble"] = def.BrainPreamble
	}
	if cmd.Action == config.ActionAsk {
		metadata["requires_response"] = true
	}

	task, err := e.deps.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		SessionID:      session.ID,
		ConversationID: conversationID,
		FlowID:         flowID,
		ExternalID:     externalID,
		AgentName:      cmd.Agent,
		AgentKind:      cmd.Agent,
		Input:          input,
		Source:         "webhook",
		SourceMetadata: metadata,
	})
	if err != nil {
		return "", fmt.Errorf("creating task: %w", err)
	}

	e.deps.Publisher.PublishCreated(task)

	if err := e.deps.Queue.PushWait(task.ID, enqueueWait); err != nil {
		// The task row stays queued; the pool's stale-queued sweep delivers
		// it once capacity frees up. Losing the prompt in-memory hand-off is
		// preferable to dropping the request.
		slog.Warn("Task queue full, stored task awaits sweep requeue",
			"task_id", task.ID, "error", err)
	}

	return task.ID, nil
}

// markAckSent records a successful immediate acknowledgement, once.
func (e *Engine) markAckSent(ctx context.Context, result *Result) {
	if result.AckSent {
		return
	}
	result.AckSent = true
	if err := e.deps.Audit.MarkResponseSent(ctx, result.EventID); err != nil {
		slog.Warn("Failed to mark acknowledgement on audit event",
			"event_id", result.EventID, "error", err)
	}
}

func createsTask(action string) bool {
	return action == config.ActionCreateTask || action == config.ActionAsk
}

func argString(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func argStrings(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
