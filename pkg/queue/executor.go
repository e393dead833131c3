package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/droverhq/drover/ent"
	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/runner"
	"github.com/droverhq/drover/pkg/services"
)

// Prompt assembly headers. The CLI receives prior conversation context and
// the current message under fixed markers so agents can tell them apart.
const (
	contextHeader = "## Previous Conversation Context:"
	currentHeader = "## Current Message:"
)

// Masker scrubs credential-shaped strings from transcript text before it is
// stored or broadcast.
type Masker interface {
	Mask(text string) string
}

// Executor runs one task: assembles the prompt from conversation context,
// resolves model and tools by agent kind, invokes the CLI runner, and streams
// output chunks to the hub and the store.
type Executor struct {
	cliRunner     runner.Runner
	models        *config.ModelMapping
	tools         *config.ToolsConfig
	queueConfig   *config.QueueConfig
	tasks         *services.TaskService
	conversations *services.ConversationService
	publisher     TaskEventPublisher
	masker        Masker
}

// NewExecutor creates an Executor.
func NewExecutor(
	cliRunner runner.Runner,
	modelMapping *config.ModelMapping,
	tools *config.ToolsConfig,
	queueConfig *config.QueueConfig,
	tasks *services.TaskService,
	conversations *services.ConversationService,
	publisher TaskEventPublisher,
) *Executor {
	return &Executor{
		cliRunner:     cliRunner,
		models:        modelMapping,
		tools:         tools,
		queueConfig:   queueConfig,
		tasks:         tasks,
		conversations: conversations,
		publisher:     publisher,
	}
}

// SetMasker installs output masking. All transcript chunks and the terminal
// result pass through it. Optional; a nil masker leaves output untouched.
func (e *Executor) SetMasker(m Masker) {
	e.masker = m
}

func (e *Executor) mask(text string) string {
	if e.masker == nil {
		return text
	}
	return e.masker.Mask(text)
}

// Execute runs the task's CLI invocation and returns its terminal outcome.
// Output is streamed progressively; only the terminal state is returned.
func (e *Executor) Execute(ctx context.Context, t *ent.Task) *ExecutionResult {
	prompt, err := e.buildPrompt(ctx, t)
	if err != nil {
		return &ExecutionResult{
			Status: enttask.StatusFailed,
			Err:    fmt.Errorf("assembling prompt: %w", err),
		}
	}

	flusher := newOutputFlusher(e.tasks, t.ID, e.queueConfig.OutputFlushChunks, e.queueConfig.OutputFlushInterval)

	result, invokeErr := e.cliRunner.Invoke(ctx, runner.InvokeRequest{
		Prompt:       prompt,
		Model:        e.models.Resolve(t.AgentKind),
		AllowedTools: e.tools.Resolve(t.AgentKind),
		Timeout:      e.queueConfig.TaskTimeout,
	}, func(ev runner.StreamEvent) {
		chunk := e.mask(chunkText(ev))
		if chunk == "" {
			return
		}
		e.publisher.PublishOutput(t.ID, t.SessionID, chunk)
		flusher.add(ctx, chunk)
	})

	// Final flush on a background context: the task context may already be
	// cancelled, and buffered output must still reach the store.
	flusher.flush(context.Background())

	return e.buildExecutionResult(result, invokeErr)
}

// buildPrompt renders the full CLI prompt: prior conversation context first,
// then the current message, wrapped by the brain-delegation preamble for
// webhook tasks.
func (e *Executor) buildPrompt(ctx context.Context, t *ent.Task) (string, error) {
	prompt := t.Input

	if t.ConversationID != nil {
		messages, err := e.conversations.GetContext(ctx, *t.ConversationID, services.DefaultContextMessages)
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			return "", err
		}
		if len(messages) > 0 {
			var b strings.Builder
			b.WriteString(contextHeader)
			b.WriteString("\n\n")
			for _, msg := range messages {
				b.WriteString(string(msg.Role))
				b.WriteString(": ")
				b.WriteString(msg.Content)
				b.WriteString("\n")
			}
			b.WriteString("\n")
			b.WriteString(currentHeader)
			b.WriteString("\n\n")
			b.WriteString(t.Input)
			prompt = b.String()
		}
	}

	if t.Source == enttask.SourceWebhook {
		if preamble, ok := t.SourceMetadata["brain_preamble"].(string); ok && preamble != "" {
			prompt = preamble + "\n\n" + prompt
		}
	}

	return prompt, nil
}

// buildExecutionResult maps the runner outcome onto the task state machine.
func (e *Executor) buildExecutionResult(result *runner.Result, invokeErr error) *ExecutionResult {
	taskResult := models.TaskResult{}
	if result != nil {
		taskResult = models.TaskResult{
			Output:          e.mask(result.Output),
			ErrorMessage:    e.mask(result.ErrorMessage),
			CostUSD:         result.CostUSD,
			InputTokens:     result.InputTokens,
			OutputTokens:    result.OutputTokens,
			DurationSeconds: result.DurationSeconds,
		}
	}

	switch {
	case invokeErr == nil && result != nil && result.Success:
		return &ExecutionResult{Status: enttask.StatusCompleted, Result: taskResult}
	case errors.Is(invokeErr, runner.ErrCancelled):
		return &ExecutionResult{Status: enttask.StatusCancelled, Result: taskResult, Err: invokeErr}
	default:
		err := invokeErr
		if err == nil {
			err = fmt.Errorf("CLI reported failure: %s", taskResult.ErrorMessage)
		}
		return &ExecutionResult{Status: enttask.StatusFailed, Result: taskResult, Err: err}
	}
}

// chunkText renders a stream event as a transcript chunk. Accounting records
// are not forwarded; everything else is, preserving order.
func chunkText(ev runner.StreamEvent) string {
	switch ev.Type {
	case runner.EventResult:
		return ""
	case runner.EventAssistant:
		if ev.Text == "" {
			return ""
		}
		return ev.Text + "\n"
	default:
		return string(ev.Raw) + "\n"
	}
}

// outputFlusher batches transcript chunks and writes them to the store's
// output_stream at most once per N chunks or M elapsed time, whichever comes
// first. Flush errors are tolerated: the hub already delivered the chunks
// and a lost append only trims the durable transcript.
type outputFlusher struct {
	tasks       *services.TaskService
	taskID      string
	maxChunks   int
	maxInterval time.Duration

	buf       strings.Builder
	chunks    int
	lastFlush time.Time
}

func newOutputFlusher(tasks *services.TaskService, taskID string, maxChunks int, maxInterval time.Duration) *outputFlusher {
	return &outputFlusher{
		tasks:       tasks,
		taskID:      taskID,
		maxChunks:   maxChunks,
		maxInterval: maxInterval,
		lastFlush:   time.Now(),
	}
}

// add buffers a chunk and flushes when either threshold is crossed. Called
// from the runner's event callback, so it is single-goroutine.
func (f *outputFlusher) add(ctx context.Context, chunk string) {
	f.buf.WriteString(chunk)
	f.chunks++
	if f.chunks >= f.maxChunks || time.Since(f.lastFlush) >= f.maxInterval {
		f.flush(ctx)
	}
}

// flush writes buffered output to the store.
func (f *outputFlusher) flush(ctx context.Context) {
	f.lastFlush = time.Now()
	if f.buf.Len() == 0 {
		return
	}
	if err := f.tasks.AppendOutputChunk(ctx, f.taskID, f.buf.String()); err != nil {
		slog.Warn("Failed to flush output chunk", "task_id", f.taskID, "error", err)
	}
	f.buf.Reset()
	f.chunks = 0
}
