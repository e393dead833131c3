package outbound

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/droverhq/drover/ent"
	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/queue"
)

// maxResultExcerpt bounds the completion comment so a long transcript does
// not flood the originating thread.
const maxResultExcerpt = 1500

// Notifier posts task outcomes back to the thread that requested them. Only
// webhook-sourced tasks carry enough provenance to route a reply; everything
// else is ignored.
type Notifier struct {
	dispatcher *Dispatcher
}

// NewNotifier creates a Notifier on top of a dispatcher.
func NewNotifier(dispatcher *Dispatcher) *Notifier {
	return &Notifier{dispatcher: dispatcher}
}

// NotifyTaskFinished posts a completion or failure comment to the task's
// origin. Best-effort: failures are logged and dropped.
func (n *Notifier) NotifyTaskFinished(ctx context.Context, t *ent.Task, result *queue.ExecutionResult) {
	if t.Source != enttask.SourceWebhook || t.SourceMetadata == nil {
		return
	}
	provider, _ := t.SourceMetadata["provider"].(string)
	payload, _ := t.SourceMetadata["payload"].(map[string]any)
	if provider == "" || payload == nil {
		return
	}

	text := formatOutcome(t, result)
	if err := n.dispatcher.Comment(ctx, provider, payload, text); err != nil {
		slog.Warn("Failed to post task outcome",
			"task_id", t.ID, "provider", provider, "error", err)
	}
}

func formatOutcome(t *ent.Task, result *queue.ExecutionResult) string {
	switch result.Status {
	case enttask.StatusCompleted:
		return fmt.Sprintf("Task finished.\n\n%s", excerpt(result.Result.Output))
	case enttask.StatusCancelled:
		return "Task was cancelled before finishing."
	default:
		msg := result.Result.ErrorMessage
		if msg == "" && result.Err != nil {
			msg = result.Err.Error()
		}
		return fmt.Sprintf("Task failed: %s", msg)
	}
}

func excerpt(text string) string {
	text = strings.TrimSpace(text)
	if len(text) <= maxResultExcerpt {
		return text
	}
	return text[:maxResultExcerpt] + "\n... (truncated)"
}
