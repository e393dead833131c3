package outbound

import (
	"context"
	"fmt"
	"log/slog"

	goslack "github.com/slack-go/slack"

	"github.com/droverhq/drover/pkg/webhook"
)

// slackClient is a thin wrapper around the slack-go SDK, posting replies into
// the thread that mentioned the agent.
type slackClient struct {
	api *goslack.Client
}

func newSlackClient(token string, opts ...goslack.Option) *slackClient {
	return &slackClient{api: goslack.New(token, opts...)}
}

// slackRef returns the channel and thread anchor of the triggering message.
// Replies land in the existing thread when there is one.
func slackRef(payload map[string]any) (channel, threadTS string, err error) {
	channel = webhook.LookupString(payload, "event.channel")
	if channel == "" {
		return "", "", fmt.Errorf("payload missing event.channel")
	}
	threadTS = webhook.LookupString(payload, "event.thread_ts")
	if threadTS == "" {
		threadTS = webhook.LookupString(payload, "event.ts")
	}
	return channel, threadTS, nil
}

func (c *slackClient) Comment(ctx context.Context, payload map[string]any, text string) error {
	channel, threadTS, err := slackRef(payload)
	if err != nil {
		return err
	}

	opts := []goslack.MsgOption{goslack.MsgOptionText(text, false)}
	if threadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(threadTS))
	}
	if _, _, err := c.api.PostMessageContext(ctx, channel, opts...); err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}

func (c *slackClient) React(ctx context.Context, payload map[string]any, emoji string) error {
	channel, ts, err := slackRef(payload)
	if err != nil {
		return err
	}
	if ts == "" {
		return fmt.Errorf("payload has no message timestamp to react to")
	}
	if err := c.api.AddReactionContext(ctx, emoji, goslack.NewRefToMessage(channel, ts)); err != nil {
		return fmt.Errorf("reactions.add failed: %w", err)
	}
	return nil
}

// Label has no Slack equivalent; the action is dropped.
func (c *slackClient) Label(ctx context.Context, payload map[string]any, labels []string) error {
	slog.Debug("Slack has no labels, dropping", "labels", labels)
	return nil
}
