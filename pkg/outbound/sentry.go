package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/droverhq/drover/pkg/webhook"
)

const defaultSentryBase = "https://sentry.io"

// sentryClient posts notes onto the issue that fired the alert.
type sentryClient struct {
	http    *http.Client
	baseURL string
	token   string
}

func newSentryClient(httpClient *http.Client, baseURL, token string) *sentryClient {
	if baseURL == "" {
		baseURL = defaultSentryBase
	}
	return &sentryClient{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

func sentryIssueID(payload map[string]any) (string, error) {
	for _, path := range []string{"data.issue.id", "issue.id"} {
		if id := webhook.LookupString(payload, path); id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("payload missing issue id")
}

func (c *sentryClient) Comment(ctx context.Context, payload map[string]any, text string) error {
	id, err := sentryIssueID(payload)
	if err != nil {
		return err
	}

	body, err := json.Marshal(map[string]any{"text": text})
	if err != nil {
		return fmt.Errorf("encoding sentry note: %w", err)
	}

	url := fmt.Sprintf("%s/api/0/issues/%s/comments/", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sentry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sentry returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// React has no Sentry equivalent; the action is dropped.
func (c *sentryClient) React(ctx context.Context, payload map[string]any, emoji string) error {
	slog.Debug("Sentry has no reactions, dropping", "emoji", emoji)
	return nil
}

// Label has no direct Sentry equivalent; the action is dropped. Tag writes
// would need the event ingest path, not the issue API.
func (c *sentryClient) Label(ctx context.Context, payload map[string]any, labels []string) error {
	slog.Debug("Sentry has no labels, dropping", "labels", labels)
	return nil
}
