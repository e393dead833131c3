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

// jiraClient talks to the Jira Cloud REST API with basic auth (email plus API
// token).
type jiraClient struct {
	http    *http.Client
	baseURL string
	email   string
	token   string
}

func newJiraClient(httpClient *http.Client, baseURL, email, token string) *jiraClient {
	return &jiraClient{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		email:   email,
		token:   token,
	}
}

func jiraIssueKey(payload map[string]any) (string, error) {
	key := webhook.LookupString(payload, "issue.key")
	if key == "" {
		return "", fmt.Errorf("payload missing issue.key")
	}
	return key, nil
}

func (c *jiraClient) Comment(ctx context.Context, payload map[string]any, text string) error {
	key, err := jiraIssueKey(payload)
	if err != nil {
		return err
	}
	return c.call(ctx, http.MethodPost,
		fmt.Sprintf("/rest/api/2/issue/%s/comment", key),
		map[string]any{"body": text})
}

// React has no Jira equivalent; the action is dropped.
func (c *jiraClient) React(ctx context.Context, payload map[string]any, emoji string) error {
	slog.Debug("Jira has no reactions, dropping", "emoji", emoji)
	return nil
}

func (c *jiraClient) Label(ctx context.Context, payload map[string]any, labels []string) error {
	key, err := jiraIssueKey(payload)
	if err != nil {
		return err
	}

	adds := make([]map[string]any, 0, len(labels))
	for _, label := range labels {
		adds = append(adds, map[string]any{"add": label})
	}
	return c.call(ctx, http.MethodPut,
		fmt.Sprintf("/rest/api/2/issue/%s", key),
		map[string]any{"update": map[string]any{"labels": adds}})
}

func (c *jiraClient) call(ctx context.Context, method, path string, body map[string]any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding jira request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.email, c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("jira request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("jira returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
