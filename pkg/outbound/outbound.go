// Package outbound posts acknowledgements and results back to the services
// that originated webhook events. Every call is best-effort with a short
// timeout and a single retry; a provider outage must never stall ingestion or
// task processing.
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/droverhq/drover/pkg/config"
)

const (
	requestTimeout = 8 * time.Second
	retryDelay     = 500 * time.Millisecond
)

// providerClient is the per-provider surface the dispatcher routes to.
type providerClient interface {
	Comment(ctx context.Context, payload map[string]any, text string) error
	React(ctx context.Context, payload map[string]any, emoji string) error
	Label(ctx context.Context, payload map[string]any, labels []string) error
}

// Dispatcher routes outbound actions to the configured provider clients and
// implements the webhook engine's Outbound interface. Providers without a
// configured client drop the action with a log line.
type Dispatcher struct {
	clients map[string]providerClient
	http    *http.Client
}

// Config carries the provider credentials. Empty values disable the client.
type Config struct {
	GitHubToken string
	JiraBaseURL string
	JiraEmail   string
	JiraToken   string
	SlackToken  string
	SentryBase  string
	SentryToken string
}

// NewDispatcher builds a dispatcher with clients for every configured
// provider.
func NewDispatcher(cfg Config) *Dispatcher {
	httpClient := &http.Client{Timeout: requestTimeout}

	clients := make(map[string]providerClient)
	if cfg.GitHubToken != "" {
		clients[config.ProviderGitHub] = newGitHubClient(cfg.GitHubToken)
	}
	if cfg.JiraBaseURL != "" {
		clients[config.ProviderJira] = newJiraClient(httpClient, cfg.JiraBaseURL, cfg.JiraEmail, cfg.JiraToken)
	}
	if cfg.SlackToken != "" {
		clients[config.ProviderSlack] = newSlackClient(cfg.SlackToken)
	}
	if cfg.SentryBase != "" || cfg.SentryToken != "" {
		clients[config.ProviderSentry] = newSentryClient(httpClient, cfg.SentryBase, cfg.SentryToken)
	}

	return &Dispatcher{clients: clients, http: httpClient}
}

// Comment posts a comment to the originating thread.
func (d *Dispatcher) Comment(ctx context.Context, provider string, payload map[string]any, text string) error {
	client, ok := d.clients[provider]
	if !ok {
		slog.Debug("No outbound client for provider, dropping comment", "provider", provider)
		return nil
	}
	return withRetry(ctx, func(ctx context.Context) error {
		return client.Comment(ctx, payload, text)
	})
}

// React adds a reaction to the triggering entity.
func (d *Dispatcher) React(ctx context.Context, provider string, payload map[string]any, emoji string) error {
	client, ok := d.clients[provider]
	if !ok {
		slog.Debug("No outbound client for provider, dropping reaction", "provider", provider)
		return nil
	}
	return withRetry(ctx, func(ctx context.Context) error {
		return client.React(ctx, payload, emoji)
	})
}

// Label adds labels to the issue or pull request.
func (d *Dispatcher) Label(ctx context.Context, provider string, payload map[string]any, labels []string) error {
	client, ok := d.clients[provider]
	if !ok {
		slog.Debug("No outbound client for provider, dropping labels", "provider", provider)
		return nil
	}
	return withRetry(ctx, func(ctx context.Context) error {
		return client.Label(ctx, payload, labels)
	})
}

// Forward re-emits the event payload to a downstream URL as JSON.
func (d *Dispatcher) Forward(ctx context.Context, url string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding forward payload: %w", err)
	}

	return withRetry(ctx, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := d.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 300 {
			return fmt.Errorf("forward target returned %d", resp.StatusCode)
		}
		return nil
	})
}

// withRetry runs op with the request timeout, retrying once after a short
// delay. Context cancellation aborts the retry.
func withRetry(ctx context.Context, op func(context.Context) error) error {
	attempt := func() error {
		opCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		defer cancel()
		return op(opCtx)
	}

	err := attempt()
	if err == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return err
	case <-time.After(retryDelay):
	}

	if retryErr := attempt(); retryErr != nil {
		return fmt.Errorf("after retry: %w", retryErr)
	}
	return nil
}
