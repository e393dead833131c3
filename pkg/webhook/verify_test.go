package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/droverhq/drover/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeSecrets(values map[string]string) SecretResolver {
	return func(name string) string { return values[name] }
}

func signHex(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifier_GitHub(t *testing.T) {
	def := &config.WebhookDefinition{
		Provider:          config.ProviderGitHub,
		RequiresSignature: true,
		SecretEnv:         "GITHUB_WEBHOOK_SECRET",
	}
	v := NewVerifier(fakeSecrets(map[string]string{"GITHUB_WEBHOOK_SECRET": "gh-secret"}))
	body := []byte(`{"action":"opened"}`)

	t.Run("valid signature", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerGitHubSignature, "sha256="+signHex("gh-secret", body))
		assert.NoError(t, v.Verify(def, header, body))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerGitHubSignature, "sha256="+signHex("other", body))
		assert.ErrorIs(t, v.Verify(def, header, body), ErrUnauthorized)
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerGitHubSignature, "sha256="+signHex("gh-secret", body))
		assert.ErrorIs(t, v.Verify(def, header, []byte(`{"action":"closed"}`)), ErrUnauthorized)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(def, http.Header{}, body), ErrUnauthorized)
	})

	t.Run("missing prefix rejected", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerGitHubSignature, signHex("gh-secret", body))
		assert.ErrorIs(t, v.Verify(def, header, body), ErrUnauthorized)
	})

	t.Run("missing secret fails closed", func(t *testing.T) {
		bare := NewVerifier(fakeSecrets(nil))
		header := http.Header{}
		header.Set(headerGitHubSignature, "sha256="+signHex("gh-secret", body))
		assert.ErrorIs(t, bare.Verify(def, header, body), ErrUnauthorized)
	})

	t.Run("signature not required skips verification", func(t *testing.T) {
		open := &config.WebhookDefinition{Provider: config.ProviderGitHub}
		assert.NoError(t, v.Verify(open, http.Header{}, body))
	})
}

func TestVerifier_Slack(t *testing.T) {
	def := &config.WebhookDefinition{
		Provider:          config.ProviderSlack,
		RequiresSignature: true,
		SecretEnv:         "SLACK_SIGNING_SECRET",
	}
	now := time.Unix(1700000000, 0)
	v := NewVerifier(fakeSecrets(map[string]string{"SLACK_SIGNING_SECRET": "sl-secret"}))
	v.now = func() time.Time { return now }

	body := []byte(`{"type":"event_callback"}`)
	slackHeader := func(ts int64) http.Header {
		tsStr := strconv.FormatInt(ts, 10)
		base := fmt.Sprintf("v0:%s:%s", tsStr, body)
		header := http.Header{}
		header.Set(headerSlackTimestamp, tsStr)
		header.Set(headerSlackSignature, "v0="+signHex("sl-secret", []byte(base)))
		return header
	}

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, v.Verify(def, slackHeader(now.Unix()), body))
	})

	t.Run("timestamp inside window accepted", func(t *testing.T) {
		assert.NoError(t, v.Verify(def, slackHeader(now.Unix()-int64(slackReplayWindow.Seconds())), body))
	})

	t.Run("stale timestamp rejected as replay", func(t *testing.T) {
		err := v.Verify(def, slackHeader(now.Unix()-int64(slackReplayWindow.Seconds())-1), body)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("future timestamp rejected", func(t *testing.T) {
		err := v.Verify(def, slackHeader(now.Unix()+int64(slackReplayWindow.Seconds())+1), body)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("non-numeric timestamp rejected", func(t *testing.T) {
		header := slackHeader(now.Unix())
		header.Set(headerSlackTimestamp, "yesterday")
		assert.ErrorIs(t, v.Verify(def, header, body), ErrUnauthorized)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		wrong := NewVerifier(fakeSecrets(map[string]string{"SLACK_SIGNING_SECRET": "other"}))
		wrong.now = func() time.Time { return now }
		assert.ErrorIs(t, wrong.Verify(def, slackHeader(now.Unix()), body), ErrUnauthorized)
	})
}

func TestVerifier_Sentry(t *testing.T) {
	def := &config.WebhookDefinition{
		Provider:          config.ProviderSentry,
		RequiresSignature: true,
		SecretEnv:         "SENTRY_CLIENT_SECRET",
	}
	v := NewVerifier(fakeSecrets(map[string]string{"SENTRY_CLIENT_SECRET": "sn-secret"}))
	body := []byte(`{"event":"created"}`)

	t.Run("bare hex digest accepted", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerSentrySignature, signHex("sn-secret", body))
		assert.NoError(t, v.Verify(def, header, body))
	})

	t.Run("mismatch rejected", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerSentrySignature, signHex("sn-secret", []byte("other body")))
		assert.ErrorIs(t, v.Verify(def, header, body), ErrUnauthorized)
	})
}

func TestVerifier_Jira(t *testing.T) {
	def := &config.WebhookDefinition{
		Provider:          config.ProviderJira,
		RequiresSignature: true,
		SecretEnv:         "JIRA_WEBHOOK_SECRET",
	}
	v := NewVerifier(fakeSecrets(map[string]string{"JIRA_WEBHOOK_SECRET": "ji-secret"}))
	body := []byte(`{"webhookEvent":"jira:issue_updated"}`)

	t.Run("configured header with optional prefix", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerJiraSignature, "sha256="+signHex("ji-secret", body))
		assert.NoError(t, v.Verify(def, header, body))

		header.Set(headerJiraSignature, signHex("ji-secret", body))
		assert.NoError(t, v.Verify(def, header, body))
	})

	t.Run("falls back to hub signature header", func(t *testing.T) {
		header := http.Header{}
		header.Set(headerGitHubSignature, signHex("ji-secret", body))
		assert.NoError(t, v.Verify(def, header, body))
	})
}

func TestEnvSecrets(t *testing.T) {
	t.Setenv("DROVER_TEST_SECRET", "from-env")
	require.Equal(t, "from-env", EnvSecrets("DROVER_TEST_SECRET"))
	assert.Empty(t, EnvSecrets("DROVER_TEST_SECRET_MISSING"))
}
