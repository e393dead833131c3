package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/droverhq/drover/pkg/config"
)

// slackReplayWindow is the maximum clock skew accepted for a slack request
// timestamp. Older (or future-dated) requests are rejected as replays.
const slackReplayWindow = 5 * time.Minute

// Signature header names per provider.
const (
	headerGitHubSignature = "X-Hub-Signature-256"
	headerSlackSignature  = "X-Slack-Signature"
	headerSlackTimestamp  = "X-Slack-Request-Timestamp"
	headerSentrySignature = "Sentry-Hook-Signature"
	headerJiraSignature   = "X-Hub-Signature"
)

// SecretResolver maps an environment-variable name to its value. The
// indirection keeps secrets out of stored webhook configs and lets tests
// inject values without touching the process environment.
type SecretResolver func(envName string) string

// EnvSecrets resolves secrets from the process environment.
func EnvSecrets(envName string) string {
	return os.Getenv(envName)
}

// Verifier checks inbound request signatures against the schemes the
// providers actually use.
type Verifier struct {
	secrets SecretResolver
	now     func() time.Time
}

// NewVerifier creates a Verifier. A nil resolver falls back to EnvSecrets.
func NewVerifier(secrets SecretResolver) *Verifier {
	if secrets == nil {
		secrets = EnvSecrets
	}
	return &Verifier{secrets: secrets, now: time.Now}
}

// Verify checks the request signature per the definition's provider scheme.
// Fails closed: a definition that requires a signature but has no resolvable
// secret is rejected. Definitions with requires_signature unset skip
// verification entirely.
func (v *Verifier) Verify(def *config.WebhookDefinition, header http.Header, body []byte) error {
	if !def.RequiresSignature {
		return nil
	}

	secret := ""
	if def.SecretEnv != "" {
		secret = v.secrets(def.SecretEnv)
	}
	if secret == "" {
		return fmt.Errorf("%w: secret %q not configured", ErrUnauthorized, def.SecretEnv)
	}

	switch def.Provider {
	case config.ProviderGitHub:
		return v.verifyHexDigest(header.Get(headerGitHubSignature), "sha256=", secret, body)
	case config.ProviderSlack:
		return v.verifySlack(header, secret, body)
	case config.ProviderSentry:
		return v.verifyHexDigest(header.Get(headerSentrySignature), "", secret, body)
	case config.ProviderJira, config.ProviderCustom:
		// Jira signing is deployment-configured; the HMAC scheme mirrors
		// GitHub's with an optional sha256= prefix.
		sig := header.Get(headerJiraSignature)
		if sig == "" {
			sig = header.Get(headerGitHubSignature)
		}
		return v.verifyHexDigest(sig, "", secret, body)
	default:
		return v.verifyHexDigest(header.Get(headerGitHubSignature), "sha256=", secret, body)
	}
}

// verifyHexDigest checks a hex-encoded HMAC-SHA256 digest of the raw body.
func (v *Verifier) verifyHexDigest(signature, prefix, secret string, body []byte) error {
	if signature == "" {
		return fmt.Errorf("%w: missing signature header", ErrUnauthorized)
	}
	if prefix != "" {
		if !strings.HasPrefix(signature, prefix) {
			return fmt.Errorf("%w: malformed signature header", ErrUnauthorized)
		}
		signature = strings.TrimPrefix(signature, prefix)
	} else {
		// Tolerate an explicit scheme prefix even when none is expected.
		signature = strings.TrimPrefix(signature, "sha256=")
	}

	if !hmac.Equal([]byte(signature), []byte(hmacHex(secret, body))) {
		return fmt.Errorf("%w: signature mismatch", ErrUnauthorized)
	}
	return nil
}

// verifySlack checks the v0 signing scheme: HMAC-SHA256 over
// "v0:<timestamp>:<body>", with the timestamp bounded to the replay window.
func (v *Verifier) verifySlack(header http.Header, secret string, body []byte) error {
	signature := header.Get(headerSlackSignature)
	if signature == "" {
		return fmt.Errorf("%w: missing signature header", ErrUnauthorized)
	}
	if !strings.HasPrefix(signature, "v0=") {
		return fmt.Errorf("%w: malformed signature header", ErrUnauthorized)
	}

	tsHeader := header.Get(headerSlackTimestamp)
	ts, err := strconv.ParseInt(tsHeader, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid request timestamp", ErrUnauthorized)
	}
	skew := math.Abs(v.now().Sub(time.Unix(ts, 0)).Seconds())
	if skew > slackReplayWindow.Seconds() {
		return fmt.Errorf("%w: request timestamp outside replay window", ErrUnauthorized)
	}

	base := fmt.Sprintf("v0:%s:%s", tsHeader, body)
	expected := "v0=" + hmacHex(secret, []byte(base))
	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return fmt.Errorf("%w: signature mismatch", ErrUnauthorized)
	}
	return nil
}

func hmacHex(secret string, data []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}
