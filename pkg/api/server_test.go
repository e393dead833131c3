package api

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/credentials"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/outbound"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/webhook"
	testdb "github.com/droverhq/drover/test/database"
)

const testGitHubSecret = "gh-secret"

type apiFixture struct {
	server *Server
	router http.Handler
	client *ent.Client
	deps   Deps
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.NewTestClient(t)
	client := db.Client

	registry, err := config.NewWebhookRegistry(config.BuiltinWebhooks())
	require.NoError(t, err)

	cfg := &config.Config{
		System:    config.DefaultSystemConfig(),
		Queue:     config.DefaultQueueConfig(),
		Retention: config.DefaultRetentionConfig(),
		CLI:       config.DefaultCLIConfig(),
		Webhooks:  registry,
	}
	cfg.System.PublicDomain = "https://drover.test"

	hub := events.NewHub(events.DefaultRingSize)
	publisher := events.NewTaskPublisher(hub)
	q := queue.NewQueue(16)

	webhooks := services.NewWebhookService(client, registry)
	audit := services.NewWebhookEventService(client)
	tasks := services.NewTaskService(client)
	convs := services.NewConversationService(client)
	sessions := services.NewSessionService(client)

	engine := webhook.NewEngine(webhook.Deps{
		Webhooks:      webhooks,
		Audit:         audit,
		Tasks:         tasks,
		Conversations: convs,
		Sessions:      sessions,
		Queue:         q,
		Publisher:     publisher,
		Outbound:      outbound.NewDispatcher(outbound.Config{}),
	}, func(envName string) string {
		if envName == "GITHUB_WEBHOOK_SECRET" {
			return testGitHubSecret
		}
		return ""
	})

	deps := Deps{
		Config:        cfg,
		DB:            db,
		Tasks:         tasks,
		Conversations: convs,
		Sessions:      sessions,
		Webhooks:      webhooks,
		WebhookEvents: audit,
		Analytics:     services.NewAnalyticsService(client, db.DB()),
		Queue:         q,
		Publisher:     publisher,
		ConnManager:   events.NewConnectionManager(hub, 5*time.Second),
		Engine:        engine,
		Credentials:   credentials.NewStore(filepath.Join(t.TempDir(), "credentials.json")),
	}

	server := NewServer(deps)
	return &apiFixture{
		server: server,
		router: server.Router(),
		client: client,
		deps:   deps,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) doRaw(t *testing.T, method, path string, body []byte, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func signGitHub(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
