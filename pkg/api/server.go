// Package api exposes the HTTP surface: the admin/chat API under /api, the
// webhook ingress under /webhooks, and the WebSocket endpoint under /ws.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/credentials"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/webhook"
)

// Deps bundles everything the handlers reach for.
type Deps struct {
	Config        *config.Config
	DB            *database.Client
	Tasks         *services.TaskService
	Conversations *services.ConversationService
	Sessions      *services.SessionService
	Webhooks      *services.WebhookService
	WebhookEvents *services.WebhookEventService
	Analytics     *services.AnalyticsService
	Queue         *queue.Queue
	Pool          *queue.WorkerPool
	Publisher     *events.TaskPublisher
	ConnManager   *events.ConnectionManager
	Engine        *webhook.Engine
	Credentials   *credentials.Store
}

// Server hosts the HTTP API.
type Server struct {
	deps Deps
}

// NewServer creates a Server.
func NewServer(deps Deps) *Server {
	return &Server{deps: deps}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(), securityHeaders())

	api := router.Group("/api")
	{
		api.GET("/health", s.health)

		api.POST("/chat", s.postChat)

		api.GET("/tasks/table", s.listTasks)
		api.GET("/tasks/:id", s.getTask)
		api.GET("/tasks/:id/output", s.getTaskOutput)
		api.POST("/tasks/:id/cancel", s.cancelTask)

		api.GET("/conversations", s.listConversations)
		api.POST("/conversations", s.createConversation)
		api.GET("/conversations/:id", s.getConversation)
		api.PUT("/conversations/:id", s.updateConversation)
		api.DELETE("/conversations/:id", s.archiveConversation)
		api.GET("/conversations/:id/messages", s.listMessages)
		api.POST("/conversations/:id/messages", s.appendMessage)
		api.GET("/conversations/:id/context", s.getConversationContext)
		api.POST("/conversations/:id/clear", s.clearConversation)

		api.GET("/webhooks", s.listWebhookConfigs)
		api.POST("/webhooks", s.createWebhookConfig)
		api.GET("/webhooks/status", s.webhookStatus)
		api.GET("/webhooks/:id", s.getWebhookConfig)
		api.PUT("/webhooks/:id", s.updateWebhookConfig)
		api.DELETE("/webhooks/:id", s.deleteWebhookConfig)
		api.POST("/webhooks/:id/commands", s.addWebhookCommand)
		api.PUT("/webhooks/:id/commands/:cmd", s.updateWebhookCommand)
		api.DELETE("/webhooks/:id/commands/:cmd", s.deleteWebhookCommand)
		api.GET("/webhooks/:id/events", s.listWebhookEvents)

		api.GET("/credentials/status", s.credentialsStatus)
		api.POST("/credentials/upload", s.uploadCredentials)

		api.GET("/analytics/summary", s.analyticsSummary)
		api.GET("/analytics/costs/daily", s.analyticsDailyCosts)
		api.GET("/analytics/costs/by-subagent", s.analyticsByAgent)
	}

	router.POST("/webhooks/:provider", s.webhookIngress)
	router.POST("/webhooks/:provider/:path", s.webhookIngress)

	router.GET("/ws/:session_id", s.wsHandler)

	return router
}

// HTTPServer wraps the router in an http.Server with sane timeouts. The
// WebSocket endpoint needs an unset WriteTimeout; per-message deadlines are
// enforced by the connection manager instead.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
