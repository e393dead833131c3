package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/webhook"
)

const maxWebhookBody = 1 << 20 // 1 MiB

func (s *Server) listWebhookConfigs(c *gin.Context) {
	includeDisabled := c.Query("include_disabled") == "true"
	configs, err := s.deps.Webhooks.ListWebhookConfigs(c.Request.Context(), includeDisabled)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"webhooks": configs})
}

func (s *Server) createWebhookConfig(c *gin.Context) {
	var req models.CreateWebhookConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := s.deps.Webhooks.CreateWebhookConfig(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cfg)
}

func (s *Server) getWebhookConfig(c *gin.Context) {
	cfg, err := s.deps.Webhooks.GetWebhookConfig(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *Server) updateWebhookConfig(c *gin.Context) {
	var req models.UpdateWebhookConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg, err := s.deps.Webhooks.UpdateWebhookConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *Server) deleteWebhookConfig(c *gin.Context) {
	if err := s.deps.Webhooks.DeleteWebhookConfig(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) addWebhookCommand(c *gin.Context) {
	var req models.CreateWebhookCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd, err := s.deps.Webhooks.AddCommand(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cmd)
}

func (s *Server) updateWebhookCommand(c *gin.Context) {
	var req models.UpdateWebhookCommandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd, err := s.deps.Webhooks.UpdateCommand(c.Request.Context(), c.Param("id"), c.Param("cmd"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cmd)
}

func (s *Server) deleteWebhookCommand(c *gin.Context) {
	if err := s.deps.Webhooks.DeleteCommand(c.Request.Context(), c.Param("id"), c.Param("cmd")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listWebhookEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	events, err := s.deps.WebhookEvents.ListEvents(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// webhookStatus reports every reachable ingress endpoint: the built-in
// provider handlers plus enabled dynamic configs, with the public URL each
// answers on.
func (s *Server) webhookStatus(c *gin.Context) {
	base := s.deps.Config.System.PublicDomain

	type endpoint struct {
		Name              string `json:"name"`
		Provider          string `json:"provider"`
		Source            string `json:"source"`
		URL               string `json:"url"`
		RequiresSignature bool   `json:"requires_signature"`
		SecretConfigured  bool   `json:"secret_configured"`
	}

	var endpoints []endpoint
	registry := s.deps.Config.Webhooks
	for _, provider := range registry.Providers() {
		def := registry.Get(provider)
		endpoints = append(endpoints, endpoint{
			Name:              def.Name,
			Provider:          def.Provider,
			Source:            string(def.Source),
			URL:               base + "/webhooks/" + def.Provider,
			RequiresSignature: def.RequiresSignature,
			SecretConfigured:  def.SecretEnv == "" || s.secretPresent(def.SecretEnv),
		})
	}

	dynamic, err := s.deps.Webhooks.ListWebhookConfigs(c.Request.Context(), false)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	for _, cfg := range dynamic {
		endpoints = append(endpoints, endpoint{
			Name:              cfg.Name,
			Provider:          cfg.Provider,
			Source:            "dynamic",
			URL:               base + "/webhooks/" + cfg.Provider + "/" + cfg.Path,
			RequiresSignature: cfg.RequiresSignature,
			SecretConfigured:  cfg.SecretEnv == nil || s.secretPresent(*cfg.SecretEnv),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"public_domain": base,
		"endpoints":     endpoints,
	})
}

func (s *Server) secretPresent(envName string) bool {
	return webhook.EnvSecrets(envName) != ""
}

// webhookIngress serves POST /webhooks/:provider[/:path]: the hot path for
// provider deliveries. Verification failures return before any audit row is
// written.
func (s *Server) webhookIngress(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
		return
	}

	result, err := s.deps.Engine.HandleRequest(
		c.Request.Context(),
		c.Param("provider"),
		c.Param("path"),
		c.Request.Header,
		body,
	)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if result.ResponseBody != nil {
		c.JSON(http.StatusOK, result.ResponseBody)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "accepted",
		"event_id": result.EventID,
		"task_ids": result.TaskIDs,
	})
}
