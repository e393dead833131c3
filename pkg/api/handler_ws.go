package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
)

// wsHandler serves GET /ws/:session_id: upgrades the connection and hands it
// to the ConnectionManager, which blocks until the socket closes. Clients
// subscribe to task and session channels over the socket itself.
func (s *Server) wsHandler(c *gin.Context) {
	if s.deps.ConnManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "WebSocket not available"})
		return
	}

	sessionID := c.Param("session_id")
	if _, _, err := s.deps.Sessions.GetOrCreateSession(c.Request.Context(), models.CreateSessionRequest{ID: sessionID}); err != nil {
		mapServiceError(c, err)
		return
	}

	opts := &websocket.AcceptOptions{}
	if patterns := s.deps.Config.System.AllowedWSOrigins; len(patterns) > 0 {
		opts.OriginPatterns = patterns
	} else {
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		return
	}

	s.deps.ConnManager.HandleConnection(c.Request.Context(), conn)

	if err := s.deps.Sessions.MarkDisconnected(context.Background(), sessionID); err != nil {
		slog.Debug("Failed to mark session disconnected", "session_id", sessionID, "error", err)
	}
}
