package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/version"
)

// health serves GET /api/health: database reachability plus worker pool
// status. Returns 503 when the database is down so load balancers can
// drain the instance.
func (s *Server) health(c *gin.Context) {
	dbStatus, err := database.Health(c.Request.Context(), s.deps.DB.DB())
	status := http.StatusOK
	overall := "healthy"
	if err != nil {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	body := gin.H{
		"status":   overall,
		"version":  version.Full(),
		"database": dbStatus,
	}
	if s.deps.Pool != nil {
		body["queue"] = s.deps.Pool.Health()
	}
	if s.deps.ConnManager != nil {
		body["websocket_connections"] = s.deps.ConnManager.ActiveConnections()
	}
	c.JSON(status, body)
}
