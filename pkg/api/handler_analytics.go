package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// analyticsSummary serves GET /api/analytics/summary: today's usage next to
// all-time totals. "Today" starts at local midnight.
func (s *Server) analyticsSummary(c *gin.Context) {
	ctx := c.Request.Context()

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.deps.Analytics.Summary(ctx, midnight)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	allTime, err := s.deps.Analytics.Summary(ctx, time.Time{})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today":    today,
		"all_time": allTime,
	})
}

func (s *Server) analyticsDailyCosts(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	costs, err := s.deps.Analytics.DailyCosts(c.Request.Context(), days)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_costs": costs})
}

func (s *Server) analyticsByAgent(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	since := time.Now().AddDate(0, 0, -days)

	usage, err := s.deps.Analytics.ByAgent(c.Request.Context(), since)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"by_subagent": usage})
}
