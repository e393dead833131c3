package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	enttask "github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
)

// listTasks serves GET /api/tasks/table: the paginated, filterable task
// table.
func (s *Server) listTasks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 25
	}

	filters := models.TaskFilters{
		Status:         c.Query("status"),
		AgentName:      c.Query("subagent"),
		SessionID:      c.Query("session_id"),
		ConversationID: c.Query("conversation_id"),
		FlowID:         c.Query("flow_id"),
		Source:         c.Query("source"),
		SortBy:         c.Query("sort_by"),
		SortOrder:      c.Query("sort_order"),
		Limit:          pageSize,
		Offset:         (page - 1) * pageSize,
	}

	resp, err := s.deps.Tasks.ListTasks(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTask serves GET /api/tasks/:id.
func (s *Server) getTask(c *gin.Context) {
	task, err := s.deps.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// getTaskOutput serves GET /api/tasks/:id/output: the accumulated output
// stream plus the final result, for reloads after a catchup overflow.
func (s *Server) getTaskOutput(c *gin.Context) {
	task, err := s.deps.Tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"task_id":       task.ID,
		"status":        task.Status,
		"output_stream": task.OutputStream,
		"output":        task.OutputStream,
		"error_message": task.ErrorMessage,
	})
}

// cancelTask serves POST /api/tasks/:id/cancel. The store transition is the
// source of truth; the in-flight subprocess (when this instance runs it) is
// torn down afterwards via the pool's cancel registry.
func (s *Server) cancelTask(c *gin.Context) {
	taskID := c.Param("id")

	prior, err := s.deps.Tasks.CancelTask(c.Request.Context(), taskID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if prior == enttask.StatusRunning && s.deps.Pool != nil {
		s.deps.Pool.CancelTask(taskID)
	}

	task, err := s.deps.Tasks.GetTask(c.Request.Context(), taskID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if prior == enttask.StatusQueued {
		// Queued tasks never reach a worker, so the terminal event is
		// published here.
		s.deps.Publisher.PublishTerminal(task)
	}
	c.JSON(http.StatusOK, task)
}
