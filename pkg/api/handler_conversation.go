package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/flow"
	"github.com/droverhq/drover/pkg/models"
)

func (s *Server) listConversations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resp, err := s.deps.Conversations.ListConversations(c.Request.Context(), models.ConversationFilters{
		UserID:          c.Query("user_id"),
		FlowID:          c.Query("flow_id"),
		IncludeArchived: c.Query("include_archived") == "true",
		Limit:           limit,
		Offset:          offset,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) createConversation(c *gin.Context) {
	var body struct {
		Title  string `json:"title"`
		UserID string `json:"user_id"`
		FlowID string `json:"flow_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.FlowID == "" {
		body.FlowID = flow.NewFlowID()
	}

	conv, err := s.deps.Conversations.CreateConversation(c.Request.Context(), models.CreateConversationRequest{
		Title:  body.Title,
		UserID: body.UserID,
		FlowID: body.FlowID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

func (s *Server) getConversation(c *gin.Context) {
	withMessages := c.DefaultQuery("with_messages", "true") == "true"
	conv, err := s.deps.Conversations.GetConversation(c.Request.Context(), c.Param("id"), withMessages)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) updateConversation(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.deps.Conversations.UpdateTitle(c.Request.Context(), c.Param("id"), req.Title); err != nil {
		mapServiceError(c, err)
		return
	}
	conv, err := s.deps.Conversations.GetConversation(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// archiveConversation serves DELETE /api/conversations/:id. Conversations
// are archived, never hard-deleted; the message history backs flow context.
func (s *Server) archiveConversation(c *gin.Context) {
	if err := s.deps.Conversations.ArchiveConversation(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listMessages(c *gin.Context) {
	messages, err := s.deps.Conversations.ListMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (s *Server) appendMessage(c *gin.Context) {
	var body struct {
		Role    string `json:"role" binding:"required"`
		Content string `json:"content" binding:"required"`
		TaskID  string `json:"task_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := s.deps.Conversations.AppendMessage(c.Request.Context(), models.AppendMessageRequest{
		ConversationID: c.Param("id"),
		Role:           body.Role,
		Content:        body.Content,
		TaskID:         body.TaskID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// getConversationContext serves the last-N context window the executor
// itself uses, so clients can preview what the model will see.
func (s *Server) getConversationContext(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	messages, err := s.deps.Conversations.GetContext(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// clearConversation drops the message history but keeps aggregates.
func (s *Server) clearConversation(c *gin.Context) {
	removed, err := s.deps.Conversations.ClearConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed_messages": removed})
}
