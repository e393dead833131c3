package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/flow"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
)

// chatEnqueueWait bounds how long chat submission blocks on a full queue
// before deferring delivery to the pool's stale-queued sweep.
const chatEnqueueWait = 2 * time.Second

// chatRequest is the POST /api/chat body. The session id travels in the
// query string so dashboards can reuse one fetch helper for all bodies.
type chatRequest struct {
	Message        string `json:"message" binding:"required"`
	ConversationID string `json:"conversation_id"`
	Agent          string `json:"agent"`
}

type chatResponse struct {
	TaskID         string `json:"task_id"`
	ConversationID string `json:"conversation_id"`
	FlowID         string `json:"flow_id"`
}

// postChat accepts an interactive chat message: it appends the user message,
// creates a task for the agent, and enqueues it.
func (s *Server) postChat(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id query parameter is required"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	agent := req.Agent
	if agent == "" {
		agent = "planning"
	}

	ctx := c.Request.Context()

	session, _, err := s.deps.Sessions.GetOrCreateSession(ctx, models.CreateSessionRequest{ID: sessionID})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Chat tasks carry the client-supplied conversation; a first message
	// opens a fresh conversation with a fresh flow.
	var conversationID, flowID string
	if req.ConversationID != "" {
		conv, err := s.deps.Conversations.GetConversation(ctx, req.ConversationID, false)
		if err != nil {
			mapServiceError(c, err)
			return
		}
		conversationID, flowID = conv.ID, conv.FlowID
	} else {
		flowID = flow.NewFlowID()
		conv, err := s.deps.Conversations.CreateConversation(ctx, models.CreateConversationRequest{
			Title:  firstLine(req.Message),
			FlowID: flowID,
		})
		if err != nil {
			mapServiceError(c, err)
			return
		}
		conversationID = conv.ID
	}

	if _, err := s.deps.Conversations.AppendMessage(ctx, models.AppendMessageRequest{
		ConversationID: conversationID,
		Role:           "user",
		Content:        req.Message,
	}); err != nil {
		mapServiceError(c, err)
		return
	}

	task, err := s.deps.Tasks.CreateTask(ctx, models.CreateTaskRequest{
		SessionID:      session.ID,
		ConversationID: conversationID,
		FlowID:         flowID,
		AgentName:      agent,
		AgentKind:      agent,
		Input:          req.Message,
		Source:         "chat",
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	s.deps.Publisher.PublishCreated(task)
	if err := s.deps.Queue.PushWait(task.ID, chatEnqueueWait); errors.Is(err, queue.ErrQueueFull) {
		// The task is durably queued; the pool's stale-queued sweep delivers
		// it when capacity frees up, so the request is still accepted.
		slog.Warn("Task queue full, chat task awaits sweep requeue", "task_id", task.ID)
	}

	c.JSON(http.StatusAccepted, chatResponse{
		TaskID:         task.ID,
		ConversationID: conversationID,
		FlowID:         flowID,
	})
}

// firstLine derives a conversation title from the opening message.
func firstLine(message string) string {
	const maxTitle = 80
	for i := 0; i < len(message); i++ {
		if message[i] == '\n' {
			message = message[:i]
			break
		}
	}
	if len(message) > maxTitle {
		message = message[:maxTitle]
	}
	return message
}
