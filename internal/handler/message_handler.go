package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/response"
)

type messageStore interface {
	Conversations(ctx context.Context, userID int64) []models.Conversation
	Conversation(ctx context.Context, userID, peerID int64) []models.Message
	SendMessage(ctx context.Context, senderID int64, req models.SendMessageRequest) (*models.Message, error)
	MarkConversationRead(ctx context.Context, userID, peerID int64)
	DeleteMessage(ctx context.Context, userID, id int64) error
	UnreadCount(ctx context.Context, userID int64) int64
}

// MessageHandler serves direct messages for the signed-in user.
type MessageHandler struct {
	store     messageStore
	validator *validator.Validate
}

// NewMessageHandler constructs the handler.
func NewMessageHandler(store messageStore, validate *validator.Validate) *MessageHandler {
	return &MessageHandler{store: store, validator: validate}
}

// Conversations handles GET /messages/conversations.
func (h *MessageHandler) Conversations(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.store.Conversations(c.Request.Context(), claimsFromContext(c).UserID))
}

// Conversation handles GET /messages/conversation/:userId.
func (h *MessageHandler) Conversation(c *gin.Context) {
	peerID, err := int64Param(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.store.Conversation(c.Request.Context(), claimsFromContext(c).UserID, peerID))
}

// Send handles POST /messages.
func (h *MessageHandler) Send(c *gin.Context) {
	var req models.SendMessageRequest
	if err := bindJSON(c, h.validator, &req, "recipient and content are required"); err != nil {
		response.Error(c, err)
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "recipient and content are required"))
		return
	}
	msg, err := h.store.SendMessage(c.Request.Context(), claimsFromContext(c).UserID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, msg)
}

// MarkRead handles PUT /messages/conversation/:userId/read.
func (h *MessageHandler) MarkRead(c *gin.Context) {
	peerID, err := int64Param(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.store.MarkConversationRead(c.Request.Context(), claimsFromContext(c).UserID, peerID)
	response.NoContent(c)
}

// Delete handles DELETE /messages/:id.
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.store.DeleteMessage(c.Request.Context(), claimsFromContext(c).UserID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// UnreadCount handles GET /messages/unread-count.
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	response.JSON(c, http.StatusOK, models.UnreadCount{Count: h.store.UnreadCount(c.Request.Context(), claimsFromContext(c).UserID)})
}
