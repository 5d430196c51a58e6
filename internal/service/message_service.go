package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

type messageAPI interface {
	GetConversations(ctx context.Context) ([]models.Conversation, error)
	GetConversation(ctx context.Context, userID int64) ([]models.Message, error)
	SendMessage(ctx context.Context, req models.SendMessageRequest) (*models.Message, error)
	MarkConversationRead(ctx context.Context, userID int64) error
	DeleteMessage(ctx context.Context, id int64) error
	GetUnreadCount(ctx context.Context) (int64, error)
}

// MessageService backs the messaging page.
type MessageService struct {
	api       messageAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMessageService constructs the service.
func NewMessageService(api messageAPI, validate *validator.Validate, logger *zap.Logger) *MessageService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{api: api, validator: validate, logger: logger}
}

// Conversations lists the caller's conversations.
func (s *MessageService) Conversations(ctx context.Context) View[[]models.Conversation] {
	conversations, err := s.api.GetConversations(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch conversations", zap.Error(err))
		return loaded([]models.Conversation{}, err)
	}
	return loaded(conversations, nil)
}

// History loads the exchange with one user.
func (s *MessageService) History(ctx context.Context, userID int64) View[[]models.Message] {
	if userID <= 0 {
		return loaded([]models.Message{}, appErrors.Clone(appErrors.ErrValidation, "invalid user id"))
	}
	messages, err := s.api.GetConversation(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to fetch conversation", zap.Int64("user_id", userID), zap.Error(err))
		return loaded([]models.Message{}, err)
	}
	return loaded(messages, nil)
}

// Send posts a message; blank content is rejected locally.
func (s *MessageService) Send(ctx context.Context, req models.SendMessageRequest) (*models.Message, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := validateStruct(s.validator, req, "recipient and content are required"); err != nil {
		return nil, err
	}
	return s.api.SendMessage(ctx, req)
}

// MarkRead marks the conversation with userID as read.
func (s *MessageService) MarkRead(ctx context.Context, userID int64) error {
	return s.api.MarkConversationRead(ctx, userID)
}

// Delete removes a message.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteMessage(ctx, id)
}

// Unread returns the unread badge count. Failures read as zero.
func (s *MessageService) Unread(ctx context.Context) int64 {
	count, err := s.api.GetUnreadCount(ctx)
	if err != nil {
		s.logger.Debug("failed to fetch unread count", zap.Error(err))
		return 0
	}
	return count
}
