package apiclient

import (
	"context"
	"strconv"

	"github.com/noah-isme/unigov-client/internal/models"
)

func (c *Client) GetConversations(ctx context.Context) ([]models.Conversation, error) {
	var out []models.Conversation
	if err := c.call(ctx, epGetConversations, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetConversation returns the message history with userID, oldest first.
func (c *Client) GetConversation(ctx context.Context, userID int64) ([]models.Message, error) {
	var out []models.Message
	if err := c.call(ctx, epGetConversation, []string{strconv.FormatInt(userID, 10)}, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, req models.SendMessageRequest) (*models.Message, error) {
	var out models.Message
	if err := c.call(ctx, epSendMessage, nil, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MarkConversationRead(ctx context.Context, userID int64) error {
	return c.call(ctx, epMarkConversationRead, []string{strconv.FormatInt(userID, 10)}, nil, nil)
}

func (c *Client) DeleteMessage(ctx context.Context, id int64) error {
	return c.call(ctx, epDeleteMessage, []string{strconv.FormatInt(id, 10)}, nil, nil)
}

func (c *Client) GetUnreadCount(ctx context.Context) (int64, error) {
	var out models.UnreadCount
	if err := c.call(ctx, epGetUnreadCount, nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}
