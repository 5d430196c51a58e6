package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

func TestMessageSend(t *testing.T) {
	api := &fakeAPI{}
	svc := NewMessageService(api, nil, nil)

	_, err := svc.Send(context.Background(), models.SendMessageRequest{RecipientID: 2, Content: "   "})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	_, err = svc.Send(context.Background(), models.SendMessageRequest{Content: "Salut"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 0, api.total())

	msg, err := svc.Send(context.Background(), models.SendMessageRequest{RecipientID: 2, Content: " Salut "})
	require.NoError(t, err)
	assert.Equal(t, "Salut", msg.Content)
}

func TestMessageHistoryAndUnread(t *testing.T) {
	api := &fakeAPI{messages: []models.Message{{ID: 1}, {ID: 2}}, unread: 3}
	svc := NewMessageService(api, nil, nil)

	view := svc.History(context.Background(), 0)
	assert.True(t, errors.Is(view.Err, appErrors.ErrValidation))

	view = svc.History(context.Background(), 2)
	require.NoError(t, view.Err)
	assert.Len(t, view.Data, 2)

	assert.Equal(t, int64(3), svc.Unread(context.Background()))
	api.errs = map[string]error{"GetUnreadCount": io.ErrUnexpectedEOF}
	assert.Equal(t, int64(0), svc.Unread(context.Background()))
}

func TestMessageMarkReadAndDelete(t *testing.T) {
	api := &fakeAPI{}
	svc := NewMessageService(api, nil, nil)
	require.NoError(t, svc.MarkRead(context.Background(), 2))
	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, 1, api.called("MarkConversationRead"))
	assert.Equal(t, 1, api.called("DeleteMessage"))
}
