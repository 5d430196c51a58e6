package repository

import (
	"context"
	"sort"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

// Conversations groups userID's messages by participant, most recent first.
func (s *Store) Conversations(_ context.Context, userID int64) []models.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byPeer := make(map[int64]*models.Conversation)
	for _, m := range s.messages {
		var peer int64
		switch userID {
		case m.SenderID:
			peer = m.RecipientID
		case m.RecipientID:
			peer = m.SenderID
		default:
			continue
		}
		conv, ok := byPeer[peer]
		if !ok {
			conv = &models.Conversation{User: s.summaryLocked(peer)}
			byPeer[peer] = conv
		}
		if conv.LastMessage == nil || !m.Timestamp.Before(conv.LastMessage.Timestamp.Time) {
			msg := *m
			conv.LastMessage = &msg
		}
		if m.RecipientID == userID && !m.IsRead {
			conv.UnreadCount++
		}
	}
	out := make([]models.Conversation, 0, len(byPeer))
	for _, conv := range byPeer {
		out = append(out, *conv)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastMessage.Timestamp.After(out[j].LastMessage.Timestamp.Time)
	})
	return out
}

// Conversation returns the messages exchanged by userID and peerID, oldest first.
func (s *Store) Conversation(_ context.Context, userID, peerID int64) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Message, 0)
	for _, m := range s.messages {
		if (m.SenderID == userID && m.RecipientID == peerID) || (m.SenderID == peerID && m.RecipientID == userID) {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp.Time) })
	return out
}

// SendMessage stores a message from senderID.
func (s *Store) SendMessage(_ context.Context, senderID int64, req models.SendMessageRequest) (*models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userLocked(req.RecipientID) == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "recipient not found")
	}
	m := &models.Message{ID: s.id(), SenderID: senderID, RecipientID: req.RecipientID, Content: req.Content, Timestamp: models.NewTimestamp(s.now())}
	s.messages = append(s.messages, m)
	out := *m
	return &out, nil
}

// MarkConversationRead marks everything peerID sent to userID as read.
func (s *Store) MarkConversationRead(_ context.Context, userID, peerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.SenderID == peerID && m.RecipientID == userID {
			m.IsRead = true
		}
	}
}

// DeleteMessage removes a message sent by userID.
func (s *Store) DeleteMessage(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.messages {
		if m.ID != id {
			continue
		}
		if m.SenderID != userID {
			return appErrors.Clone(appErrors.ErrForbidden, "only the sender can delete a message")
		}
		s.messages = append(s.messages[:i], s.messages[i+1:]...)
		return nil
	}
	return appErrors.Clone(appErrors.ErrNotFound, "message not found")
}

// UnreadCount counts unread messages addressed to userID.
func (s *Store) UnreadCount(_ context.Context, userID int64) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, m := range s.messages {
		if m.RecipientID == userID && !m.IsRead {
			n++
		}
	}
	return n
}
