package models

// Message is a direct message between two users.
type Message struct {
	ID          int64     `json:"id"`
	SenderID    int64     `json:"senderId"`
	RecipientID int64     `json:"recipientId"`
	Content     string    `json:"content"`
	Timestamp   Timestamp `json:"timestamp"`
	IsRead      bool      `json:"isRead"`
}

// Conversation summarises the exchange with one participant.
type Conversation struct {
	User        UserSummary `json:"user"`
	LastMessage *Message    `json:"lastMessage,omitempty"`
	UnreadCount int64       `json:"unreadCount"`
}

// SendMessageRequest is the JSON body of POST /messages.
type SendMessageRequest struct {
	RecipientID int64  `json:"recipientId" validate:"required"`
	Content     string `json:"content" validate:"required"`
}

// UnreadCount is the body of GET /messages/unread-count.
type UnreadCount struct {
	Count int64 `json:"count"`
}
