package models

// Decision is an official council decision.
type Decision struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category,omitempty"`
	Status    string    `json:"status,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// DecisionRequest is the JSON body for creating or updating a decision.
type DecisionRequest struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
}
