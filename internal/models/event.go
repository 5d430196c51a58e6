package models

// EventType classifies agenda entries.
type EventType string

const (
	EventTypeAcademic EventType = "ACADEMIC"
	EventTypeMeeting  EventType = "MEETING"
	EventTypeExam     EventType = "EXAM"
	EventTypeSocial   EventType = "SOCIAL"
)

// Event is an agenda entry.
type Event struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Type        EventType  `json:"type"`
	StartTime   Timestamp  `json:"startTime"`
	EndTime     *Timestamp `json:"endTime,omitempty"`
	Location    *string    `json:"location,omitempty"`
}

// CreateEventRequest is the JSON body of POST /events.
type CreateEventRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description,omitempty"`
	Type        EventType  `json:"type" validate:"required,oneof=ACADEMIC MEETING EXAM SOCIAL"`
	StartTime   Timestamp  `json:"startTime"`
	EndTime     *Timestamp `json:"endTime,omitempty"`
	Location    *string    `json:"location,omitempty"`
}
