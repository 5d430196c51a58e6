package models

// ComplaintStatus tracks complaint handling.
type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "PENDING"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
)

// Complaint priorities the UI distinguishes; anything else renders as low.
const (
	ComplaintPriorityUrgent = "URGENT"
	ComplaintPriorityHigh   = "HIGH"
	ComplaintPriorityMedium = "MEDIUM"
	ComplaintPriorityLow    = "LOW"
)

// Complaint is a student grievance.
type Complaint struct {
	ID                string          `json:"id"`
	Title             string          `json:"title"`
	Description       string          `json:"description"`
	Category          string          `json:"category"`
	Priority          string          `json:"priority"`
	Status            ComplaintStatus `json:"status"`
	StudentName       string          `json:"studentName,omitempty"`
	StudentDepartment string          `json:"studentDepartment,omitempty"`
	AttachmentPath    string          `json:"attachmentPath,omitempty"`
	Response          string          `json:"response,omitempty"`
	CreatedAt         Timestamp       `json:"createdAt"`
}

// IsActive reports whether the complaint still needs handling.
func (c Complaint) IsActive() bool {
	return c.Status != ComplaintStatusResolved
}

// CreateComplaintRequest is the JSON body of POST /complaints.
type CreateComplaintRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=URGENT HIGH MEDIUM LOW"`
}

// UpdateComplaintStatusRequest is the JSON body of PUT /complaints/{id}/status.
type UpdateComplaintStatusRequest struct {
	Status   ComplaintStatus `json:"status" validate:"required,oneof=PENDING IN_PROGRESS RESOLVED"`
	Response string          `json:"response,omitempty"`
}
