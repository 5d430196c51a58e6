package models

import "io"

// AnnouncementPriority is the wire value of the priority toggle.
type AnnouncementPriority string

const (
	AnnouncementPriorityUrgent AnnouncementPriority = "URGENT"
	AnnouncementPriorityNormal AnnouncementPriority = "NORMAL"
)

// Announcement audiences offered by the publishing form.
const (
	AudienceAll        = "all"
	AudienceDepartment = "department"
	AudienceStaff      = "staff"
)

// Announcement is a news-feed entry.
type Announcement struct {
	ID               int64                `json:"id"`
	Title            string               `json:"title"`
	Content          string               `json:"content"`
	Date             string               `json:"date,omitempty"`
	Author           string               `json:"author,omitempty"`
	Priority         AnnouncementPriority `json:"priority,omitempty"`
	Audience         string               `json:"audience,omitempty"`
	Departments      []string             `json:"departments,omitempty"`
	Years            []string             `json:"years,omitempty"`
	AllowComments    bool                 `json:"allowComments"`
	PushNotification bool                 `json:"pushNotification"`
	AttachmentPath   string               `json:"attachmentPath,omitempty"`
}

// AnnouncementForm is the multipart creation payload.
type AnnouncementForm struct {
	Title            string `validate:"required"`
	Content          string `validate:"required"`
	Urgent           bool
	Audience         string `validate:"required,oneof=all department staff"`
	Departments      []string
	Years            []string
	AllowComments    bool
	PushNotification bool
	File             *Attachment
}

// Priority maps the urgent toggle onto its wire value.
func (f AnnouncementForm) Priority() AnnouncementPriority {
	if f.Urgent {
		return AnnouncementPriorityUrgent
	}
	return AnnouncementPriorityNormal
}

// Attachment is a file sent as a multipart part.
type Attachment struct {
	Filename string
	Content  io.Reader
}
