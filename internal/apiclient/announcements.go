package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/noah-isme/unigov-client/internal/models"
)

func (c *Client) GetAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var out []models.Announcement
	if err := c.call(ctx, epGetAnnouncements, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAnnouncement always posts multipart/form-data to /announcements.
// Department and year lists travel as JSON array strings.
func (c *Client) CreateAnnouncement(ctx context.Context, form models.AnnouncementForm) (*models.Announcement, error) {
	in, err := announcementBody(form)
	if err != nil {
		return nil, err
	}
	var out models.Announcement
	if err := c.call(ctx, epCreateAnnouncement, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func announcementBody(form models.AnnouncementForm) (multipartBody, error) {
	departments, err := jsonList(form.Departments)
	if err != nil {
		return multipartBody{}, fmt.Errorf("encode departments: %w", err)
	}
	years, err := jsonList(form.Years)
	if err != nil {
		return multipartBody{}, fmt.Errorf("encode years: %w", err)
	}
	in := multipartBody{
		fields: []formField{
			{"title", form.Title},
			{"content", form.Content},
			{"priority", string(form.Priority())},
			{"audience", form.Audience},
			{"departments", departments},
			{"years", years},
			{"allowComments", strconv.FormatBool(form.AllowComments)},
			{"pushNotification", strconv.FormatBool(form.PushNotification)},
		},
	}
	if form.File != nil {
		in.files = []filePart{{field: "file", attachment: form.File}}
	}
	return in, nil
}

func jsonList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
