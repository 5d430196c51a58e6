package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
)

type announcementAPI interface {
	GetAnnouncements(ctx context.Context) ([]models.Announcement, error)
	CreateAnnouncement(ctx context.Context, form models.AnnouncementForm) (*models.Announcement, error)
}

// AnnouncementService backs the news feed and the publishing form.
type AnnouncementService struct {
	api       announcementAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs the service.
func NewAnnouncementService(api announcementAPI, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{api: api, validator: validate, logger: logger}
}

// Load fetches the feed.
func (s *AnnouncementService) Load(ctx context.Context) View[[]models.Announcement] {
	items, err := s.api.GetAnnouncements(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch announcements", zap.Error(err))
		return loaded([]models.Announcement{}, err)
	}
	return loaded(items, nil)
}

// Publish checks the required fields and only then submits the form.
func (s *AnnouncementService) Publish(ctx context.Context, form models.AnnouncementForm) (*models.Announcement, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.Content = strings.TrimSpace(form.Content)
	form.Audience = strings.ToLower(strings.TrimSpace(form.Audience))
	if form.Audience == "" {
		form.Audience = models.AudienceAll
	}
	form.Departments = trimAll(form.Departments)
	form.Years = trimAll(form.Years)

	if err := validateStruct(s.validator, form, "title and content are required"); err != nil {
		return nil, err
	}

	created, err := s.api.CreateAnnouncement(ctx, form)
	if err != nil {
		s.logger.Error("failed to publish announcement", zap.String("title", form.Title), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// WordCount counts whitespace-separated words, as the editor footer shows.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
