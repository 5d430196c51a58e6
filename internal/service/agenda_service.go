package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

type agendaAPI interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	GetUpcomingEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error)
}

// AgendaService backs the agenda widget.
type AgendaService struct {
	api       agendaAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAgendaService constructs the service.
func NewAgendaService(api agendaAPI, validate *validator.Validate, logger *zap.Logger) *AgendaService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AgendaService{api: api, validator: validate, logger: logger}
}

// Load fetches upcoming events. On failure the view holds an empty list.
func (s *AgendaService) Load(ctx context.Context) View[[]models.Event] {
	events, err := s.api.GetUpcomingEvents(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch events", zap.Error(err))
		return loaded([]models.Event{}, err)
	}
	return loaded(events, nil)
}

// All fetches every event, past ones included.
func (s *AgendaService) All(ctx context.Context) ([]models.Event, error) {
	return s.api.GetEvents(ctx)
}

// Create validates the event locally before posting it.
func (s *AgendaService) Create(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Type = models.EventType(strings.ToUpper(strings.TrimSpace(string(req.Type))))
	if err := validateStruct(s.validator, req, "invalid event payload"); err != nil {
		return nil, err
	}
	if req.StartTime.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "event start time is required")
	}
	if req.EndTime != nil && req.EndTime.Before(req.StartTime.Time) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "event cannot end before it starts")
	}
	return s.api.CreateEvent(ctx, req)
}
