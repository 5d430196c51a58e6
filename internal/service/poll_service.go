package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

type pollAPI interface {
	GetPolls(ctx context.Context) ([]models.Poll, error)
	CreatePoll(ctx context.Context, req models.CreatePollRequest) (*models.Poll, error)
	Vote(ctx context.Context, optionID int64) (*models.Poll, error)
}

// PollService backs the consultation pages.
type PollService struct {
	api       pollAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPollService constructs the service.
func NewPollService(api pollAPI, validate *validator.Validate, logger *zap.Logger) *PollService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PollService{api: api, validator: validate, logger: logger}
}

// Load fetches all polls.
func (s *PollService) Load(ctx context.Context) View[[]models.Poll] {
	polls, err := s.api.GetPolls(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch polls", zap.Error(err))
		return loaded([]models.Poll{}, err)
	}
	return loaded(polls, nil)
}

// Create drops blank options and requires at least two remaining.
func (s *PollService) Create(ctx context.Context, req models.CreatePollRequest) (*models.Poll, error) {
	req.Question = strings.TrimSpace(req.Question)
	req.Description = strings.TrimSpace(req.Description)
	options := make([]string, 0, len(req.Options))
	for _, opt := range trimAll(req.Options) {
		if opt != "" {
			options = append(options, opt)
		}
	}
	req.Options = options
	if err := validateStruct(s.validator, req, "a question and at least two options are required"); err != nil {
		return nil, err
	}
	return s.api.CreatePoll(ctx, req)
}

// Vote casts a vote for the given option.
func (s *PollService) Vote(ctx context.Context, optionID int64) (*models.Poll, error) {
	if optionID <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid option id")
	}
	return s.api.Vote(ctx, optionID)
}
