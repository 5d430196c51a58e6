package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
)

type decisionAPI interface {
	GetDecisions(ctx context.Context) ([]models.Decision, error)
	GetDecision(ctx context.Context, id int64) (*models.Decision, error)
	CreateDecision(ctx context.Context, req models.DecisionRequest) (*models.Decision, error)
	UpdateDecision(ctx context.Context, id int64, req models.DecisionRequest) (*models.Decision, error)
	DeleteDecision(ctx context.Context, id int64) error
}

// DecisionService manages council decisions.
type DecisionService struct {
	api       decisionAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDecisionService constructs the service.
func NewDecisionService(api decisionAPI, validate *validator.Validate, logger *zap.Logger) *DecisionService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DecisionService{api: api, validator: validate, logger: logger}
}

// List fetches every decision.
func (s *DecisionService) List(ctx context.Context) View[[]models.Decision] {
	decisions, err := s.api.GetDecisions(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch decisions", zap.Error(err))
		return loaded([]models.Decision{}, err)
	}
	return loaded(decisions, nil)
}

// Get fetches one decision.
func (s *DecisionService) Get(ctx context.Context, id int64) (*models.Decision, error) {
	return s.api.GetDecision(ctx, id)
}

// Create validates then posts a decision.
func (s *DecisionService) Create(ctx context.Context, req models.DecisionRequest) (*models.Decision, error) {
	req = normalizeDecision(req)
	if err := validateStruct(s.validator, req, "title and content are required"); err != nil {
		return nil, err
	}
	return s.api.CreateDecision(ctx, req)
}

// Update validates then replaces a decision.
func (s *DecisionService) Update(ctx context.Context, id int64, req models.DecisionRequest) (*models.Decision, error) {
	req = normalizeDecision(req)
	if err := validateStruct(s.validator, req, "title and content are required"); err != nil {
		return nil, err
	}
	return s.api.UpdateDecision(ctx, id, req)
}

// Delete removes a decision.
func (s *DecisionService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteDecision(ctx, id)
}

func normalizeDecision(req models.DecisionRequest) models.DecisionRequest {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	req.Category = strings.TrimSpace(req.Category)
	req.Status = strings.ToUpper(strings.TrimSpace(req.Status))
	return req
}
