package apiclient

import (
	"context"
	"strconv"

	"github.com/noah-isme/unigov-client/internal/models"
)

func (c *Client) GetDecisions(ctx context.Context) ([]models.Decision, error) {
	var out []models.Decision
	if err := c.call(ctx, epGetDecisions, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetDecision(ctx context.Context, id int64) (*models.Decision, error) {
	var out models.Decision
	if err := c.call(ctx, epGetDecision, []string{strconv.FormatInt(id, 10)}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDecision(ctx context.Context, req models.DecisionRequest) (*models.Decision, error) {
	var out models.Decision
	if err := c.call(ctx, epCreateDecision, nil, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDecision(ctx context.Context, id int64, req models.DecisionRequest) (*models.Decision, error) {
	var out models.Decision
	if err := c.call(ctx, epUpdateDecision, []string{strconv.FormatInt(id, 10)}, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDecision(ctx context.Context, id int64) error {
	return c.call(ctx, epDeleteDecision, []string{strconv.FormatInt(id, 10)}, nil, nil)
}
