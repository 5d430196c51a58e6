package apiclient

import (
	"context"
	"strconv"

	"github.com/noah-isme/unigov-client/internal/models"
)

func (c *Client) GetPolls(ctx context.Context) ([]models.Poll, error) {
	var out []models.Poll
	if err := c.call(ctx, epGetPolls, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePoll(ctx context.Context, req models.CreatePollRequest) (*models.Poll, error) {
	var out models.Poll
	if err := c.call(ctx, epCreatePoll, nil, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Vote casts a vote for an option; the path carries the option id, not the poll id.
func (c *Client) Vote(ctx context.Context, optionID int64) (*models.Poll, error) {
	var out models.Poll
	if err := c.call(ctx, epVote, []string{strconv.FormatInt(optionID, 10)}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
