package apiclient

import (
	"context"

	"github.com/noah-isme/unigov-client/internal/models"
)

func (c *Client) GetEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.call(ctx, epGetEvents, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUpcomingEvents returns events starting after now, soonest first.
func (c *Client) GetUpcomingEvents(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	if err := c.call(ctx, epGetUpcomingEvents, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEvent(ctx context.Context, req models.CreateEventRequest) (*models.Event, error) {
	var out models.Event
	if err := c.call(ctx, epCreateEvent, nil, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
