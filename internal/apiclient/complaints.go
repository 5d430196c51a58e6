package apiclient

import (
	"context"

	"github.com/noah-isme/unigov-client/internal/models"
)

func (c *Client) GetComplaints(ctx context.Context) ([]models.Complaint, error) {
	var out []models.Complaint
	if err := c.call(ctx, epGetComplaints, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMyComplaints lists the complaints filed by the signed-in student.
func (c *Client) GetMyComplaints(ctx context.Context) ([]models.Complaint, error) {
	var out []models.Complaint
	if err := c.call(ctx, epGetMyComplaints, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error) {
	var out models.Complaint
	if err := c.call(ctx, epGetComplaintByID, []string{id}, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateComplaint(ctx context.Context, req models.CreateComplaintRequest) (*models.Complaint, error) {
	var out models.Complaint
	if err := c.call(ctx, epCreateComplaint, nil, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateComplaintStatus(ctx context.Context, id string, req models.UpdateComplaintStatusRequest) (*models.Complaint, error) {
	var out models.Complaint
	if err := c.call(ctx, epUpdateComplaintStatus, []string{id}, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteComplaint(ctx context.Context, id string) error {
	return c.call(ctx, epDeleteComplaint, []string{id}, nil, nil)
}
