package apiclient

import (
	"context"

	"github.com/noah-isme/unigov-client/internal/models"
)

// Login exchanges credentials for the session record issued by the backend.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.Session, error) {
	var out models.Session
	if err := c.call(ctx, epLogin, nil, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile sends PUT /users/profile.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var out models.User
	if err := c.call(ctx, epUpdateProfile, nil, jsonBody{req}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPhoto posts the photo as the multipart part `file` to /users/photo.
func (c *Client) UploadPhoto(ctx context.Context, photo *models.Attachment) (*models.User, error) {
	var out models.User
	in := multipartBody{files: []filePart{{field: "file", attachment: photo}}}
	if err := c.call(ctx, epUploadPhoto, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCurrentUser fetches /users/me.
func (c *Client) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.call(ctx, epGetCurrentUser, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
