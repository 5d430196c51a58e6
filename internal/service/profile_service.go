package service

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

type profileAPI interface {
	GetCurrentUser(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	UploadPhoto(ctx context.Context, photo *models.Attachment) (*models.User, error)
	UploadsURL(name string) string
}

// ProfileService backs the profile page.
type ProfileService struct {
	api       profileAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProfileService constructs the service.
func NewProfileService(api profileAPI, validate *validator.Validate, logger *zap.Logger) *ProfileService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{api: api, validator: validate, logger: logger}
}

// Me loads the signed-in user's profile.
func (s *ProfileService) Me(ctx context.Context) View[*models.User] {
	user, err := s.api.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch profile", zap.Error(err))
		return loaded[*models.User](nil, err)
	}
	return loaded(user, nil)
}

// Update saves profile fields.
func (s *ProfileService) Update(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Department = strings.TrimSpace(req.Department)
	req.Year = strings.TrimSpace(req.Year)
	if err := validateStruct(s.validator, req, "full name is required"); err != nil {
		return nil, err
	}
	return s.api.UpdateProfile(ctx, req)
}

// UploadPhoto sends the image at path as the new profile photo.
func (s *ProfileService) UploadPhoto(ctx context.Context, path string) (*models.User, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "photo file does not exist")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "photo file cannot be read")
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "photo file cannot be read")
	}
	if info.IsDir() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "photo path is a directory")
	}

	return s.api.UploadPhoto(ctx, &models.Attachment{Filename: filepath.Base(path), Content: f})
}

// PhotoURL resolves a stored profile photo to a fetchable URL. Empty stays empty.
func (s *ProfileService) PhotoURL(photo string) string {
	if photo == "" {
		return ""
	}
	return s.api.UploadsURL(photo)
}
