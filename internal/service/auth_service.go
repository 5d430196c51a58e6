package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/session"
)

type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
}

// SessionInfo is what can be read from a bearer token without its signing key.
type SessionInfo struct {
	Subject   string    `json:"subject,omitempty"`
	IssuedAt  time.Time `json:"issuedAt,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
	Expired   bool      `json:"expired"`
}

// AuthService signs users in and manages the persisted session record.
type AuthService struct {
	api       authAPI
	store     session.Storage
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(api authAPI, store session.Storage, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{api: api, store: store, validator: validate, logger: logger, now: time.Now}
}

// Login exchanges credentials for a session and persists it.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	req := models.LoginRequest{Username: strings.TrimSpace(username), Password: password}
	if err := validateStruct(s.validator, req, "username and password are required"); err != nil {
		return nil, err
	}

	sess, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.SetSession(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("signed in", zap.String("username", sess.Username), zap.String("role", string(sess.Role)))
	return sess, nil
}

// SetSession writes a session record. The token is mandatory.
func (s *AuthService) SetSession(ctx context.Context, sess *models.Session) error {
	if sess == nil || strings.TrimSpace(sess.Token) == "" {
		return appErrors.Clone(appErrors.ErrValidation, "session token is required")
	}
	if err := session.Save(ctx, s.store, sess); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist session")
	}
	return nil
}

// Current returns the stored session.
func (s *AuthService) Current(ctx context.Context) (*models.Session, error) {
	sess, err := session.Load(ctx, s.store)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, appErrors.ErrSessionMissing
		}
		return nil, appErrors.Wrap(err, appErrors.ErrSessionMissing.Code, appErrors.ErrSessionMissing.Status, "stored session is unreadable")
	}
	return sess, nil
}

// Clear signs out by removing the session record.
func (s *AuthService) Clear(ctx context.Context) error {
	if err := session.Clear(ctx, s.store); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear session")
	}
	return nil
}

// Describe decodes token claims without verifying the signature.
func (s *AuthService) Describe(token string) (*SessionInfo, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "token is not a JWT")
	}

	info := &SessionInfo{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
		info.Expired = !s.now().Before(info.ExpiresAt)
	}
	return info, nil
}
