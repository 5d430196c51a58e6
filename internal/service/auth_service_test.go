package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/session"
)

func TestAuthLoginPersistsSession(t *testing.T) {
	store := session.NewMemoryStorage()
	api := &fakeAPI{session: &models.Session{Username: "admin", Role: models.RoleAdmin, Token: "abc"}}
	svc := NewAuthService(api, store, nil, nil)

	sess, err := svc.Login(context.Background(), " admin ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, "abc", session.Token(context.Background(), store))

	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, current.Role)
}

func TestAuthLoginFailureKeepsStoreEmpty(t *testing.T) {
	store := session.NewMemoryStorage()
	api := &fakeAPI{errs: map[string]error{
		"Login": appErrors.NewStatusError(http.MethodPost, "http://localhost:8081/api/auth/signin", http.StatusUnauthorized, nil),
	}}
	svc := NewAuthService(api, store, nil, nil)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, appErrors.StatusOf(err))

	_, err = svc.Login(context.Background(), "", "")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 1, api.called("Login"))

	_, err = svc.Current(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrSessionMissing))
}

func TestAuthSetSessionAndClear(t *testing.T) {
	store := session.NewMemoryStorage()
	svc := NewAuthService(&fakeAPI{}, store, nil, nil)

	err := svc.SetSession(context.Background(), &models.Session{Username: "ama"})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	require.NoError(t, svc.SetSession(context.Background(), &models.Session{Username: "ama", Token: "t"}))
	require.NoError(t, svc.Clear(context.Background()))
	require.NoError(t, svc.Clear(context.Background()))
	assert.Equal(t, "", session.Token(context.Background(), store))
}

func TestAuthDescribe(t *testing.T) {
	svc := NewAuthService(&fakeAPI{}, session.NewMemoryStorage(), nil, nil)
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}).SignedString([]byte("unknown-to-the-client"))
	require.NoError(t, err)

	info, err := svc.Describe(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", info.Subject)
	assert.True(t, info.Expired)
	assert.True(t, info.ExpiresAt.Equal(now.Add(-time.Hour)))

	_, err = svc.Describe("not-a-token")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
