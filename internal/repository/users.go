package repository

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

// Authenticate checks a username and password pair.
func (s *Store) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.users {
		if strings.EqualFold(rec.user.Username, username) {
			if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
				return nil, appErrors.ErrInvalidCredentials
			}
			u := rec.user
			return &u, nil
		}
	}
	return nil, appErrors.ErrInvalidCredentials
}

// FindUserByID returns a copy of the user.
func (s *Store) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec := s.userLocked(id)
	if rec == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	u := rec.user
	return &u, nil
}

// UpdateProfile applies editable profile fields.
func (s *Store) UpdateProfile(_ context.Context, id int64, req models.UpdateProfileRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.userLocked(id)
	if rec == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	rec.user.FullName = req.FullName
	if req.Email != "" {
		rec.user.Email = req.Email
	}
	if req.Department != "" {
		rec.user.Department = req.Department
	}
	if req.Year != "" {
		rec.user.Year = req.Year
	}
	u := rec.user
	return &u, nil
}

// SetProfilePhoto records the stored upload name and returns the previous one.
func (s *Store) SetProfilePhoto(_ context.Context, id int64, name string) (*models.User, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.userLocked(id)
	if rec == nil {
		return nil, "", appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	previous := rec.user.ProfilePhoto
	rec.user.ProfilePhoto = name
	u := rec.user
	return &u, previous, nil
}

func (s *Store) userLocked(id int64) *userRecord {
	for _, rec := range s.users {
		if rec.user.ID == id {
			return rec
		}
	}
	return nil
}

func (s *Store) summaryLocked(id int64) models.UserSummary {
	rec := s.userLocked(id)
	if rec == nil {
		return models.UserSummary{ID: id}
	}
	return models.UserSummary{ID: rec.user.ID, FullName: rec.user.FullName, Username: rec.user.Username, Role: rec.user.Role, ProfilePhoto: rec.user.ProfilePhoto}
}
