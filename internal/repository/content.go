package repository

import (
	"context"
	"sort"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

// ListEvents returns every event ordered by start time.
func (s *Store) ListEvents(_ context.Context) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := append([]models.Event(nil), s.events...)
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime.Time) })
	return out
}

// UpcomingEvents returns events starting from now on.
func (s *Store) UpcomingEvents(ctx context.Context) []models.Event {
	now := s.now()
	all := s.ListEvents(ctx)
	out := make([]models.Event, 0, len(all))
	for _, e := range all {
		if !e.StartTime.Before(now) {
			out = append(out, e)
		}
	}
	return out
}

// CreateEvent stores a new event.
func (s *Store) CreateEvent(_ context.Context, req models.CreateEventRequest) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := models.Event{
		ID:          s.id(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
	}
	s.events = append(s.events, e)
	return e
}

// ListAnnouncements returns the feed, newest first.
func (s *Store) ListAnnouncements(_ context.Context) []models.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Announcement, 0, len(s.announcements))
	for i := len(s.announcements) - 1; i >= 0; i-- {
		out = append(out, s.announcements[i])
	}
	return out
}

// CreateAnnouncement stores an announcement and stamps its id and date.
func (s *Store) CreateAnnouncement(_ context.Context, a models.Announcement) models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.id()
	a.Date = s.now().Format("2006-01-02")
	s.announcements = append(s.announcements, a)
	return a
}

// ListDecisions returns every decision.
func (s *Store) ListDecisions(_ context.Context) []models.Decision {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Decision{}, s.decisions...)
}

// FindDecision returns one decision.
func (s *Store) FindDecision(_ context.Context, id int64) (*models.Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.decisions {
		if d.ID == id {
			out := d
			return &out, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "decision not found")
}

// CreateDecision stores a decision.
func (s *Store) CreateDecision(_ context.Context, req models.DecisionRequest) models.Decision {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := models.Decision{ID: s.id(), Title: req.Title, Content: req.Content, Category: req.Category, Status: req.Status, CreatedAt: models.NewTimestamp(s.now())}
	s.decisions = append(s.decisions, d)
	return d
}

// UpdateDecision replaces a decision's fields.
func (s *Store) UpdateDecision(_ context.Context, id int64, req models.DecisionRequest) (*models.Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.decisions {
		if s.decisions[i].ID == id {
			s.decisions[i].Title = req.Title
			s.decisions[i].Content = req.Content
			s.decisions[i].Category = req.Category
			s.decisions[i].Status = req.Status
			out := s.decisions[i]
			return &out, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "decision not found")
}

// DeleteDecision removes a decision.
func (s *Store) DeleteDecision(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.decisions {
		if s.decisions[i].ID == id {
			s.decisions = append(s.decisions[:i], s.decisions[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "decision not found")
}
