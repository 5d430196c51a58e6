package repository

import (
	"context"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

// ListPolls returns copies of every poll. Polls past their end date read as inactive.
func (s *Store) ListPolls(_ context.Context) []models.Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := s.now()
	out := make([]models.Poll, 0, len(s.polls))
	for _, p := range s.polls {
		poll := copyPoll(p)
		if poll.EndDate != nil && poll.EndDate.Before(now) {
			poll.Active = false
		}
		out = append(out, poll)
	}
	return out
}

// CreatePoll stores a poll with zeroed vote counts.
func (s *Store) CreatePoll(_ context.Context, req models.CreatePollRequest) models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &models.Poll{ID: s.id(), Question: req.Question, Description: req.Description, EndDate: req.EndDate, Active: true}
	for _, text := range req.Options {
		p.Options = append(p.Options, models.PollOption{ID: s.id(), Text: text})
	}
	s.polls = append(s.polls, p)
	return copyPoll(p)
}

// Vote counts one vote per user and poll for the given option.
func (s *Store) Vote(_ context.Context, optionID, voterID int64) (*models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.polls {
		for i := range p.Options {
			if p.Options[i].ID != optionID {
				continue
			}
			if !p.Active || (p.EndDate != nil && p.EndDate.Before(s.now())) {
				return nil, appErrors.Clone(appErrors.ErrConflict, "poll is closed")
			}
			voters := s.votes[p.ID]
			if voters == nil {
				voters = make(map[int64]struct{})
				s.votes[p.ID] = voters
			}
			if _, voted := voters[voterID]; voted {
				return nil, appErrors.Clone(appErrors.ErrConflict, "already voted")
			}
			voters[voterID] = struct{}{}
			p.Options[i].Votes++
			out := copyPoll(p)
			return &out, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "poll option not found")
}

func copyPoll(p *models.Poll) models.Poll {
	out := *p
	out.Options = append([]models.PollOption(nil), p.Options...)
	return out
}
