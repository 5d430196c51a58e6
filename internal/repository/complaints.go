package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

// ListComplaints returns every complaint.
func (s *Store) ListComplaints(_ context.Context) []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Complaint, 0, len(s.complaints))
	for _, rec := range s.complaints {
		out = append(out, rec.complaint)
	}
	return out
}

// ListComplaintsByOwner returns the complaints filed by ownerID.
func (s *Store) ListComplaintsByOwner(_ context.Context, ownerID int64) []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Complaint, 0)
	for _, rec := range s.complaints {
		if rec.ownerID == ownerID {
			out = append(out, rec.complaint)
		}
	}
	return out
}

// FindComplaint returns a complaint and the id of the user who filed it.
func (s *Store) FindComplaint(_ context.Context, id string) (*models.Complaint, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.complaints {
		if rec.complaint.ID == id {
			c := rec.complaint
			return &c, rec.ownerID, nil
		}
	}
	return nil, 0, appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
}

// CreateComplaint files a complaint for ownerID.
func (s *Store) CreateComplaint(_ context.Context, ownerID int64, req models.CreateComplaintRequest) (*models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := s.userLocked(ownerID)
	if owner == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.ComplaintPriorityMedium
	}
	rec := &complaintRecord{ownerID: ownerID, complaint: models.Complaint{
		ID:                fmt.Sprintf("CMP-%d", 1000+s.id()),
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Priority:          priority,
		Status:            models.ComplaintStatusPending,
		StudentName:       owner.user.FullName,
		StudentDepartment: owner.user.Department,
		CreatedAt:         models.NewTimestamp(s.now()),
	}}
	s.complaints = append(s.complaints, rec)
	c := rec.complaint
	return &c, nil
}

// UpdateComplaintStatus changes the status and, when given, the response.
func (s *Store) UpdateComplaintStatus(_ context.Context, id string, req models.UpdateComplaintStatusRequest) (*models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.complaints {
		if rec.complaint.ID == id {
			rec.complaint.Status = req.Status
			if req.Response != "" {
				rec.complaint.Response = req.Response
			}
			c := rec.complaint
			return &c, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
}

// DeleteComplaint removes a complaint.
func (s *Store) DeleteComplaint(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.complaints {
		if rec.complaint.ID == id {
			s.complaints = append(s.complaints[:i], s.complaints[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "complaint not found")
}
