package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

type dashboardAPI interface {
	GetComplaints(ctx context.Context) ([]models.Complaint, error)
	GetPolls(ctx context.Context) ([]models.Poll, error)
	GetAnnouncements(ctx context.Context) ([]models.Announcement, error)
	GetUpcomingEvents(ctx context.Context) ([]models.Event, error)
}

// Dashboard section names used as keys of DashboardSummary.Errors.
const (
	SectionComplaints    = "complaints"
	SectionPolls         = "polls"
	SectionAnnouncements = "announcements"
	SectionEvents        = "events"
)

// DashboardService aggregates the administration analytics view.
type DashboardService struct {
	api    dashboardAPI
	logger *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(api dashboardAPI, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{api: api, logger: logger}
}

// Summary fetches every section concurrently. A failing section stays empty
// and is reported in Errors; the others still load.
func (s *DashboardService) Summary(ctx context.Context, sess *models.Session) (*models.DashboardSummary, error) {
	if sess == nil {
		return nil, appErrors.ErrSessionMissing
	}
	if sess.HasRole(models.RoleStudent) {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "the dashboard is reserved to administration and delegates")
	}

	summary := &models.DashboardSummary{
		ComplaintsByStatus: map[models.ComplaintStatus]int{
			models.ComplaintStatusPending:    0,
			models.ComplaintStatusInProgress: 0,
			models.ComplaintStatusResolved:   0,
		},
		ComplaintsByPriority: map[string]int{},
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	fail := func(section string, err error) {
		s.logger.Warn("dashboard section failed", zap.String("section", section), zap.Error(err))
		mu.Lock()
		defer mu.Unlock()
		if summary.Errors == nil {
			summary.Errors = make(map[string]string)
		}
		summary.Errors[section] = err.Error()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		complaints, err := s.api.GetComplaints(ctx)
		if err != nil {
			fail(SectionComplaints, err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		summary.TotalComplaints = len(complaints)
		for _, c := range complaints {
			if c.IsActive() {
				summary.ActiveComplaints++
			}
			summary.ComplaintsByStatus[c.Status]++
			priority := c.Priority
			if priority == "" {
				priority = models.ComplaintPriorityLow
			}
			summary.ComplaintsByPriority[priority]++
		}
	}()
	go func() {
		defer wg.Done()
		polls, err := s.api.GetPolls(ctx)
		if err != nil {
			fail(SectionPolls, err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		for _, p := range polls {
			if p.Active {
				summary.ActivePolls++
			}
			summary.TotalVotes += p.TotalVotes()
		}
	}()
	go func() {
		defer wg.Done()
		announcements, err := s.api.GetAnnouncements(ctx)
		if err != nil {
			fail(SectionAnnouncements, err)
			return
		}
		mu.Lock()
		summary.Announcements = len(announcements)
		mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		events, err := s.api.GetUpcomingEvents(ctx)
		if err != nil {
			fail(SectionEvents, err)
			return
		}
		mu.Lock()
		summary.UpcomingEvents = len(events)
		mu.Unlock()
	}()
	wg.Wait()

	return summary, nil
}
