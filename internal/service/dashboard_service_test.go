package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
)

func dashboardFixture() *fakeAPI {
	return &fakeAPI{
		complaints: []models.Complaint{
			{ID: "1", Status: models.ComplaintStatusPending, Priority: models.ComplaintPriorityUrgent},
			{ID: "2", Status: models.ComplaintStatusInProgress, Priority: models.ComplaintPriorityHigh},
			{ID: "3", Status: models.ComplaintStatusResolved},
		},
		polls: []models.Poll{
			{ID: 1, Active: true, Options: []models.PollOption{{Votes: 4}, {Votes: 6}}},
			{ID: 2, Active: false, Options: []models.PollOption{{Votes: 2}}},
		},
		announcements: []models.Announcement{{ID: 1}, {ID: 2}},
		events:        []models.Event{{ID: 1}},
	}
}

func TestDashboardSummary(t *testing.T) {
	api := dashboardFixture()
	svc := NewDashboardService(api, nil)

	summary, err := svc.Summary(context.Background(), &models.Session{Role: models.RoleAdmin, Token: "t"})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalComplaints)
	assert.Equal(t, 2, summary.ActiveComplaints)
	assert.Equal(t, 1, summary.ComplaintsByStatus[models.ComplaintStatusResolved])
	assert.Equal(t, 1, summary.ComplaintsByPriority[models.ComplaintPriorityUrgent])
	assert.Equal(t, 1, summary.ComplaintsByPriority[models.ComplaintPriorityLow])
	assert.Equal(t, 1, summary.ActivePolls)
	assert.Equal(t, 12, summary.TotalVotes)
	assert.Equal(t, 2, summary.Announcements)
	assert.Equal(t, 1, summary.UpcomingEvents)
	assert.Empty(t, summary.Errors)
}

func TestDashboardRejectsStudents(t *testing.T) {
	api := dashboardFixture()
	svc := NewDashboardService(api, nil)

	_, err := svc.Summary(context.Background(), &models.Session{Role: models.RoleStudent, Token: "t"})
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))

	_, err = svc.Summary(context.Background(), nil)
	assert.True(t, errors.Is(err, appErrors.ErrSessionMissing))
	assert.Equal(t, 0, api.total())
}

func TestDashboardPartialFailure(t *testing.T) {
	api := dashboardFixture()
	api.errs = map[string]error{
		"GetPolls": appErrors.NewStatusError(http.MethodGet, "http://localhost:8081/api/polls", http.StatusBadGateway, nil),
	}
	svc := NewDashboardService(api, nil)

	summary, err := svc.Summary(context.Background(), &models.Session{Role: models.RoleDelegate, Token: "t"})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.ActivePolls)
	assert.Equal(t, 0, summary.TotalVotes)
	assert.Equal(t, 3, summary.TotalComplaints)
	assert.Equal(t, 2, summary.Announcements)
	require.Contains(t, summary.Errors, SectionPolls)
	assert.Contains(t, summary.Errors[SectionPolls], "502")
	assert.Len(t, summary.Errors, 1)
}
