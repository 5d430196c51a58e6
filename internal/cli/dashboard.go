package cli

import (
	"context"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/service"
)

var statusOrder = []models.ComplaintStatus{
	models.ComplaintStatusPending,
	models.ComplaintStatusInProgress,
	models.ComplaintStatusResolved,
}

func (a *App) dashboardCommand() *cobra.Command {
	return leaf("dashboard", "administration analytics summary", cobra.NoArgs, a.dashboard)
}

func (a *App) dashboard(ctx context.Context, _ []string) error {
	sess, err := a.currentSession(ctx)
	if err != nil {
		return err
	}
	summary, err := service.NewDashboardService(a.client, a.logger).Summary(ctx, sess)
	if err != nil {
		return err
	}
	return a.render(summary, func(w io.Writer) {
		row(w, "ACTIVE COMPLAINTS", summary.ActiveComplaints)
		row(w, "TOTAL COMPLAINTS", summary.TotalComplaints)
		for _, status := range statusOrder {
			row(w, "  "+string(status), summary.ComplaintsByStatus[status])
		}
		priorities := make([]string, 0, len(summary.ComplaintsByPriority))
		for p := range summary.ComplaintsByPriority {
			priorities = append(priorities, p)
		}
		sort.Strings(priorities)
		for _, p := range priorities {
			row(w, "  "+p, summary.ComplaintsByPriority[p])
		}
		row(w, "ACTIVE POLLS", summary.ActivePolls)
		row(w, "TOTAL VOTES", summary.TotalVotes)
		row(w, "UPCOMING EVENTS", summary.UpcomingEvents)
		row(w, "ANNOUNCEMENTS", summary.Announcements)
		sections := make([]string, 0, len(summary.Errors))
		for s := range summary.Errors {
			sections = append(sections, s)
		}
		sort.Strings(sections)
		for _, s := range sections {
			row(w, "ERROR "+s, summary.Errors[s])
		}
	})
}
