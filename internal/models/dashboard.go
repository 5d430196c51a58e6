package models

// DashboardSummary backs the administration analytics view.
type DashboardSummary struct {
	ActiveComplaints     int                     `json:"activeComplaints"`
	TotalComplaints      int                     `json:"totalComplaints"`
	ComplaintsByStatus   map[ComplaintStatus]int `json:"complaintsByStatus"`
	ComplaintsByPriority map[string]int          `json:"complaintsByPriority"`
	ActivePolls          int                     `json:"activePolls"`
	TotalVotes           int                     `json:"totalVotes"`
	UpcomingEvents       int                     `json:"upcomingEvents"`
	Announcements        int                     `json:"announcements"`
	Errors               map[string]string       `json:"errors,omitempty"`
}
