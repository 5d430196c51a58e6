package apiclient

import "net/http"

// Fixed verb and path template of every resource method.
var (
	epLogin = endpoint{http.MethodPost, "/auth/signin"}

	epUpdateProfile  = endpoint{http.MethodPut, "/users/profile"}
	epUploadPhoto    = endpoint{http.MethodPost, "/users/photo"}
	epGetCurrentUser = endpoint{http.MethodGet, "/users/me"}

	epGetConversations     = endpoint{http.MethodGet, "/messages/conversations"}
	epGetConversation      = endpoint{http.MethodGet, "/messages/conversation/{userId}"}
	epSendMessage          = endpoint{http.MethodPost, "/messages"}
	epMarkConversationRead = endpoint{http.MethodPut, "/messages/conversation/{userId}/read"}
	epDeleteMessage        = endpoint{http.MethodDelete, "/messages/{id}"}
	epGetUnreadCount       = endpoint{http.MethodGet, "/messages/unread-count"}

	epGetEvents         = endpoint{http.MethodGet, "/events"}
	epGetUpcomingEvents = endpoint{http.MethodGet, "/events/upcoming"}
	epCreateEvent       = endpoint{http.MethodPost, "/events"}

	epGetDecisions   = endpoint{http.MethodGet, "/decisions"}
	epGetDecision    = endpoint{http.MethodGet, "/decisions/{id}"}
	epCreateDecision = endpoint{http.MethodPost, "/decisions"}
	epUpdateDecision = endpoint{http.MethodPut, "/decisions/{id}"}
	epDeleteDecision = endpoint{http.MethodDelete, "/decisions/{id}"}

	epGetAnnouncements   = endpoint{http.MethodGet, "/announcements"}
	epCreateAnnouncement = endpoint{http.MethodPost, "/announcements"}

	epGetComplaints         = endpoint{http.MethodGet, "/complaints"}
	epGetMyComplaints       = endpoint{http.MethodGet, "/complaints/my"}
	epGetComplaintByID      = endpoint{http.MethodGet, "/complaints/{id}"}
	epCreateComplaint       = endpoint{http.MethodPost, "/complaints"}
	epUpdateComplaintStatus = endpoint{http.MethodPut, "/complaints/{id}/status"}
	epDeleteComplaint       = endpoint{http.MethodDelete, "/complaints/{id}"}

	epGetPolls   = endpoint{http.MethodGet, "/polls"}
	epCreatePoll = endpoint{http.MethodPost, "/polls"}
	epVote       = endpoint{http.MethodPost, "/polls/{optionId}/vote"}
)
