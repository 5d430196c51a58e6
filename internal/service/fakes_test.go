package service

import (
	"context"
	"io"
	"sync"

	"github.com/noah-isme/unigov-client/internal/models"
)

// fakeAPI records calls and serves canned data for every page service.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	events        []models.Event
	announcements []models.Announcement
	complaints    []models.Complaint
	polls         []models.Poll
	decisions     []models.Decision
	conversations []models.Conversation
	messages      []models.Message
	user          *models.User
	session       *models.Session
	unread        int64

	errs map[string]error

	lastAnnouncement models.AnnouncementForm
	lastComplaint    models.CreateComplaintRequest
	lastStatus       models.UpdateComplaintStatusRequest
	lastPoll         models.CreatePollRequest
	lastMessage      models.SendMessageRequest
	lastPhoto        []byte
	lastPhotoName    string
}

func (f *fakeAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	return f.errs[name]
}

func (f *fakeAPI) called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) GetEvents(context.Context) ([]models.Event, error) {
	return f.events, f.record("GetEvents")
}

func (f *fakeAPI) GetUpcomingEvents(context.Context) ([]models.Event, error) {
	if err := f.record("GetUpcomingEvents"); err != nil {
		return nil, err
	}
	return f.events, nil
}

func (f *fakeAPI) CreateEvent(_ context.Context, req models.CreateEventRequest) (*models.Event, error) {
	if err := f.record("CreateEvent"); err != nil {
		return nil, err
	}
	return &models.Event{ID: 1, Title: req.Title, Type: req.Type, StartTime: req.StartTime}, nil
}

func (f *fakeAPI) GetAnnouncements(context.Context) ([]models.Announcement, error) {
	if err := f.record("GetAnnouncements"); err != nil {
		return nil, err
	}
	return f.announcements, nil
}

func (f *fakeAPI) CreateAnnouncement(_ context.Context, form models.AnnouncementForm) (*models.Announcement, error) {
	if err := f.record("CreateAnnouncement"); err != nil {
		return nil, err
	}
	f.lastAnnouncement = form
	return &models.Announcement{ID: 7, Title: form.Title, Content: form.Content}, nil
}

func (f *fakeAPI) GetComplaints(context.Context) ([]models.Complaint, error) {
	if err := f.record("GetComplaints"); err != nil {
		return nil, err
	}
	return f.complaints, nil
}

func (f *fakeAPI) GetMyComplaints(context.Context) ([]models.Complaint, error) {
	if err := f.record("GetMyComplaints"); err != nil {
		return nil, err
	}
	return f.complaints[:1], nil
}

func (f *fakeAPI) GetComplaintByID(_ context.Context, id string) (*models.Complaint, error) {
	if err := f.record("GetComplaintByID"); err != nil {
		return nil, err
	}
	for i := range f.complaints {
		if f.complaints[i].ID == id {
			c := f.complaints[i]
			return &c, nil
		}
	}
	return nil, io.ErrUnexpectedEOF
}

func (f *fakeAPI) CreateComplaint(_ context.Context, req models.CreateComplaintRequest) (*models.Complaint, error) {
	if err := f.record("CreateComplaint"); err != nil {
		return nil, err
	}
	f.lastComplaint = req
	return &models.Complaint{ID: "new", Title: req.Title, Status: models.ComplaintStatusPending}, nil
}

func (f *fakeAPI) UpdateComplaintStatus(_ context.Context, id string, req models.UpdateComplaintStatusRequest) (*models.Complaint, error) {
	if err := f.record("UpdateComplaintStatus"); err != nil {
		return nil, err
	}
	f.lastStatus = req
	return &models.Complaint{ID: id, Status: req.Status, Response: req.Response}, nil
}

func (f *fakeAPI) DeleteComplaint(context.Context, string) error {
	return f.record("DeleteComplaint")
}

func (f *fakeAPI) GetPolls(context.Context) ([]models.Poll, error) {
	if err := f.record("GetPolls"); err != nil {
		return nil, err
	}
	return f.polls, nil
}

func (f *fakeAPI) CreatePoll(_ context.Context, req models.CreatePollRequest) (*models.Poll, error) {
	if err := f.record("CreatePoll"); err != nil {
		return nil, err
	}
	f.lastPoll = req
	return &models.Poll{ID: 3, Question: req.Question, Active: true}, nil
}

func (f *fakeAPI) Vote(_ context.Context, optionID int64) (*models.Poll, error) {
	if err := f.record("Vote"); err != nil {
		return nil, err
	}
	return &models.Poll{ID: 1, Options: []models.PollOption{{ID: optionID, Votes: 1}}}, nil
}

func (f *fakeAPI) GetDecisions(context.Context) ([]models.Decision, error) {
	if err := f.record("GetDecisions"); err != nil {
		return nil, err
	}
	return f.decisions, nil
}

func (f *fakeAPI) GetDecision(_ context.Context, id int64) (*models.Decision, error) {
	if err := f.record("GetDecision"); err != nil {
		return nil, err
	}
	return &models.Decision{ID: id}, nil
}

func (f *fakeAPI) CreateDecision(_ context.Context, req models.DecisionRequest) (*models.Decision, error) {
	if err := f.record("CreateDecision"); err != nil {
		return nil, err
	}
	return &models.Decision{ID: 9, Title: req.Title, Content: req.Content, Status: req.Status}, nil
}

func (f *fakeAPI) UpdateDecision(_ context.Context, id int64, req models.DecisionRequest) (*models.Decision, error) {
	if err := f.record("UpdateDecision"); err != nil {
		return nil, err
	}
	return &models.Decision{ID: id, Title: req.Title, Content: req.Content}, nil
}

func (f *fakeAPI) DeleteDecision(context.Context, int64) error {
	return f.record("DeleteDecision")
}

func (f *fakeAPI) GetConversations(context.Context) ([]models.Conversation, error) {
	if err := f.record("GetConversations"); err != nil {
		return nil, err
	}
	return f.conversations, nil
}

func (f *fakeAPI) GetConversation(context.Context, int64) ([]models.Message, error) {
	if err := f.record("GetConversation"); err != nil {
		return nil, err
	}
	return f.messages, nil
}

func (f *fakeAPI) SendMessage(_ context.Context, req models.SendMessageRequest) (*models.Message, error) {
	if err := f.record("SendMessage"); err != nil {
		return nil, err
	}
	f.lastMessage = req
	return &models.Message{ID: 11, RecipientID: req.RecipientID, Content: req.Content}, nil
}

func (f *fakeAPI) MarkConversationRead(context.Context, int64) error {
	return f.record("MarkConversationRead")
}

func (f *fakeAPI) DeleteMessage(context.Context, int64) error {
	return f.record("DeleteMessage")
}

func (f *fakeAPI) GetUnreadCount(context.Context) (int64, error) {
	if err := f.record("GetUnreadCount"); err != nil {
		return 0, err
	}
	return f.unread, nil
}

func (f *fakeAPI) GetCurrentUser(context.Context) (*models.User, error) {
	if err := f.record("GetCurrentUser"); err != nil {
		return nil, err
	}
	return f.user, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	if err := f.record("UpdateProfile"); err != nil {
		return nil, err
	}
	return &models.User{FullName: req.FullName, Email: req.Email}, nil
}

func (f *fakeAPI) UploadPhoto(_ context.Context, photo *models.Attachment) (*models.User, error) {
	if err := f.record("UploadPhoto"); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(photo.Content)
	if err != nil {
		return nil, err
	}
	f.lastPhoto = data
	f.lastPhotoName = photo.Filename
	return &models.User{ProfilePhoto: photo.Filename}, nil
}

func (f *fakeAPI) UploadsURL(name string) string {
	return "http://localhost:8081/uploads/" + name
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (*models.Session, error) {
	if err := f.record("Login"); err != nil {
		return nil, err
	}
	if f.session != nil {
		return f.session, nil
	}
	return &models.Session{Username: req.Username, Role: models.RoleStudent, Token: "tok"}, nil
}
