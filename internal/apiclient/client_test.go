package apiclient

import (
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/session"
)

type capturedRequest struct {
	Method      string
	Path        string
	ContentType string
	Auth        string
	RequestID   string
	Body        []byte
}

type recorder struct {
	mu       sync.Mutex
	requests []capturedRequest
}

func (r *recorder) last(t *testing.T) capturedRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests)
	return r.requests[len(r.requests)-1]
}

func newTestServer(t *testing.T, status int, payload string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.requests = append(rec.requests, capturedRequest{
			Method:      r.Method,
			Path:        r.URL.EscapedPath(),
			ContentType: r.Header.Get("Content-Type"),
			Auth:        r.Header.Get("Authorization"),
			RequestID:   r.Header.Get("X-Request-ID"),
			Body:        body,
		})
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func storeWithToken(t *testing.T, token string) *session.MemoryStorage {
	t.Helper()
	store := session.NewMemoryStorage()
	require.NoError(t, session.Save(context.Background(), store, &models.Session{Username: "amira", Role: models.RoleStudent, Token: token}))
	return store
}

func TestAuthHeaderFromStoredSession(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"id":7,"fullName":"Amira Ben Salah","username":"amira","role":"ROLE_STUDENT"}`)
	client := New(srv.URL+"/api", storeWithToken(t, "tok-123"))

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "amira", user.Username)

	got := rec.last(t)
	assert.Equal(t, "Bearer tok-123", got.Auth)
	assert.Equal(t, "/api/users/me", got.Path)
	assert.NotEmpty(t, got.RequestID)
}

func TestUnauthenticatedWhenSessionUnusable(t *testing.T) {
	ctx := context.Background()
	malformed := session.NewMemoryStorage()
	require.NoError(t, malformed.SetItem(ctx, models.SessionKey, "{broken"))
	tokenless := session.NewMemoryStorage()
	require.NoError(t, tokenless.SetItem(ctx, models.SessionKey, `{"username":"amira"}`))

	cases := map[string]session.Storage{
		"nil store":     nil,
		"empty store":   session.NewMemoryStorage(),
		"malformed":     malformed,
		"missing token": tokenless,
		"missing file":  session.NewFileStorage(t.TempDir() + "/absent.json"),
	}

	for name, store := range cases {
		t.Run(name, func(t *testing.T) {
			srv, rec := newTestServer(t, http.StatusOK, `[]`)
			client := New(srv.URL+"/api", store)

			events, err := client.GetUpcomingEvents(ctx)
			require.NoError(t, err)
			assert.Empty(t, events)
			assert.Empty(t, rec.last(t).Auth)
		})
	}
}

func TestResourceMethodsUseFixedVerbAndPath(t *testing.T) {
	ctx := context.Background()
	file := func() *models.Attachment {
		return &models.Attachment{Filename: "photo.png", Content: strings.NewReader("png-bytes")}
	}

	cases := []struct {
		name        string
		call        func(c *Client) error
		method      string
		path        string
		contentType string
	}{
		{"Login", func(c *Client) error { _, err := c.Login(ctx, models.LoginRequest{Username: "a", Password: "b"}); return err }, http.MethodPost, "/api/auth/signin", "application/json"},
		{"UpdateProfile", func(c *Client) error { _, err := c.UpdateProfile(ctx, models.UpdateProfileRequest{FullName: "A"}); return err }, http.MethodPut, "/api/users/profile", "application/json"},
		{"UploadPhoto", func(c *Client) error { _, err := c.UploadPhoto(ctx, file()); return err }, http.MethodPost, "/api/users/photo", "multipart/form-data"},
		{"GetCurrentUser", func(c *Client) error { _, err := c.GetCurrentUser(ctx); return err }, http.MethodGet, "/api/users/me", ""},
		{"GetConversations", func(c *Client) error { _, err := c.GetConversations(ctx); return err }, http.MethodGet, "/api/messages/conversations", ""},
		{"GetConversation", func(c *Client) error { _, err := c.GetConversation(ctx, 12); return err }, http.MethodGet, "/api/messages/conversation/12", ""},
		{"SendMessage", func(c *Client) error { _, err := c.SendMessage(ctx, models.SendMessageRequest{RecipientID: 12, Content: "hi"}); return err }, http.MethodPost, "/api/messages", "application/json"},
		{"MarkConversationRead", func(c *Client) error { return c.MarkConversationRead(ctx, 12) }, http.MethodPut, "/api/messages/conversation/12/read", ""},
		{"DeleteMessage", func(c *Client) error { return c.DeleteMessage(ctx, 99) }, http.MethodDelete, "/api/messages/99", ""},
		{"GetUnreadCount", func(c *Client) error { _, err := c.GetUnreadCount(ctx); return err }, http.MethodGet, "/api/messages/unread-count", ""},
		{"GetEvents", func(c *Client) error { _, err := c.GetEvents(ctx); return err }, http.MethodGet, "/api/events", ""},
		{"GetUpcomingEvents", func(c *Client) error { _, err := c.GetUpcomingEvents(ctx); return err }, http.MethodGet, "/api/events/upcoming", ""},
		{"CreateEvent", func(c *Client) error { _, err := c.CreateEvent(ctx, models.CreateEventRequest{Title: "Exam", Type: models.EventTypeExam}); return err }, http.MethodPost, "/api/events", "application/json"},
		{"GetDecisions", func(c *Client) error { _, err := c.GetDecisions(ctx); return err }, http.MethodGet, "/api/decisions", ""},
		{"GetDecision", func(c *Client) error { _, err := c.GetDecision(ctx, 3); return err }, http.MethodGet, "/api/decisions/3", ""},
		{"CreateDecision", func(c *Client) error { _, err := c.CreateDecision(ctx, models.DecisionRequest{Title: "t", Content: "c"}); return err }, http.MethodPost, "/api/decisions", "application/json"},
		{"UpdateDecision", func(c *Client) error { _, err := c.UpdateDecision(ctx, 3, models.DecisionRequest{Title: "t", Content: "c"}); return err }, http.MethodPut, "/api/decisions/3", "application/json"},
		{"DeleteDecision", func(c *Client) error { return c.DeleteDecision(ctx, 3) }, http.MethodDelete, "/api/decisions/3", ""},
		{"GetAnnouncements", func(c *Client) error { _, err := c.GetAnnouncements(ctx); return err }, http.MethodGet, "/api/announcements", ""},
		{"CreateAnnouncement", func(c *Client) error { _, err := c.CreateAnnouncement(ctx, models.AnnouncementForm{Title: "t", Content: "c", Audience: "all"}); return err }, http.MethodPost, "/api/announcements", "multipart/form-data"},
		{"GetComplaints", func(c *Client) error { _, err := c.GetComplaints(ctx); return err }, http.MethodGet, "/api/complaints", ""},
		{"GetMyComplaints", func(c *Client) error { _, err := c.GetMyComplaints(ctx); return err }, http.MethodGet, "/api/complaints/my", ""},
		{"GetComplaintByID", func(c *Client) error { _, err := c.GetComplaintByID(ctx, "a1b2/c3"); return err }, http.MethodGet, "/api/complaints/a1b2%2Fc3", ""},
		{"CreateComplaint", func(c *Client) error { _, err := c.CreateComplaint(ctx, models.CreateComplaintRequest{Title: "t"}); return err }, http.MethodPost, "/api/complaints", "application/json"},
		{"UpdateComplaintStatus", func(c *Client) error { _, err := c.UpdateComplaintStatus(ctx, "a1b2", models.UpdateComplaintStatusRequest{Status: models.ComplaintStatusResolved}); return err }, http.MethodPut, "/api/complaints/a1b2/status", "application/json"},
		{"DeleteComplaint", func(c *Client) error { return c.DeleteComplaint(ctx, "a1b2") }, http.MethodDelete, "/api/complaints/a1b2", ""},
		{"GetPolls", func(c *Client) error { _, err := c.GetPolls(ctx); return err }, http.MethodGet, "/api/polls", ""},
		{"CreatePoll", func(c *Client) error { _, err := c.CreatePoll(ctx, models.CreatePollRequest{Question: "q", Options: []string{"a", "b"}}); return err }, http.MethodPost, "/api/polls", "application/json"},
		{"Vote", func(c *Client) error { _, err := c.Vote(ctx, 41); return err }, http.MethodPost, "/api/polls/41/vote", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, rec := newTestServer(t, http.StatusOK, `null`)
			client := New(srv.URL+"/api/", storeWithToken(t, "tok"))

			require.NoError(t, tc.call(client))

			got := rec.last(t)
			assert.Equal(t, tc.method, got.Method)
			assert.Equal(t, tc.path, got.Path)
			assert.Equal(t, "Bearer tok", got.Auth)
			if tc.contentType == "" {
				assert.Empty(t, got.ContentType)
			} else {
				assert.True(t, strings.HasPrefix(got.ContentType, tc.contentType), "content type %q", got.ContentType)
			}
		})
	}
}

func TestCreateAnnouncementMultipartFields(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusCreated, `{"id":3,"title":"Maintenance"}`)
	client := New(srv.URL+"/api", nil)

	out, err := client.CreateAnnouncement(context.Background(), models.AnnouncementForm{
		Title:            "Maintenance",
		Content:          "Coupure samedi",
		Urgent:           true,
		Audience:         models.AudienceDepartment,
		Departments:      []string{"Informatique", "GSIL"},
		PushNotification: true,
		File:             &models.Attachment{Filename: "/tmp/planning.pdf", Content: strings.NewReader("%PDF")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)

	got := rec.last(t)
	mediaType, params, err := mime.ParseMediaType(got.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	form, err := multipart.NewReader(strings.NewReader(string(got.Body)), params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"Maintenance"}, form.Value["title"])
	assert.Equal(t, []string{"URGENT"}, form.Value["priority"])
	assert.Equal(t, []string{"department"}, form.Value["audience"])
	assert.Equal(t, []string{`["Informatique","GSIL"]`}, form.Value["departments"])
	assert.Equal(t, []string{`[]`}, form.Value["years"])
	assert.Equal(t, []string{"false"}, form.Value["allowComments"])
	assert.Equal(t, []string{"true"}, form.Value["pushNotification"])
	require.Len(t, form.File["file"], 1)
	assert.Equal(t, "planning.pdf", form.File["file"][0].Filename)
}

func TestFailedResponseIsLoggedAndReturnedUnchanged(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusNotFound, `{"message":"complaint not found"}`)
	core, logs := observer.New(zapcore.ErrorLevel)

	var intercepted *appErrors.RequestError
	client := New(srv.URL+"/api", storeWithToken(t, "tok"),
		WithLogger(zap.New(core)),
		WithErrorInterceptor(func(_ context.Context, err *appErrors.RequestError) { intercepted = err }),
	)

	complaint, err := client.GetComplaintByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, complaint)

	var reqErr *appErrors.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Same(t, intercepted, reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
	assert.Equal(t, http.MethodGet, reqErr.Method)
	assert.Equal(t, srv.URL+"/api/complaints/missing", reqErr.URL)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, reqErr.Method, fields["method"])
	assert.Equal(t, reqErr.URL, fields["url"])
	assert.Equal(t, int64(reqErr.Status), fields["status"])
	assert.Equal(t, `{"message":"complaint not found"}`, fields["body"])
	assert.Equal(t, reqErr.Message, fields["message"])
}

func TestTransportFailureIsLogged(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api"
	srv.Close()

	core, logs := observer.New(zapcore.ErrorLevel)
	client := New(base, nil, WithLogger(zap.New(core)), WithTimeout(time.Second))

	_, err := client.GetPolls(context.Background())
	require.Error(t, err)

	var reqErr *appErrors.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, 0, reqErr.Status)
	assert.NotNil(t, reqErr.Unwrap())
	assert.Equal(t, 1, logs.Len())
}

type fakeObserver struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeObserver) ObserveAPICall(method, path string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, method+" "+path+" "+http.StatusText(status))
}

func TestObserverReceivesPathTemplate(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"id":1,"question":"Cafétéria","options":[]}`)
	obs := &fakeObserver{}
	client := New(srv.URL+"/api", nil, WithObserver(obs))

	_, err := client.Vote(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, []string{"POST /polls/{optionId}/vote OK"}, obs.calls)
}

func TestCustomRequestInterceptorRunsAfterBuiltIns(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `[]`)
	var sawAuth string
	client := New(srv.URL+"/api", storeWithToken(t, "tok"), WithRequestInterceptor(func(req *http.Request) error {
		sawAuth = req.Header.Get("Authorization")
		req.Header.Set("X-Client", "unigov-cli")
		return nil
	}))

	_, err := client.GetDecisions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", sawAuth)
	assert.NotEmpty(t, rec.last(t).RequestID)
}

func TestUploadsURL(t *testing.T) {
	client := New("http://localhost:8081/api", nil)
	assert.Equal(t, "http://localhost:8081/uploads/avatar.png", client.UploadsURL("avatar.png"))
	assert.Equal(t, "https://cdn.example.com/a.png", client.UploadsURL("https://cdn.example.com/a.png"))
	assert.Equal(t, "", client.UploadsURL(""))
}

func TestUndecodableResponseIsLogged(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"id":"not-a-number"`)
	core, logs := observer.New(zapcore.ErrorLevel)
	client := New(srv.URL+"/api", nil, WithLogger(zap.New(core)))

	_, err := client.GetDecision(context.Background(), 4)
	require.Error(t, err)

	var reqErr *appErrors.RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusOK, reqErr.Status)
	assert.Equal(t, "invalid response body", reqErr.Message)
	assert.Equal(t, srv.URL+"/api/decisions/4", reqErr.URL)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, reqErr.URL, fields["url"])
	assert.Equal(t, `{"id":"not-a-number"`, fields["body"])
}

func TestFailingRequestInterceptorIsLogged(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `[]`)
	core, logs := observer.New(zapcore.ErrorLevel)
	refused := errors.New("refused")
	client := New(srv.URL+"/api", nil,
		WithLogger(zap.New(core)),
		WithRequestInterceptor(func(*http.Request) error { return refused }),
	)

	_, err := client.GetEvents(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, refused))
	assert.Equal(t, 0, appErrors.StatusOf(err))
	assert.Equal(t, 1, logs.Len())

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Empty(t, rec.requests)
}

func TestWithTimeoutLeavesCallerClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}
	client := New("http://localhost:8081/api", nil, WithHTTPClient(shared), WithTimeout(3*time.Second))

	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}
