package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/unigov-client/internal/handler"
	"github.com/noah-isme/unigov-client/internal/models"
	"github.com/noah-isme/unigov-client/internal/repository"
	"github.com/noah-isme/unigov-client/internal/service"
	"github.com/noah-isme/unigov-client/pkg/config"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/session"
	"github.com/noah-isme/unigov-client/pkg/storage"
)

type harness struct {
	cfg    *config.Config
	store  session.Storage
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	fixtures, err := repository.NewStore(bcrypt.MinCost)
	require.NoError(t, err)
	uploads, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	srv := httptest.NewServer(handler.NewRouter(handler.RouterConfig{
		Store:   fixtures,
		Uploads: uploads,
		Tokens:  service.NewTokenService("cli-secret", time.Hour),
		Metrics: service.NewMetricsService(),
	}))
	t.Cleanup(srv.Close)

	return &harness{
		cfg:    &config.Config{Env: config.EnvDevelopment, API: config.APIConfig{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second}},
		store:  session.NewMemoryStorage(),
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
}

func (h *harness) run(t *testing.T, args ...string) error {
	t.Helper()
	h.stdout.Reset()
	return New(h.cfg, h.store, nil, h.stdout, h.stderr).Run(context.Background(), args)
}

func (h *harness) login(t *testing.T, username string) {
	t.Helper()
	require.NoError(t, h.run(t, "login", "-u", username, "-p", repository.SeedPassword))
}

func TestLoginWhoamiLogout(t *testing.T) {
	h := newHarness(t)

	h.login(t, "delegue")
	assert.Contains(t, h.stdout.String(), "signed in as delegue (ROLE_DELEGATE)")

	require.NoError(t, h.run(t, "-o", "json", "whoami"))
	var user models.User
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &user))
	assert.Equal(t, "Kofi Asante", user.FullName)

	require.NoError(t, h.run(t, "session", "show"))
	assert.Contains(t, h.stdout.String(), "SUBJECT")
	assert.Contains(t, h.stdout.String(), "delegue")

	require.NoError(t, h.run(t, "logout"))
	require.NoError(t, h.run(t, "session", "show"))
	assert.Contains(t, h.stdout.String(), "no active session")

	err := h.run(t, "whoami")
	assert.Equal(t, 401, appErrors.StatusOf(err))
}

func TestSessionSetIsUsedAsBearer(t *testing.T) {
	h := newHarness(t)
	tokens := service.NewTokenService("cli-secret", time.Hour)
	token, _, err := tokens.Issue(&models.User{ID: 3, Username: "etudiant", Role: models.RoleStudent})
	require.NoError(t, err)

	require.NoError(t, h.run(t, "session", "set", "--token", token, "--username", "etudiant", "--role", "role_student"))
	require.NoError(t, h.run(t, "whoami"))
	assert.Contains(t, h.stdout.String(), "Ama Mensah")

	err = h.run(t, "session", "set", "--username", "nobody")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}

func TestComplaintsFlow(t *testing.T) {
	h := newHarness(t)
	h.login(t, "etudiant")

	require.NoError(t, h.run(t, "complaints", "create", "--title", "Casiers", "--description", "Serrure cassée", "--category", "Matériel", "--priority", "low"))
	assert.Contains(t, h.stdout.String(), "filed complaint CMP-")

	require.NoError(t, h.run(t, "-o", "json", "complaints", "list", "--mine"))
	var mine []models.Complaint
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &mine))
	require.Len(t, mine, 3)

	out := filepath.Join(t.TempDir(), "c.csv")
	require.NoError(t, h.run(t, "complaints", "export", "CMP-1001", "--format", "csv", "--out", out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Field,Value\n"))
	assert.Contains(t, string(data), "Wi-Fi instable")

	err = h.run(t, "complaints", "status", "CMP-1001", "--status", "RESOLVED")
	assert.Equal(t, 403, appErrors.StatusOf(err))

	err = h.run(t, "complaints", "export", "CMP-1001", "--format", "docx")
	assert.True(t, errors.Is(err, ErrUsage))
}

func TestDashboardRoles(t *testing.T) {
	h := newHarness(t)

	err := h.run(t, "dashboard")
	assert.True(t, errors.Is(err, appErrors.ErrSessionMissing))

	h.login(t, "etudiant")
	err = h.run(t, "dashboard")
	assert.True(t, errors.Is(err, appErrors.ErrForbidden))

	h.login(t, "admin")
	require.NoError(t, h.run(t, "-o", "json", "dashboard"))
	var summary models.DashboardSummary
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &summary))
	assert.Equal(t, 3, summary.TotalComplaints)
	assert.Equal(t, 2, summary.ActiveComplaints)
	assert.Equal(t, 1, summary.ActivePolls)
	assert.Equal(t, 50, summary.TotalVotes)
	assert.Empty(t, summary.Errors)
}

func TestPublishValidationNeverCallsAPI(t *testing.T) {
	h := newHarness(t)
	h.login(t, "admin")

	err := h.run(t, "--metrics", "announcements", "publish", "--title", "  ", "--content", "Texte")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Contains(t, h.stderr.String(), "api calls: 0")

	require.NoError(t, h.run(t, "announcements", "publish", "--title", "Rentrée", "--content", "Lundi 8h", "--urgent"))
	assert.Contains(t, h.stdout.String(), "published announcement")
}

func TestPollsAndMessages(t *testing.T) {
	h := newHarness(t)
	h.login(t, "admin")
	require.NoError(t, h.run(t, "-o", "json", "polls", "create", "--question", "Date du gala ?", "--option", "Mai", "--option", "Juin"))
	var poll models.Poll
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &poll))
	require.Len(t, poll.Options, 2)

	h.login(t, "etudiant")
	require.NoError(t, h.run(t, "polls", "vote", strconv.FormatInt(poll.Options[1].ID, 10)))
	assert.Contains(t, h.stdout.String(), "1 votes in total")

	require.NoError(t, h.run(t, "messages", "unread"))
	assert.Equal(t, "1 unread\n", h.stdout.String())
	require.NoError(t, h.run(t, "messages", "send", "--to", "2", "--content", "Merci"))
	require.NoError(t, h.run(t, "messages", "history", "2"))
	assert.Contains(t, h.stdout.String(), "Merci")
}

func TestUsageErrors(t *testing.T) {
	h := newHarness(t)
	assert.True(t, errors.Is(h.run(t), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "frobnicate"), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "-o", "yaml", "polls"), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "polls", "vote"), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "complaints", "archive"), ErrUsage))
	assert.Contains(t, h.stderr.String(), "Commands:")
}

func TestArgumentAndFlagMistakesAreUsageErrors(t *testing.T) {
	h := newHarness(t)
	h.login(t, "admin")

	assert.True(t, errors.Is(h.run(t, "complaints", "list", "--bogus"), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "decisions", "show", "abc"), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "decisions", "show", "1", "2"), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "whoami", "extra"), ErrUsage))
	assert.True(t, errors.Is(h.run(t, "messages", "history", " "), ErrUsage))

	require.NoError(t, h.run(t, "--help"))
	assert.Contains(t, h.stdout.String(), "procedures")
}

func TestGroupWithoutSubcommandRunsDefault(t *testing.T) {
	h := newHarness(t)
	h.login(t, "admin")

	require.NoError(t, h.run(t, "-o", "json", "complaints"))
	var all []models.Complaint
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &all))
	assert.Len(t, all, 3)

	require.NoError(t, h.run(t, "decisions", "create", "--title", "Budget", "--content", "Adopté"))
	assert.Contains(t, h.stdout.String(), "Budget")
	require.NoError(t, h.run(t, "decisions"))
	assert.Contains(t, h.stdout.String(), "Budget")
}

func TestProceduresRendersNumberedSteps(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run(t, "procedures"))
	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, service.ProceduresIntro+"\n"))
	assert.Contains(t, out, "Réinscription Universitaire\n")
	assert.Contains(t, out, "  3. Imprimer le reçu de paiement.\n")
	assert.Contains(t, out, "  4. Déposer la demande au service scolarité avant le 30 Septembre.\n")

	require.NoError(t, h.run(t, "-o", "json", "procedures"))
	var procedures []models.Procedure
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &procedures))
	require.Len(t, procedures, 2)
	assert.Len(t, procedures[1].Steps, 4)
}
