package repository

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/unigov-client/internal/models"
)

// SeedPassword is the password of every seeded account.
const SeedPassword = "password"

type userRecord struct {
	user         models.User
	passwordHash []byte
}

type complaintRecord struct {
	complaint models.Complaint
	ownerID   int64
}

// Store is the mock backend's in-memory data set. All methods are safe for
// concurrent use.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	nextID        int64
	users         []*userRecord
	events        []models.Event
	announcements []models.Announcement
	complaints    []*complaintRecord
	polls         []*models.Poll
	votes         map[int64]map[int64]struct{} // poll id -> voter ids
	decisions     []models.Decision
	messages      []*models.Message
}

// StoreOption customises a Store.
type StoreOption func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore builds a store seeded with fixtures. hashCost is the bcrypt cost
// for the seeded passwords; tests pass bcrypt.MinCost.
func NewStore(hashCost int, opts ...StoreOption) (*Store, error) {
	s := &Store{now: time.Now, votes: make(map[int64]map[int64]struct{})}
	for _, opt := range opts {
		opt(s)
	}
	if hashCost < bcrypt.MinCost {
		hashCost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	s.seed(hash)
	return s, nil
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) seed(hash []byte) {
	now := s.now()
	day := 24 * time.Hour

	for _, u := range []models.User{
		{FullName: "Administration", Username: "admin", Email: "admin@unigov.app", Role: models.RoleAdmin, Department: "Scolarité"},
		{FullName: "Kofi Asante", Username: "delegue", Email: "kofi.asante@unigov.app", Role: models.RoleDelegate, Department: "Informatique", Year: "L3"},
		{FullName: "Ama Mensah", Username: "etudiant", Email: "ama.mensah@unigov.app", Role: models.RoleStudent, Department: "Droit", Year: "L1"},
	} {
		u.ID = s.id()
		s.users = append(s.users, &userRecord{user: u, passwordHash: hash})
	}
	admin, delegate, student := s.users[0].user, s.users[1].user, s.users[2].user

	amphi := "Amphithéâtre A"
	s.events = []models.Event{
		{ID: s.id(), Title: "Conseil d'administration", Type: models.EventTypeMeeting, StartTime: models.NewTimestamp(now.Add(3 * day)), Location: &amphi},
		{ID: s.id(), Title: "Examens du premier semestre", Type: models.EventTypeExam, StartTime: models.NewTimestamp(now.Add(20 * day))},
		{ID: s.id(), Title: "Soirée d'intégration", Type: models.EventTypeSocial, StartTime: models.NewTimestamp(now.Add(-10 * day))},
	}

	s.announcements = []models.Announcement{
		{ID: s.id(), Title: "Fermeture de la bibliothèque", Content: "La bibliothèque sera fermée samedi pour travaux.", Date: now.Add(-day).Format("2006-01-02"), Author: admin.FullName, Priority: models.AnnouncementPriorityUrgent, Audience: models.AudienceAll},
		{ID: s.id(), Title: "Élection des délégués", Content: "Les candidatures sont ouvertes jusqu'à vendredi.", Date: now.Add(-3 * day).Format("2006-01-02"), Author: delegate.FullName, Priority: models.AnnouncementPriorityNormal, Audience: models.AudienceDepartment, Departments: []string{"Informatique"}},
	}

	s.complaints = []*complaintRecord{
		{ownerID: student.ID, complaint: models.Complaint{ID: "CMP-1001", Title: "Wi-Fi instable", Description: "Le réseau coupe toutes les dix minutes en salle B12.", Category: "Infrastructure", Priority: models.ComplaintPriorityHigh, Status: models.ComplaintStatusPending, StudentName: student.FullName, StudentDepartment: student.Department, CreatedAt: models.NewTimestamp(now.Add(-2 * day))}},
		{ownerID: student.ID, complaint: models.Complaint{ID: "CMP-1002", Title: "Notes non publiées", Description: "Les notes de droit civil ne sont pas en ligne.", Category: "Pédagogie", Priority: models.ComplaintPriorityMedium, Status: models.ComplaintStatusInProgress, StudentName: student.FullName, StudentDepartment: student.Department, CreatedAt: models.NewTimestamp(now.Add(-5 * day))}},
		{ownerID: delegate.ID, complaint: models.Complaint{ID: "CMP-1003", Title: "Chauffage", Description: "Le chauffage de l'amphi C est réparé.", Category: "Infrastructure", Priority: models.ComplaintPriorityLow, Status: models.ComplaintStatusResolved, StudentName: delegate.FullName, StudentDepartment: delegate.Department, Response: "Intervention effectuée.", CreatedAt: models.NewTimestamp(now.Add(-30 * day))}},
	}

	end := models.NewTimestamp(now.Add(7 * day))
	s.polls = []*models.Poll{
		{ID: s.id(), Question: "Faut-il étendre les horaires de la bibliothèque ?", Active: true, EndDate: &end, Options: []models.PollOption{{ID: s.id(), Text: "Oui", Votes: 42}, {ID: s.id(), Text: "Non", Votes: 8}}},
	}

	s.decisions = []models.Decision{
		{ID: s.id(), Title: "Budget des associations", Content: "Le budget annuel des associations est reconduit.", Category: "Finances", Status: "ADOPTED", CreatedAt: models.NewTimestamp(now.Add(-15 * day))},
	}

	s.messages = []*models.Message{
		{ID: s.id(), SenderID: delegate.ID, RecipientID: student.ID, Content: "Bonjour Ama, ta réclamation est transmise.", Timestamp: models.NewTimestamp(now.Add(-time.Hour))},
		{ID: s.id(), SenderID: student.ID, RecipientID: delegate.ID, Content: "Merci !", Timestamp: models.NewTimestamp(now.Add(-30 * time.Minute)), IsRead: true},
	}
}
