package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/unigov-client/internal/models"
	appErrors "github.com/noah-isme/unigov-client/pkg/errors"
	"github.com/noah-isme/unigov-client/pkg/export"
)

type complaintAPI interface {
	GetComplaints(ctx context.Context) ([]models.Complaint, error)
	GetMyComplaints(ctx context.Context) ([]models.Complaint, error)
	GetComplaintByID(ctx context.Context, id string) (*models.Complaint, error)
	CreateComplaint(ctx context.Context, req models.CreateComplaintRequest) (*models.Complaint, error)
	UpdateComplaintStatus(ctx context.Context, id string, req models.UpdateComplaintStatusRequest) (*models.Complaint, error)
	DeleteComplaint(ctx context.Context, id string) error
}

// ExportFile is a rendered complaint export ready to be written to disk.
type ExportFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ComplaintService backs the complaint list, detail and creation pages.
type ComplaintService struct {
	api       complaintAPI
	validator *validator.Validate
	logger    *zap.Logger
}

// NewComplaintService constructs the service.
func NewComplaintService(api complaintAPI, validate *validator.Validate, logger *zap.Logger) *ComplaintService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintService{api: api, validator: validate, logger: logger}
}

// List loads every complaint, or only the caller's when mine is set.
func (s *ComplaintService) List(ctx context.Context, mine bool) View[[]models.Complaint] {
	fetch := s.api.GetComplaints
	if mine {
		fetch = s.api.GetMyComplaints
	}
	complaints, err := fetch(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch complaints", zap.Bool("mine", mine), zap.Error(err))
		return loaded([]models.Complaint{}, err)
	}
	return loaded(complaints, nil)
}

// Detail loads one complaint. A failed fetch leaves Data nil.
func (s *ComplaintService) Detail(ctx context.Context, id string) View[*models.Complaint] {
	id = strings.TrimSpace(id)
	if id == "" {
		return loaded[*models.Complaint](nil, appErrors.Clone(appErrors.ErrValidation, "complaint id is required"))
	}
	complaint, err := s.api.GetComplaintByID(ctx, id)
	if err != nil {
		s.logger.Warn("failed to fetch complaint", zap.String("id", id), zap.Error(err))
		return loaded[*models.Complaint](nil, err)
	}
	return loaded(complaint, nil)
}

// Create files a new complaint.
func (s *ComplaintService) Create(ctx context.Context, req models.CreateComplaintRequest) (*models.Complaint, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Category = strings.TrimSpace(req.Category)
	req.Priority = strings.ToUpper(strings.TrimSpace(req.Priority))
	if err := validateStruct(s.validator, req, "title, description and category are required"); err != nil {
		return nil, err
	}
	return s.api.CreateComplaint(ctx, req)
}

// UpdateStatus moves a complaint through PENDING, IN_PROGRESS and RESOLVED.
func (s *ComplaintService) UpdateStatus(ctx context.Context, id string, status models.ComplaintStatus, response string) (*models.Complaint, error) {
	req := models.UpdateComplaintStatusRequest{
		Status:   models.ComplaintStatus(strings.ToUpper(strings.TrimSpace(string(status)))),
		Response: strings.TrimSpace(response),
	}
	if err := validateStruct(s.validator, req, "invalid complaint status"); err != nil {
		return nil, err
	}
	return s.api.UpdateComplaintStatus(ctx, id, req)
}

// Delete removes a complaint.
func (s *ComplaintService) Delete(ctx context.Context, id string) error {
	return s.api.DeleteComplaint(ctx, id)
}

// Export renders one complaint as CSV or PDF.
func (s *ComplaintService) Export(ctx context.Context, id string, format export.Format) (*ExportFile, error) {
	complaint, err := s.api.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data := export.KeyValue([][2]string{
		{"ID", complaint.ID},
		{"Title", complaint.Title},
		{"Category", complaint.Category},
		{"Priority", complaint.Priority},
		{"Status", string(complaint.Status)},
		{"Student", complaint.StudentName},
		{"Department", complaint.StudentDepartment},
		{"Created", complaint.CreatedAt.Format("2006-01-02 15:04")},
		{"Description", complaint.Description},
		{"Response", complaint.Response},
	})

	content, err := export.Render(format, data, fmt.Sprintf("Complaint %s", complaint.ID))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	contentType := "text/csv"
	if format == export.FormatPDF {
		contentType = "application/pdf"
	}
	return &ExportFile{
		Filename:    "complaint-" + complaint.ID + format.Extension(),
		ContentType: contentType,
		Content:     content,
	}, nil
}
