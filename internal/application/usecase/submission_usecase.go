package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jarad-ux/eccocontrol-center/internal/application/dto"
	"github.com/jarad-ux/eccocontrol-center/internal/domain"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/entity"
	"github.com/jarad-ux/eccocontrol-center/internal/domain/repository"
	"github.com/jarad-ux/eccocontrol-center/pkg/jwt"
	"github.com/jarad-ux/eccocontrol-center/pkg/validation"
)

// Syncer forwards a persisted submission to the configured integrations in
// the background. Implemented by sync.Orchestrator.
type Syncer interface {
	ProcessAsync(submissionID string)
}

// WorkOrderGenerator renders a sale as a printable work order document.
type WorkOrderGenerator interface {
	GenerateWorkOrder(ctx context.Context, s *entity.Submission) ([]byte, error)
}

// SubmissionUseCase intake, listing and editing of sales submissions.
type SubmissionUseCase struct {
	repo   repository.SubmissionRepository
	syncer Syncer
	pdf    WorkOrderGenerator
}

// NewSubmissionUseCase builds the use case. syncer and pdf may be nil (no
// fan-out, no work orders), which the tests use.
func NewSubmissionUseCase(repo repository.SubmissionRepository, syncer Syncer, pdf WorkOrderGenerator) *SubmissionUseCase {
	return &SubmissionUseCase{repo: repo, syncer: syncer, pdf: pdf}
}

// Create validates and persists a submission, then hands it to the sync
// orchestrator. The response carries the row as initially persisted: status
// pending, no synced_at. The caller never waits on the fan-out.
func (uc *SubmissionUseCase) Create(ctx context.Context, id *jwt.Identity, in dto.CreateSubmissionRequest) (*dto.SubmissionResponse, *validation.Errors, error) {
	// Coerce the date-like string before validating the rest, so a bad date
	// shows up in the same field list as any missing fields.
	installDate, dateErr := parseInstallationDate(in.InstallationDate)

	verrs := validation.Struct(in)
	if dateErr != nil {
		if verrs == nil {
			verrs = &validation.Errors{}
		}
		verrs.Fields = append(verrs.Fields, validation.FieldError{
			Field:   "installationDate",
			Rule:    "date",
			Message: "installationDate must be an RFC 3339 timestamp or YYYY-MM-DD",
		})
	}
	if verrs == nil && !entity.ValidDivision(in.Division) {
		verrs = &validation.Errors{Fields: []validation.FieldError{{
			Field:   "division",
			Rule:    "oneof",
			Message: "division must be a known division code",
		}}}
	}
	if verrs != nil {
		return nil, verrs, nil
	}

	now := time.Now()
	s := &entity.Submission{
		ID: uuid.New().String(),

		CustomerFirstName: in.CustomerFirstName,
		CustomerLastName:  in.CustomerLastName,
		CustomerEmail:     in.CustomerEmail,
		CustomerPhone:     in.CustomerPhone,
		CustomerAddress:   in.CustomerAddress,
		CustomerCity:      in.CustomerCity,
		CustomerState:     in.CustomerState,
		CustomerZip:       in.CustomerZip,

		EquipmentType:  in.EquipmentType,
		Tonnage:        in.Tonnage,
		EquipmentNotes: in.EquipmentNotes,

		Division:       in.Division,
		LeadSource:     in.LeadSource,
		SaleAmount:     in.SaleAmount,
		FinancingBank:  in.FinancingBank,
		DownPayment:    in.DownPayment,
		MonthlyPayment: in.MonthlyPayment,

		InstallationDate:  installDate,
		InstallationNotes: in.InstallationNotes,

		SubmittedBy:     id.Subject,
		SubmittedByName: id.DisplayName(),
		SubmittedAt:     now,
		Status:          entity.StatusPending,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, nil, err
	}

	if uc.syncer != nil {
		uc.syncer.ProcessAsync(s.ID)
	}
	return toSubmissionResponse(s), nil, nil
}

// GetByID fetches one submission. Returns (nil, nil) when missing.
func (uc *SubmissionUseCase) GetByID(ctx context.Context, id string) (*dto.SubmissionResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toSubmissionResponse(s), nil
}

// WorkOrderPDF renders the submission as a work order document. Returns
// domain.ErrNotFound when the sale does not exist and domain.ErrNotConfigured
// when no generator is wired.
func (uc *SubmissionUseCase) WorkOrderPDF(ctx context.Context, id string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrNotConfigured
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	doc, err := uc.pdf.GenerateWorkOrder(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("render work order: %w", err)
	}
	return doc, nil
}

// ListFilters raw query-string filters for List.
type ListFilters struct {
	Division  string
	StartDate string
	EndDate   string
}

// List returns submissions newest-first. Division "all" (or empty) means no
// division filter; date bounds are inclusive on submitted_at.
func (uc *SubmissionUseCase) List(ctx context.Context, f ListFilters) ([]dto.SubmissionResponse, error) {
	filters := repository.SubmissionFilters{}
	if f.Division != "" && f.Division != entity.DivisionAll {
		filters.Division = f.Division
	}
	if f.StartDate != "" {
		t, err := parseDate(f.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: startDate: %s", domain.ErrInvalidInput, f.StartDate)
		}
		filters.StartDate = &t
	}
	if f.EndDate != "" {
		t, err := parseDate(f.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: endDate: %s", domain.ErrInvalidInput, f.EndDate)
		}
		filters.EndDate = &t
	}
	list, err := uc.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubmissionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toSubmissionResponse(s))
	}
	return out, nil
}

// Update applies an admin edit. Sync status is never touched here; a re-sync
// is not triggered by edits. Returns (nil, nil, nil) when the row is missing.
func (uc *SubmissionUseCase) Update(ctx context.Context, id string, in dto.UpdateSubmissionRequest) (*dto.SubmissionResponse, *validation.Errors, error) {
	if verrs := validation.Struct(in); verrs != nil {
		return nil, verrs, nil
	}
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if s == nil {
		return nil, nil, nil
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&s.CustomerFirstName, in.CustomerFirstName)
	applyString(&s.CustomerLastName, in.CustomerLastName)
	applyString(&s.CustomerEmail, in.CustomerEmail)
	applyString(&s.CustomerPhone, in.CustomerPhone)
	applyString(&s.CustomerAddress, in.CustomerAddress)
	applyString(&s.CustomerCity, in.CustomerCity)
	applyString(&s.CustomerState, in.CustomerState)
	applyString(&s.CustomerZip, in.CustomerZip)
	applyString(&s.EquipmentType, in.EquipmentType)
	applyString(&s.Tonnage, in.Tonnage)
	applyString(&s.EquipmentNotes, in.EquipmentNotes)
	applyString(&s.LeadSource, in.LeadSource)
	applyString(&s.FinancingBank, in.FinancingBank)
	applyString(&s.InstallationNotes, in.InstallationNotes)

	if in.Division != nil {
		if !entity.ValidDivision(*in.Division) {
			return nil, &validation.Errors{Fields: []validation.FieldError{{
				Field: "division", Rule: "oneof", Message: "division must be a known division code",
			}}}, nil
		}
		s.Division = *in.Division
	}
	if in.SaleAmount != nil {
		s.SaleAmount = *in.SaleAmount
	}
	if in.DownPayment != nil {
		s.DownPayment = *in.DownPayment
	}
	if in.MonthlyPayment != nil {
		s.MonthlyPayment = *in.MonthlyPayment
	}
	if in.InstallationDate != nil {
		t, err := parseInstallationDate(*in.InstallationDate)
		if err != nil {
			return nil, &validation.Errors{Fields: []validation.FieldError{{
				Field: "installationDate", Rule: "date",
				Message: "installationDate must be an RFC 3339 timestamp or YYYY-MM-DD",
			}}}, nil
		}
		s.InstallationDate = t
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, nil, err
	}
	return toSubmissionResponse(s), nil, nil
}

// parseInstallationDate coerces the form's date string. Empty means "not
// scheduled yet" and maps to nil.
func parseInstallationDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseDate accepts RFC 3339 or plain YYYY-MM-DD (local midnight).
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func toSubmissionResponse(s *entity.Submission) *dto.SubmissionResponse {
	if s == nil {
		return nil
	}
	return &dto.SubmissionResponse{
		ID: s.ID,

		CustomerFirstName: s.CustomerFirstName,
		CustomerLastName:  s.CustomerLastName,
		CustomerEmail:     s.CustomerEmail,
		CustomerPhone:     s.CustomerPhone,
		CustomerAddress:   s.CustomerAddress,
		CustomerCity:      s.CustomerCity,
		CustomerState:     s.CustomerState,
		CustomerZip:       s.CustomerZip,

		EquipmentType:  s.EquipmentType,
		Tonnage:        s.Tonnage,
		EquipmentNotes: s.EquipmentNotes,

		Division:       s.Division,
		LeadSource:     s.LeadSource,
		SaleAmount:     s.SaleAmount,
		FinancingBank:  s.FinancingBank,
		DownPayment:    s.DownPayment,
		MonthlyPayment: s.MonthlyPayment,

		InstallationDate:  s.InstallationDate,
		InstallationNotes: s.InstallationNotes,

		SubmittedBy:     s.SubmittedBy,
		SubmittedByName: s.SubmittedByName,
		SubmittedAt:     s.SubmittedAt,
		Status:          s.Status,
		SyncedAt:        s.SyncedAt,
	}
}
