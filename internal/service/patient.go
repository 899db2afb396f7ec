package service

import (
	"context"
	"errors"

	"patientsapi/internal/model"
	"patientsapi/internal/repository"
)

var (
	ErrIDRequired     = errors.New("id is required")
	ErrNotFound       = errors.New("patient not found")
	ErrInvalidPatient = errors.New("patient payload is missing required fields")
)

// Defaults applied when GetPage is invoked with non-positive parameters.
// The HTTP boundary rejects such requests before they reach this layer;
// the defaults cover direct callers only.
const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
)

// PatientPageResult is the service-level DTO for one page of patients.
// It mirrors the page metadata without exposing repository types.
type PatientPageResult struct {
	Patients        []model.Patient `json:"patients"`
	PageNumber      int             `json:"pageNumber"`
	PageSize        int             `json:"pageSize"`
	TotalCount      int             `json:"totalCount"`
	TotalPages      int             `json:"totalPages"`
	HasPreviousPage bool            `json:"hasPreviousPage"`
	HasNextPage     bool            `json:"hasNextPage"`
}

// PatientService defines the use cases for handling patient records.
type PatientService interface {
	// List returns all records in store iteration order.
	List(ctx context.Context) ([]model.Patient, error)

	// Get returns a single record by id; absence yields ErrNotFound.
	Get(ctx context.Context, id string) (*model.Patient, error)

	// GetPage returns one freshly computed page. Non-positive inputs
	// fall back to DefaultPageNumber/DefaultPageSize.
	GetPage(ctx context.Context, pageNumber, pageSize int) (*PatientPageResult, error)

	// Create validates the payload and persists a new record. Invalid
	// payloads yield ErrInvalidPatient with no store mutation.
	Create(ctx context.Context, in *model.PatientInput) (*model.Patient, error)

	// Update validates the payload, then replaces all mutable fields of
	// the record addressed by id. Validation failures win over absence;
	// the payload id is ignored for matching.
	Update(ctx context.Context, id string, in *model.PatientInput) (*model.Patient, error)
}

// patientService is a concrete implementation of PatientService.
type patientService struct {
	repo repository.PatientRepository
}

// NewPatientService constructs a new PatientService.
func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) List(ctx context.Context) ([]model.Patient, error) {
	return s.repo.GetAll(ctx)
}

func (s *patientService) Get(ctx context.Context, id string) (*model.Patient, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) GetPage(ctx context.Context, pageNumber, pageSize int) (*PatientPageResult, error) {
	if pageNumber <= 0 {
		pageNumber = DefaultPageNumber
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	page, err := s.repo.GetPage(ctx, repository.PageQuery{PageNumber: pageNumber, PageSize: pageSize})
	if err != nil {
		return nil, err
	}
	return &PatientPageResult{
		Patients:        page.Items,
		PageNumber:      page.PageNumber,
		PageSize:        page.PageSize,
		TotalCount:      page.TotalCount,
		TotalPages:      page.TotalPages,
		HasPreviousPage: page.HasPreviousPage(),
		HasNextPage:     page.HasNextPage(),
	}, nil
}

func (s *patientService) Create(ctx context.Context, in *model.PatientInput) (*model.Patient, error) {
	if !model.IsValidPatient(in) {
		return nil, ErrInvalidPatient
	}
	p := in.ToPatient()
	return s.repo.Add(ctx, &p)
}

func (s *patientService) Update(ctx context.Context, id string, in *model.PatientInput) (*model.Patient, error) {
	// Validation is checked before existence so an invalid payload is a
	// validation error even when the target record is absent.
	if !model.IsValidPatient(in) {
		return nil, ErrInvalidPatient
	}
	if id == "" {
		return nil, ErrIDRequired
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	in.ApplyTo(existing)
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}
