package repository

import (
	"context"
	"errors"

	"patientsapi/internal/model"
)

// ErrNotFound signals that a lookup or update target does not exist.
// Absence is a normal outcome for a well-formed id, not a store fault;
// callers check it with errors.Is.
var ErrNotFound = errors.New("patient not found")

// PatientRepository defines data access for patient records.
// No business logic here — strictly persistence operations. Validation
// happens earlier, at the boundary, so Add and Update fail only on
// store-level faults (Update additionally on ErrNotFound).
type PatientRepository interface {
	// GetAll returns every record in stable iteration order.
	GetAll(ctx context.Context) ([]model.Patient, error)

	// GetByID returns the record with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Patient, error)

	// GetPage returns one page of records plus pagination metadata,
	// computed over the full record count and a skip/take window.
	// Inputs are assumed positive; the boundary layer guards them.
	GetPage(ctx context.Context, pq PageQuery) (*Page[model.Patient], error)

	// Add assigns a fresh unique id, sets CreatedAt = UpdatedAt = now,
	// persists, and returns the stored record.
	Add(ctx context.Context, p *model.Patient) (*model.Patient, error)

	// AddMany is the bulk variant of Add, used for initial seeding.
	// It returns the count persisted. The batch is not transactional;
	// partial application on failure is acceptable.
	AddMany(ctx context.Context, patients []model.Patient) (int, error)

	// Update replaces the stored record matching p.ID with the supplied
	// field values, refreshes UpdatedAt, and returns the stored record.
	// Returns ErrNotFound when no record with that id exists.
	Update(ctx context.Context, p *model.Patient) (*model.Patient, error)
}

// PageQuery holds 1-based pagination parameters.
type PageQuery struct {
	PageNumber int
	PageSize   int
}

// Offset converts the 1-based page number into a skip count.
func (pq PageQuery) Offset() int {
	return (pq.PageNumber - 1) * pq.PageSize
}
