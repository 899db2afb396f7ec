package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"patientsapi/internal/model"
	"patientsapi/internal/repository"
)

// PatientMemory is an in-memory implementation of repository.PatientRepository.
// Records live in a map keyed by id with a separate slice preserving
// insertion order, so iteration and paging stay stable across reads.
// All operations are guarded by a single mutex; each call is one atomic
// store operation, there are no multi-record transactional guarantees.
//
// The store instance is constructed explicitly and injected; nothing is
// process-global. Records persist for the lifetime of the instance.
type PatientMemory struct {
	mu       sync.RWMutex
	patients map[string]model.Patient
	order    []string

	// now is swappable in tests that need deterministic timestamps.
	now func() time.Time
}

// NewPatientMemory creates an empty in-memory repository.
func NewPatientMemory() *PatientMemory {
	return &PatientMemory{
		patients: make(map[string]model.Patient),
		order:    make([]string, 0),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

var _ repository.PatientRepository = (*PatientMemory)(nil)

// GetAll returns every record in insertion order.
func (r *PatientMemory) GetAll(ctx context.Context) ([]model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]model.Patient, 0, len(r.order))
	for _, id := range r.order {
		patients = append(patients, r.patients[id])
	}
	return patients, nil
}

// GetByID returns the record with the given id, or repository.ErrNotFound.
func (r *PatientMemory) GetByID(ctx context.Context, id string) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

// GetPage slices the insertion-ordered record set with the requested
// skip/take window. Windows beyond the end yield short or empty pages.
func (r *PatientMemory) GetPage(ctx context.Context, pq repository.PageQuery) (*repository.Page[model.Patient], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	start := pq.Offset()
	if start > total {
		start = total
	}
	end := start + pq.PageSize
	if end > total {
		end = total
	}

	items := make([]model.Patient, 0, end-start)
	for _, id := range r.order[start:end] {
		items = append(items, r.patients[id])
	}
	return repository.NewPage(items, total, pq.PageNumber, pq.PageSize), nil
}

// Add stores a copy of the record under a fresh id with both timestamps
// set to the current time, and returns the stored copy.
func (r *PatientMemory) Add(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	stored.ID = uuid.New().String()
	now := r.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.patients[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	out := stored
	return &out, nil
}

// AddMany stores each record in turn and returns the count persisted.
func (r *PatientMemory) AddMany(ctx context.Context, patients []model.Patient) (int, error) {
	count := 0
	for i := range patients {
		if _, err := r.Add(ctx, &patients[i]); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Update replaces all mutable fields of the stored record matching p.ID,
// keeps the original id and CreatedAt, and refreshes UpdatedAt.
func (r *PatientMemory) Update(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.patients[p.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}

	stored := *p
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.now()
	r.patients[stored.ID] = stored

	out := stored
	return &out, nil
}
