package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"patientsapi/internal/model"
	"patientsapi/internal/repository"
)

const patientColumns = `id, first_name, last_name, gender, email, phone, date_of_birth, is_active, created_at, updated_at`

// PatientPostgres is a PostgreSQL implementation of repository.PatientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type PatientPostgres struct {
	db *sql.DB
}

// NewPatientPostgres creates a new PatientPostgres repository.
func NewPatientPostgres(db *sql.DB) *PatientPostgres {
	return &PatientPostgres{db: db}
}

var _ repository.PatientRepository = (*PatientPostgres)(nil)

func scanPatient(row interface{ Scan(dest ...any) error }, p *model.Patient) error {
	return row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Gender,
		&p.Email,
		&p.Phone,
		&p.DateOfBirth,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

// GetAll returns every patient row in insertion-stable order.
func (r *PatientPostgres) GetAll(ctx context.Context) ([]model.Patient, error) {
	const q = `
		SELECT ` + patientColumns + `
		FROM patients
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]model.Patient, 0)
	for rows.Next() {
		var p model.Patient
		if err := scanPatient(rows, &p); err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return patients, nil
}

// GetByID fetches a single patient by id, returning repository.ErrNotFound
// when the row does not exist.
func (r *PatientPostgres) GetByID(ctx context.Context, id string) (*model.Patient, error) {
	const q = `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE id = $1
	`
	var p model.Patient
	if err := scanPatient(r.db.QueryRowContext(ctx, q, id), &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetPage returns one page of patients using LIMIT/OFFSET and the full
// row count. A window beyond the last row yields an empty item list.
func (r *PatientPostgres) GetPage(ctx context.Context, pq repository.PageQuery) (*repository.Page[model.Patient], error) {
	const qCount = `SELECT COUNT(*) FROM patients`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + patientColumns + `
		FROM patients
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.PageSize, pq.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Patient, 0)
	for rows.Next() {
		var p model.Patient
		if err := scanPatient(rows, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return repository.NewPage(items, total, pq.PageNumber, pq.PageSize), nil
}

// Add inserts a new patient row with a fresh id and both timestamps set
// to the current time, returning the stored record.
func (r *PatientPostgres) Add(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	const q = `
		INSERT INTO patients (` + patientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + patientColumns + `
	`
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx, q,
		uuid.New().String(),
		p.FirstName,
		p.LastName,
		p.Gender,
		p.Email,
		p.Phone,
		p.DateOfBirth,
		p.IsActive,
		now,
		now,
	)
	var out model.Patient
	if err := scanPatient(row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddMany inserts the given records one by one and returns the count
// persisted. The batch is not transactional: on failure the rows already
// inserted stay in place and the count reflects them.
func (r *PatientPostgres) AddMany(ctx context.Context, patients []model.Patient) (int, error) {
	count := 0
	for i := range patients {
		if _, err := r.Add(ctx, &patients[i]); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// Update replaces all mutable fields of the row matching p.ID and
// refreshes updated_at. Returns repository.ErrNotFound when no row
// matches.
func (r *PatientPostgres) Update(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	const q = `
		UPDATE patients
		SET first_name = $2,
		    last_name = $3,
		    gender = $4,
		    email = $5,
		    phone = $6,
		    date_of_birth = $7,
		    is_active = $8,
		    updated_at = $9
		WHERE id = $1
		RETURNING ` + patientColumns + `
	`
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.FirstName,
		p.LastName,
		p.Gender,
		p.Email,
		p.Phone,
		p.DateOfBirth,
		p.IsActive,
		time.Now().UTC(),
	)
	var out model.Patient
	if err := scanPatient(row, &out); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}
