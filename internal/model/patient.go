package model

import "time"

// Patient represents one patient demographic record.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, repository) without coupling to persistence.
type Patient struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      string    `json:"gender"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	DateOfBirth string    `json:"date_of_birth"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PatientInput is the wire record accepted on create and update.
// IsActive is a pointer so that an absent flag is distinguishable from
// an explicit false; validation rejects the absent case. The ID field is
// accepted but ignored for matching; the path identifier is authoritative.
type PatientInput struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	IsActive    *bool  `json:"is_active"`
}

// ToPatient maps the wire record onto a new Patient, field by field.
// ID and timestamps are left zero; the repository assigns them on Add.
// Callers must have validated the input first: a nil IsActive dereference
// is a programming error, not a runtime condition.
func (in *PatientInput) ToPatient() Patient {
	return Patient{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Gender:      in.Gender,
		Email:       in.Email,
		Phone:       in.Phone,
		DateOfBirth: in.DateOfBirth,
		IsActive:    *in.IsActive,
	}
}

// ApplyTo overwrites all mutable fields of dst from the input.
// ID, CreatedAt and UpdatedAt are untouched; the repository refreshes
// UpdatedAt when the record is persisted.
func (in *PatientInput) ApplyTo(dst *Patient) {
	dst.FirstName = in.FirstName
	dst.LastName = in.LastName
	dst.Gender = in.Gender
	dst.Email = in.Email
	dst.Phone = in.Phone
	dst.DateOfBirth = in.DateOfBirth
	dst.IsActive = *in.IsActive
}
