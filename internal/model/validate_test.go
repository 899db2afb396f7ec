package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validInput() *PatientInput {
	active := true
	return &PatientInput{
		FirstName:   "First Name",
		LastName:    "Last Name",
		Gender:      "Male",
		Email:       "patient@clinictocloud.com",
		Phone:       "999999990",
		DateOfBirth: "1/1/2000",
		IsActive:    &active,
	}
}

func TestIsValidPatient(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *PatientInput)
		want   bool
	}{
		{
			name:   "fully populated",
			mutate: func(in *PatientInput) {},
			want:   true,
		},
		{
			name: "explicit false is_active is still present",
			mutate: func(in *PatientInput) {
				inactive := false
				in.IsActive = &inactive
			},
			want: true,
		},
		{
			name:   "missing is_active",
			mutate: func(in *PatientInput) { in.IsActive = nil },
			want:   false,
		},
		{
			name:   "missing first name",
			mutate: func(in *PatientInput) { in.FirstName = "" },
			want:   false,
		},
		{
			name:   "missing last name",
			mutate: func(in *PatientInput) { in.LastName = "" },
			want:   false,
		},
		{
			name:   "missing date of birth",
			mutate: func(in *PatientInput) { in.DateOfBirth = "" },
			want:   false,
		},
		{
			name:   "missing email",
			mutate: func(in *PatientInput) { in.Email = "" },
			want:   false,
		},
		{
			name:   "missing gender",
			mutate: func(in *PatientInput) { in.Gender = "" },
			want:   false,
		},
		{
			name:   "missing phone",
			mutate: func(in *PatientInput) { in.Phone = "" },
			want:   false,
		},
		{
			name: "whitespace-only field counts as present",
			mutate: func(in *PatientInput) {
				// Presence is an exact non-empty check; no trimming.
				in.FirstName = " "
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)
			assert.Equal(t, tt.want, IsValidPatient(in))
		})
	}
}

func TestIsValidPatient_NilCandidate(t *testing.T) {
	assert.False(t, IsValidPatient(nil))
}

func TestPatientInput_ToPatient(t *testing.T) {
	in := validInput()

	p := in.ToPatient()

	assert.Empty(t, p.ID)
	assert.True(t, p.CreatedAt.IsZero())
	assert.True(t, p.UpdatedAt.IsZero())
	assert.Equal(t, in.FirstName, p.FirstName)
	assert.Equal(t, in.LastName, p.LastName)
	assert.Equal(t, in.Gender, p.Gender)
	assert.Equal(t, in.Email, p.Email)
	assert.Equal(t, in.Phone, p.Phone)
	assert.Equal(t, in.DateOfBirth, p.DateOfBirth)
	assert.True(t, p.IsActive)
}

func TestPatientInput_ApplyTo(t *testing.T) {
	in := validInput()
	in.ID = "payload-id-to-ignore"
	inactive := false
	in.IsActive = &inactive

	existing := Patient{
		ID:          "stored-id",
		FirstName:   "Old",
		LastName:    "Record",
		Gender:      "Female",
		Email:       "old@clinictocloud.com",
		Phone:       "111111111",
		DateOfBirth: "2/2/1990",
		IsActive:    true,
	}
	created, updated := existing.CreatedAt, existing.UpdatedAt

	in.ApplyTo(&existing)

	assert.Equal(t, "stored-id", existing.ID)
	assert.Equal(t, created, existing.CreatedAt)
	assert.Equal(t, updated, existing.UpdatedAt)
	assert.Equal(t, in.FirstName, existing.FirstName)
	assert.Equal(t, in.LastName, existing.LastName)
	assert.Equal(t, in.Gender, existing.Gender)
	assert.Equal(t, in.Email, existing.Email)
	assert.Equal(t, in.Phone, existing.Phone)
	assert.Equal(t, in.DateOfBirth, existing.DateOfBirth)
	assert.False(t, existing.IsActive)
}
