package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patientsapi/internal/model"
	"patientsapi/internal/repository/memory"
)

func TestPatients(t *testing.T) {
	patients := Patients(100)

	require.Len(t, patients, 100)
	assert.Equal(t, "First Name 0", patients[0].FirstName)
	assert.Equal(t, "patient99@clinictocloud.com", patients[99].Email)

	for _, p := range patients {
		assert.Empty(t, p.ID)
		assert.True(t, p.CreatedAt.IsZero())
		assert.True(t, p.IsActive)
	}
}

func TestPatients_Zero(t *testing.T) {
	assert.Empty(t, Patients(0))
}

func TestRun(t *testing.T) {
	repo := memory.NewPatientMemory()

	count, err := Run(context.Background(), repo, 10)

	require.NoError(t, err)
	assert.Equal(t, 10, count)

	patients, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 10)

	// Every seeded record passes the same validation gate real writes do.
	for _, p := range patients {
		active := p.IsActive
		in := &model.PatientInput{
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			Gender:      p.Gender,
			Email:       p.Email,
			Phone:       p.Phone,
			DateOfBirth: p.DateOfBirth,
			IsActive:    &active,
		}
		assert.True(t, model.IsValidPatient(in))
	}
}
