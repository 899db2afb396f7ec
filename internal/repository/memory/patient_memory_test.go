package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patientsapi/internal/model"
	"patientsapi/internal/repository"
)

func samplePatient(i byte) model.Patient {
	return model.Patient{
		FirstName:   "First Name " + string('0'+i),
		LastName:    "Last Name " + string('0'+i),
		Gender:      "Male",
		Email:       "patient@clinictocloud.com",
		Phone:       "999999990",
		DateOfBirth: "1/1/2000",
		IsActive:    true,
	}
}

func seeded(t *testing.T, n byte) *PatientMemory {
	t.Helper()
	repo := NewPatientMemory()
	for i := byte(0); i < n; i++ {
		p := samplePatient(i)
		_, err := repo.Add(context.Background(), &p)
		require.NoError(t, err)
	}
	return repo
}

func TestPatientMemory_AddAssignsIdentityAndTimestamps(t *testing.T) {
	repo := NewPatientMemory()
	ctx := context.Background()

	p := samplePatient(1)
	stored, err := repo.Add(ctx, &p)

	require.NoError(t, err)
	_, err = uuid.Parse(stored.ID)
	assert.NoError(t, err)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)

	// Caller-supplied struct stays untouched.
	assert.Empty(t, p.ID)
}

func TestPatientMemory_RoundTrip(t *testing.T) {
	repo := NewPatientMemory()
	ctx := context.Background()

	p := samplePatient(1)
	stored, err := repo.Add(ctx, &p)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestPatientMemory_GetByID_NotFound(t *testing.T) {
	repo := NewPatientMemory()

	got, err := repo.GetByID(context.Background(), uuid.New().String())

	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, got)
}

func TestPatientMemory_GetAll_InsertionOrder(t *testing.T) {
	repo := seeded(t, 3)

	patients, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "First Name 0", patients[0].FirstName)
	assert.Equal(t, "First Name 1", patients[1].FirstName)
	assert.Equal(t, "First Name 2", patients[2].FirstName)
}

func TestPatientMemory_GetPage(t *testing.T) {
	repo := seeded(t, 4)
	ctx := context.Background()

	t.Run("first page", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.PageQuery{PageNumber: 1, PageSize: 2})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.Equal(t, 4, page.TotalCount)
		assert.Equal(t, 2, page.TotalPages)
		assert.False(t, page.HasPreviousPage())
		assert.True(t, page.HasNextPage())
		assert.Equal(t, "First Name 0", page.Items[0].FirstName)
	})

	t.Run("second page holds the remainder", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.PageQuery{PageNumber: 2, PageSize: 2})

		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
		assert.True(t, page.HasPreviousPage())
		assert.False(t, page.HasNextPage())
		assert.Equal(t, "First Name 2", page.Items[0].FirstName)
	})

	t.Run("page beyond the end is empty not an error", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.PageQuery{PageNumber: 9, PageSize: 2})

		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.False(t, page.HasNextPage())
	})

	t.Run("short final page", func(t *testing.T) {
		page, err := repo.GetPage(ctx, repository.PageQuery{PageNumber: 2, PageSize: 3})

		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 2, page.TotalPages)
	})
}

func TestPatientMemory_AddMany(t *testing.T) {
	repo := NewPatientMemory()

	batch := []model.Patient{samplePatient(0), samplePatient(1), samplePatient(2)}
	count, err := repo.AddMany(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, 3, count)

	patients, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, patients, 3)
}

func TestPatientMemory_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces fields and refreshes UpdatedAt", func(t *testing.T) {
		repo := NewPatientMemory()
		base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		current := base
		repo.now = func() time.Time { return current }

		p := samplePatient(1)
		stored, err := repo.Add(ctx, &p)
		require.NoError(t, err)

		current = base.Add(time.Hour)
		changed := *stored
		changed.FirstName = "Renamed"
		updated, err := repo.Update(ctx, &changed)

		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.FirstName)
		assert.Equal(t, base, updated.CreatedAt)
		assert.Equal(t, base.Add(time.Hour), updated.UpdatedAt)
	})

	t.Run("identical payload still refreshes UpdatedAt", func(t *testing.T) {
		repo := NewPatientMemory()
		base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		current := base
		repo.now = func() time.Time { return current }

		p := samplePatient(1)
		stored, err := repo.Add(ctx, &p)
		require.NoError(t, err)

		current = base.Add(time.Minute)
		first, err := repo.Update(ctx, stored)
		require.NoError(t, err)

		current = base.Add(2 * time.Minute)
		second, err := repo.Update(ctx, stored)
		require.NoError(t, err)

		assert.Equal(t, first.FirstName, second.FirstName)
		assert.NotEqual(t, first.UpdatedAt, second.UpdatedAt)
	})

	t.Run("missing record", func(t *testing.T) {
		repo := NewPatientMemory()

		updated, err := repo.Update(ctx, &model.Patient{ID: uuid.New().String()})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, updated)
	})
}
