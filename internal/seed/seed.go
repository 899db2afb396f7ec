// Package seed generates sample patient records for startup seeding.
// Seeding runs once at bootstrap and is not part of runtime behavior.
package seed

import (
	"context"
	"fmt"
	"time"

	"patientsapi/internal/model"
	"patientsapi/internal/repository"
)

// Patients builds n sample records. Ids and timestamps are left for the
// repository to assign on insert.
func Patients(n int) []model.Patient {
	patients := make([]model.Patient, 0, n)
	for i := 0; i < n; i++ {
		patients = append(patients, model.Patient{
			FirstName:   fmt.Sprintf("First Name %d", i),
			LastName:    fmt.Sprintf("Last Name %d", i),
			Gender:      "Male",
			Email:       fmt.Sprintf("patient%d@clinictocloud.com", i),
			Phone:       fmt.Sprintf("99999999%d", i),
			DateOfBirth: "1/1/2000",
			IsActive:    true,
		})
	}
	return patients
}

// Run inserts n sample records through the repository's bulk add and
// returns the count persisted. The batch is not transactional, so a
// failure can leave earlier records in place; that is acceptable for
// sample data.
func Run(ctx context.Context, repo repository.PatientRepository, n int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return repo.AddMany(ctx, Patients(n))
}
