package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"patientsapi/internal/model"
	"patientsapi/internal/repository"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) GetAll(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetPage(ctx context.Context, pq repository.PageQuery) (*repository.Page[model.Patient], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Page[model.Patient]), args.Error(1)
}

func (m *MockPatientRepository) Add(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) AddMany(ctx context.Context, patients []model.Patient) (int, error) {
	args := m.Called(ctx, patients)
	return args.Int(0), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, p *model.Patient) (*model.Patient, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}
