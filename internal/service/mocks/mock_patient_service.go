package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"patientsapi/internal/model"
	"patientsapi/internal/service"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) List(ctx context.Context) ([]model.Patient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientService) Get(ctx context.Context, id string) (*model.Patient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) GetPage(ctx context.Context, pageNumber, pageSize int) (*service.PatientPageResult, error) {
	args := m.Called(ctx, pageNumber, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PatientPageResult), args.Error(1)
}

func (m *MockPatientService) Create(ctx context.Context, in *model.PatientInput) (*model.Patient, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientService) Update(ctx context.Context, id string, in *model.PatientInput) (*model.Patient, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}
