// filepath: internal/services/mocks/effect_mock.go
package mocks

import (
	"daylog/internal/models"
	"daylog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockEffectService is a mock implementation of services.EffectService
type MockEffectService struct {
	mock.Mock
}

var _ services.EffectService = (*MockEffectService)(nil)

func (m *MockEffectService) Create(ownerID int64, req models.CreateEffectRequest) (*models.Effect, error) {
	args := m.Called(ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Effect), args.Error(1)
}

func (m *MockEffectService) List(ownerID int64) ([]models.Effect, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Effect), args.Error(1)
}

func (m *MockEffectService) GetByID(ownerID, id int64) (*models.Effect, error) {
	args := m.Called(ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Effect), args.Error(1)
}

func (m *MockEffectService) ListByDay(ownerID, dayID int64) ([]models.Effect, error) {
	args := m.Called(ownerID, dayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Effect), args.Error(1)
}

func (m *MockEffectService) Filter(ownerID int64, rates []int) ([]models.Effect, error) {
	args := m.Called(ownerID, rates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Effect), args.Error(1)
}

func (m *MockEffectService) Average(ownerID, dayID int64) (*models.EffectAverage, error) {
	args := m.Called(ownerID, dayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EffectAverage), args.Error(1)
}

func (m *MockEffectService) Update(ownerID, id int64, req models.UpdateEffectRequest) (*models.Effect, error) {
	args := m.Called(ownerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Effect), args.Error(1)
}

func (m *MockEffectService) Delete(ownerID, id int64) error {
	args := m.Called(ownerID, id)
	return args.Error(0)
}

func (m *MockEffectService) DeleteByDay(ownerID, dayID int64) error {
	args := m.Called(ownerID, dayID)
	return args.Error(0)
}

func (m *MockEffectService) DeleteAll(ownerID int64) error {
	args := m.Called(ownerID)
	return args.Error(0)
}
