// filepath: internal/services/mocks/day_mock.go
package mocks

import (
	"daylog/internal/models"
	"daylog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockDayService is a mock implementation of services.DayService
type MockDayService struct {
	mock.Mock
}

var _ services.DayService = (*MockDayService)(nil)

func (m *MockDayService) Create(ownerID int64, req models.CreateDayRequest) (*models.Day, error) {
	args := m.Called(ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *MockDayService) GetByDate(ownerID int64, date string) (*models.DayWithAverage, error) {
	args := m.Called(ownerID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DayWithAverage), args.Error(1)
}

func (m *MockDayService) GetByID(ownerID, id int64) (*models.DayWithAverage, error) {
	args := m.Called(ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DayWithAverage), args.Error(1)
}

func (m *MockDayService) List(ownerID int64) ([]models.DayWithAverage, error) {
	args := m.Called(ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DayWithAverage), args.Error(1)
}

func (m *MockDayService) Overview(ownerID int64, ids []int64) ([]models.DayWithAverage, error) {
	args := m.Called(ownerID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DayWithAverage), args.Error(1)
}

func (m *MockDayService) Update(ownerID, id int64, req models.UpdateDayRequest) (*models.Day, error) {
	args := m.Called(ownerID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *MockDayService) Delete(ownerID, id int64) error {
	args := m.Called(ownerID, id)
	return args.Error(0)
}

func (m *MockDayService) DeleteAll(ownerID int64) error {
	args := m.Called(ownerID)
	return args.Error(0)
}
