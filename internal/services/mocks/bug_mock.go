// filepath: internal/services/mocks/bug_mock.go
package mocks

import (
	"daylog/internal/models"
	"daylog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockBugService is a mock implementation of services.BugService
type MockBugService struct {
	mock.Mock
}

var _ services.BugService = (*MockBugService)(nil)

func (m *MockBugService) Create(userID int64, req models.BugRequest) (*models.Bug, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bug), args.Error(1)
}

func (m *MockBugService) ListOwn(userID int64) ([]models.Bug, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bug), args.Error(1)
}

func (m *MockBugService) GetOwn(userID, id int64) (*models.Bug, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bug), args.Error(1)
}

func (m *MockBugService) ListAll() ([]models.Bug, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bug), args.Error(1)
}

func (m *MockBugService) Get(id int64) (*models.Bug, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bug), args.Error(1)
}

func (m *MockBugService) Approve(id int64) (*models.Bug, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bug), args.Error(1)
}

func (m *MockBugService) MarkDone(id int64) (*models.Bug, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bug), args.Error(1)
}

func (m *MockBugService) SetIssueLink(id int64, link string) (*models.Bug, error) {
	args := m.Called(id, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Bug), args.Error(1)
}

func (m *MockBugService) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}
