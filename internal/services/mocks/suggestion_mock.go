// filepath: internal/services/mocks/suggestion_mock.go
package mocks

import (
	"daylog/internal/models"
	"daylog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockSuggestionService is a mock implementation of services.SuggestionService
type MockSuggestionService struct {
	mock.Mock
}

var _ services.SuggestionService = (*MockSuggestionService)(nil)

func (m *MockSuggestionService) Create(userID int64, req models.SuggestionRequest) (*models.Suggestion, error) {
	args := m.Called(userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) ListOwn(userID int64) ([]models.Suggestion, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) GetOwn(userID, id int64) (*models.Suggestion, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) ListAll() ([]models.Suggestion, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) Get(id int64) (*models.Suggestion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) Approve(id int64) (*models.Suggestion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) MarkDone(id int64) (*models.Suggestion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) SetIssueLink(id int64, link string) (*models.Suggestion, error) {
	args := m.Called(id, link)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Suggestion), args.Error(1)
}

func (m *MockSuggestionService) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}
