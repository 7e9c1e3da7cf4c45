// filepath: internal/services/mocks/news_mock.go
package mocks

import (
	"daylog/internal/models"
	"daylog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockNewsService is a mock implementation of services.NewsService
type MockNewsService struct {
	mock.Mock
}

var _ services.NewsService = (*MockNewsService)(nil)

func (m *MockNewsService) Create(req models.NewsRequest) (*models.News, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) List() ([]models.News, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.News), args.Error(1)
}

func (m *MockNewsService) GetByID(id int64) (*models.News, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.News), args.Error(1)
}

func (m *MockNewsService) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockNewsService) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}
