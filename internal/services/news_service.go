// filepath: internal/services/news_service.go
package services

import (
	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/repository"
)

var _ NewsService = (*newsService)(nil)

// newsService handles the admin-curated news feed.
type newsService struct {
	Repo *repository.Repository
}

// NewNewsService creates a new NewsService.
func NewNewsService(repo *repository.Repository) *newsService {
	return &newsService{Repo: repo}
}

// Create publishes a news entry. Admin only.
func (s *newsService) Create(req models.NewsRequest) (*models.News, error) {
	if err := validateLength("title", req.Title, 5, 100); err != nil {
		return nil, err
	}
	if err := validateLength("description", req.Description, 20, 1000); err != nil {
		return nil, err
	}
	created, err := s.Repo.CreateNews(&models.News{Title: req.Title, Description: req.Description})
	if err != nil {
		return nil, err
	}
	logging.Log.Infof("NewsService: published news %d: %s", created.ID, created.Title)
	return created, nil
}

// List returns the full news feed, newest first.
func (s *newsService) List() ([]models.News, error) {
	return s.Repo.GetNews()
}

// GetByID returns a single news entry.
func (s *newsService) GetByID(id int64) (*models.News, error) {
	return s.Repo.GetNewsByID(id)
}

// Delete removes one news entry. Admin only.
func (s *newsService) Delete(id int64) error {
	return s.Repo.DeleteNews(id)
}

// DeleteAll clears the news feed. Admin only.
func (s *newsService) DeleteAll() error {
	logging.Log.Info("NewsService: clearing all news")
	return s.Repo.DeleteAllNews()
}
