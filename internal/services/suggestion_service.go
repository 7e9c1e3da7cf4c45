// filepath: internal/services/suggestion_service.go
package services

import (
	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/repository"
)

var _ SuggestionService = (*suggestionService)(nil)

// suggestionService handles user-filed suggestions and admin moderation.
type suggestionService struct {
	Repo *repository.Repository
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(repo *repository.Repository) *suggestionService {
	return &suggestionService{Repo: repo}
}

// Create files a new suggestion for the user.
func (s *suggestionService) Create(userID int64, req models.SuggestionRequest) (*models.Suggestion, error) {
	if err := validateLength("description", req.Description, 30, 300); err != nil {
		return nil, err
	}
	user, err := s.Repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	sug := &models.Suggestion{
		Username:    user.Username,
		UserID:      userID,
		Description: req.Description,
	}
	created, err := s.Repo.CreateSuggestion(sug)
	if err != nil {
		return nil, err
	}
	logging.Log.Infof("SuggestionService: user %d filed suggestion %d", userID, created.ID)
	return created, nil
}

// ListOwn returns the suggestions filed by the user.
func (s *suggestionService) ListOwn(userID int64) ([]models.Suggestion, error) {
	return s.Repo.GetSuggestionsByOwner(userID)
}

// GetOwn returns one of the user's own suggestions.
func (s *suggestionService) GetOwn(userID, id int64) (*models.Suggestion, error) {
	return s.Repo.GetSuggestionByIDForOwner(userID, id)
}

// ListAll returns every suggestion. Admin only.
func (s *suggestionService) ListAll() ([]models.Suggestion, error) {
	return s.Repo.GetSuggestions()
}

// Get returns any suggestion by ID. Admin only.
func (s *suggestionService) Get(id int64) (*models.Suggestion, error) {
	return s.Repo.GetSuggestionByID(id)
}

// Approve marks a suggestion as accepted for work.
func (s *suggestionService) Approve(id int64) (*models.Suggestion, error) {
	if err := s.Repo.SetSuggestionApproved(id); err != nil {
		return nil, err
	}
	return s.Repo.GetSuggestionByID(id)
}

// MarkDone marks a suggestion as implemented.
func (s *suggestionService) MarkDone(id int64) (*models.Suggestion, error) {
	if err := s.Repo.SetSuggestionDone(id); err != nil {
		return nil, err
	}
	return s.Repo.GetSuggestionByID(id)
}

// SetIssueLink attaches an external issue tracker URL to a suggestion.
func (s *suggestionService) SetIssueLink(id int64, link string) (*models.Suggestion, error) {
	if err := validateLength("issue_link", link, 1, 300); err != nil {
		return nil, err
	}
	if err := s.Repo.SetSuggestionIssueLink(id, link); err != nil {
		return nil, err
	}
	return s.Repo.GetSuggestionByID(id)
}

// Delete removes a suggestion. Admin only.
func (s *suggestionService) Delete(id int64) error {
	return s.Repo.DeleteSuggestion(id)
}
