// filepath: internal/services/bug_service.go
package services

import (
	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/repository"
)

var _ BugService = (*bugService)(nil)

// bugService handles user-filed bug reports and admin moderation.
type bugService struct {
	Repo *repository.Repository
}

// NewBugService creates a new BugService.
func NewBugService(repo *repository.Repository) *bugService {
	return &bugService{Repo: repo}
}

// Create files a new bug report for the user.
func (s *bugService) Create(userID int64, req models.BugRequest) (*models.Bug, error) {
	if err := validateLength("title", req.Title, 5, 30); err != nil {
		return nil, err
	}
	if err := validateLength("description", req.Description, 50, 300); err != nil {
		return nil, err
	}
	user, err := s.Repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	bug := &models.Bug{
		Username:    user.Username,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	created, err := s.Repo.CreateBug(bug)
	if err != nil {
		return nil, err
	}
	logging.Log.Infof("BugService: user %d filed bug %d", userID, created.ID)
	return created, nil
}

// ListOwn returns the bugs filed by the user.
func (s *bugService) ListOwn(userID int64) ([]models.Bug, error) {
	return s.Repo.GetBugsByOwner(userID)
}

// GetOwn returns one of the user's own bugs.
func (s *bugService) GetOwn(userID, id int64) (*models.Bug, error) {
	return s.Repo.GetBugByIDForOwner(userID, id)
}

// ListAll returns every bug report. Admin only.
func (s *bugService) ListAll() ([]models.Bug, error) {
	return s.Repo.GetBugs()
}

// Get returns any bug by ID. Admin only.
func (s *bugService) Get(id int64) (*models.Bug, error) {
	return s.Repo.GetBugByID(id)
}

// Approve marks a bug as accepted for work.
func (s *bugService) Approve(id int64) (*models.Bug, error) {
	if err := s.Repo.SetBugApproved(id); err != nil {
		return nil, err
	}
	return s.Repo.GetBugByID(id)
}

// MarkDone marks a bug as resolved.
func (s *bugService) MarkDone(id int64) (*models.Bug, error) {
	if err := s.Repo.SetBugDone(id); err != nil {
		return nil, err
	}
	return s.Repo.GetBugByID(id)
}

// SetIssueLink attaches an external issue tracker URL to a bug.
func (s *bugService) SetIssueLink(id int64, link string) (*models.Bug, error) {
	if err := validateLength("issue_link", link, 1, 300); err != nil {
		return nil, err
	}
	if err := s.Repo.SetBugIssueLink(id, link); err != nil {
		return nil, err
	}
	return s.Repo.GetBugByID(id)
}

// Delete removes a bug report. Admin only.
func (s *bugService) Delete(id int64) error {
	return s.Repo.DeleteBug(id)
}
