// filepath: internal/repository/bug_repo.go
package repository

import (
	"database/sql"

	"daylog/internal/models"
	"daylog/internal/shared"

	"github.com/Masterminds/squirrel"
)

var bugColumns = []string{"id", "username", "user_id", "title", "description", "approved", "done", "issue_link"}

func scanBug(row squirrel.RowScanner) (*models.Bug, error) {
	var bug models.Bug
	err := row.Scan(&bug.ID, &bug.Username, &bug.UserID, &bug.Title, &bug.Description, &bug.Approved, &bug.Done, &bug.IssueLink)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &bug, nil
}

func scanBugs(rows *sql.Rows) ([]models.Bug, error) {
	defer rows.Close()
	bugs := make([]models.Bug, 0)
	for rows.Next() {
		var bug models.Bug
		if err := rows.Scan(&bug.ID, &bug.Username, &bug.UserID, &bug.Title, &bug.Description, &bug.Approved, &bug.Done, &bug.IssueLink); err != nil {
			return nil, err
		}
		bugs = append(bugs, bug)
	}
	return bugs, rows.Err()
}

// CreateBug inserts a new bug report stamped with the reporter's identity.
func (s *Repository) CreateBug(bug *models.Bug) (*models.Bug, error) {
	result, err := s.Builder.Insert("bugs").
		Columns("username", "user_id", "title", "description", "approved", "done").
		Values(bug.Username, bug.UserID, bug.Title, bug.Description, false, false).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	bug.ID = id
	return bug, nil
}

// GetBugsByOwner retrieves the reports filed by one user.
func (s *Repository) GetBugsByOwner(userID int64) ([]models.Bug, error) {
	rows, err := s.Builder.Select(bugColumns...).
		From("bugs").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanBugs(rows)
}

// GetBugByIDForOwner retrieves one report, scoped to its reporter.
func (s *Repository) GetBugByIDForOwner(userID, id int64) (*models.Bug, error) {
	row := s.Builder.Select(bugColumns...).
		From("bugs").
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		RunWith(s.DB).
		QueryRow()
	return scanBug(row)
}

// GetBugs retrieves all bug reports. Admin surface: no owner filter.
func (s *Repository) GetBugs() ([]models.Bug, error) {
	rows, err := s.Builder.Select(bugColumns...).
		From("bugs").
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanBugs(rows)
}

// GetBugByID retrieves one report by id. Admin surface: no owner filter.
func (s *Repository) GetBugByID(id int64) (*models.Bug, error) {
	row := s.Builder.Select(bugColumns...).
		From("bugs").
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		QueryRow()
	return scanBug(row)
}

// SetBugApproved marks a report approved. There is no reverse transition.
func (s *Repository) SetBugApproved(id int64) error {
	return s.setBugField(id, "approved", true)
}

// SetBugDone marks a report done. There is no reverse transition.
func (s *Repository) SetBugDone(id int64) error {
	return s.setBugField(id, "done", true)
}

// SetBugIssueLink attaches a tracker link to a report.
func (s *Repository) SetBugIssueLink(id int64, link string) error {
	return s.setBugField(id, "issue_link", link)
}

func (s *Repository) setBugField(id int64, column string, value interface{}) error {
	result, err := s.Builder.Update("bugs").
		Set(column, value).
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBug removes a report by id. Admin surface: no owner filter.
func (s *Repository) DeleteBug(id int64) error {
	result, err := s.Builder.Delete("bugs").
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
