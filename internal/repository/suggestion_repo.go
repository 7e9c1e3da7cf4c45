// filepath: internal/repository/suggestion_repo.go
package repository

import (
	"database/sql"

	"daylog/internal/models"
	"daylog/internal/shared"

	"github.com/Masterminds/squirrel"
)

var suggestionColumns = []string{"id", "username", "user_id", "description", "approved", "done", "issue_link"}

func scanSuggestion(row squirrel.RowScanner) (*models.Suggestion, error) {
	var sug models.Suggestion
	err := row.Scan(&sug.ID, &sug.Username, &sug.UserID, &sug.Description, &sug.Approved, &sug.Done, &sug.IssueLink)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sug, nil
}

func scanSuggestions(rows *sql.Rows) ([]models.Suggestion, error) {
	defer rows.Close()
	suggestions := make([]models.Suggestion, 0)
	for rows.Next() {
		var sug models.Suggestion
		if err := rows.Scan(&sug.ID, &sug.Username, &sug.UserID, &sug.Description, &sug.Approved, &sug.Done, &sug.IssueLink); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, sug)
	}
	return suggestions, rows.Err()
}

// CreateSuggestion inserts a new suggestion stamped with the author's identity.
func (s *Repository) CreateSuggestion(sug *models.Suggestion) (*models.Suggestion, error) {
	result, err := s.Builder.Insert("suggestions").
		Columns("username", "user_id", "description", "approved", "done").
		Values(sug.Username, sug.UserID, sug.Description, false, false).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	sug.ID = id
	return sug, nil
}

// GetSuggestionsByOwner retrieves the suggestions filed by one user.
func (s *Repository) GetSuggestionsByOwner(userID int64) ([]models.Suggestion, error) {
	rows, err := s.Builder.Select(suggestionColumns...).
		From("suggestions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanSuggestions(rows)
}

// GetSuggestionByIDForOwner retrieves one suggestion, scoped to its author.
func (s *Repository) GetSuggestionByIDForOwner(userID, id int64) (*models.Suggestion, error) {
	row := s.Builder.Select(suggestionColumns...).
		From("suggestions").
		Where(squirrel.Eq{"user_id": userID, "id": id}).
		RunWith(s.DB).
		QueryRow()
	return scanSuggestion(row)
}

// GetSuggestions retrieves all suggestions. Admin surface: no owner filter.
func (s *Repository) GetSuggestions() ([]models.Suggestion, error) {
	rows, err := s.Builder.Select(suggestionColumns...).
		From("suggestions").
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanSuggestions(rows)
}

// GetSuggestionByID retrieves one suggestion by id. Admin surface: no owner filter.
func (s *Repository) GetSuggestionByID(id int64) (*models.Suggestion, error) {
	row := s.Builder.Select(suggestionColumns...).
		From("suggestions").
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		QueryRow()
	return scanSuggestion(row)
}

// SetSuggestionApproved marks a suggestion approved. There is no reverse transition.
func (s *Repository) SetSuggestionApproved(id int64) error {
	return s.setSuggestionField(id, "approved", true)
}

// SetSuggestionDone marks a suggestion done. There is no reverse transition.
func (s *Repository) SetSuggestionDone(id int64) error {
	return s.setSuggestionField(id, "done", true)
}

// SetSuggestionIssueLink attaches a tracker link to a suggestion.
func (s *Repository) SetSuggestionIssueLink(id int64, link string) error {
	return s.setSuggestionField(id, "issue_link", link)
}

func (s *Repository) setSuggestionField(id int64, column string, value interface{}) error {
	result, err := s.Builder.Update("suggestions").
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

// DeleteSuggestion removes a suggestion by id. Admin surface: no owner filter.
func (s *Repository) DeleteSuggestion(id int64) error {
	result, err := s.Builder.Delete("suggestions").
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
