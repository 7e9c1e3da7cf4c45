// filepath: internal/repository/news_repo.go
package repository

import (
	"database/sql"

	"daylog/internal/models"
	"daylog/internal/shared"

	"github.com/Masterminds/squirrel"
)

// CreateNews inserts a new announcement.
func (s *Repository) CreateNews(news *models.News) (*models.News, error) {
	result, err := s.Builder.Insert("news").
		Columns("title", "description").
		Values(news.Title, news.Description).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	news.ID = id
	return news, nil
}

// GetNews retrieves all announcements. Readable by any authenticated user.
func (s *Repository) GetNews() ([]models.News, error) {
	rows, err := s.Builder.Select("id", "title", "description").
		From("news").
		OrderBy("id DESC").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.News, 0)
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Description); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// GetNewsByID retrieves one announcement by id.
func (s *Repository) GetNewsByID(id int64) (*models.News, error) {
	var n models.News
	err := s.Builder.Select("id", "title", "description").
		From("news").
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		QueryRow().
		Scan(&n.ID, &n.Title, &n.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// DeleteNews removes one announcement by id.
func (s *Repository) DeleteNews(id int64) error {
	result, err := s.Builder.Delete("news").
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

// DeleteAllNews removes every announcement.
func (s *Repository) DeleteAllNews() error {
	_, err := s.Builder.Delete("news").RunWith(s.DB).Exec()
	return err
}
