// filepath: internal/repository/day_repo.go
package repository

import (
	"database/sql"
	"strings"

	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/shared"

	"github.com/Masterminds/squirrel"
)

var dayColumns = []string{"id", "date", "red", "green", "blue", "rate", "auto_rate", "owner"}

func scanDay(row squirrel.RowScanner) (*models.Day, error) {
	var day models.Day
	err := row.Scan(&day.ID, &day.Date, &day.Red, &day.Green, &day.Blue, &day.Rate, &day.AutoRate, &day.Owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &day, nil
}

func scanDays(rows *sql.Rows) ([]models.Day, error) {
	defer rows.Close()
	days := make([]models.Day, 0)
	for rows.Next() {
		var day models.Day
		if err := rows.Scan(&day.ID, &day.Date, &day.Red, &day.Green, &day.Blue, &day.Rate, &day.AutoRate, &day.Owner); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// CreateDay inserts a new day for the given owner. The (owner, date) pair
// is unique; a second day on the same date yields ErrDayExists.
func (s *Repository) CreateDay(day *models.Day) (*models.Day, error) {
	result, err := s.Builder.Insert("days").
		Columns("date", "red", "green", "blue", "rate", "auto_rate", "owner").
		Values(day.Date, day.Red, day.Green, day.Blue, day.Rate, day.AutoRate, day.Owner).
		RunWith(s.DB).
		Exec()
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: days.owner, days.date") {
			return nil, shared.ErrDayExists
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	day.ID = id
	return day, nil
}

// GetDayByDate retrieves the owner's day for an exact date string.
func (s *Repository) GetDayByDate(ownerID int64, date string) (*models.Day, error) {
	row := s.Builder.Select(dayColumns...).
		From("days").
		Where(squirrel.Eq{"owner": ownerID, "date": date}).
		RunWith(s.DB).
		QueryRow()
	return scanDay(row)
}

// GetDayByID retrieves a day by id, scoped to its owner. A day belonging
// to another owner is indistinguishable from a missing one.
func (s *Repository) GetDayByID(ownerID, id int64) (*models.Day, error) {
	row := s.Builder.Select(dayColumns...).
		From("days").
		Where(squirrel.Eq{"owner": ownerID, "id": id}).
		RunWith(s.DB).
		QueryRow()
	return scanDay(row)
}

// GetDays retrieves all days owned by the given user.
func (s *Repository) GetDays(ownerID int64) ([]models.Day, error) {
	rows, err := s.Builder.Select(dayColumns...).
		From("days").
		Where(squirrel.Eq{"owner": ownerID}).
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanDays(rows)
}

// GetDaysByIDs retrieves the owner's days matching the given ids. IDs owned
// by somebody else are silently absent from the result.
func (s *Repository) GetDaysByIDs(ownerID int64, ids []int64) ([]models.Day, error) {
	rows, err := s.Builder.Select(dayColumns...).
		From("days").
		Where(squirrel.Eq{"owner": ownerID, "id": ids}).
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanDays(rows)
}

// UpdateDay updates the mutable fields of an owned day. Date and owner are
// immutable after creation.
func (s *Repository) UpdateDay(ownerID, id int64, red, green, blue, rate int, autoRate bool) error {
	result, err := s.Builder.Update("days").
		Set("red", red).
		Set("green", green).
		Set("blue", blue).
		Set("rate", rate).
		Set("auto_rate", autoRate).
		Where(squirrel.Eq{"owner": ownerID, "id": id}).
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

// DeleteDay removes an owned day and cascades to its effects in one
// transaction.
func (s *Repository) DeleteDay(ownerID, id int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := s.Builder.Delete("days").
		Where(squirrel.Eq{"owner": ownerID, "id": id}).
		RunWith(tx).
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

	if _, err := s.Builder.Delete("effects").
		Where(squirrel.Eq{"owner": ownerID, "foreign_key": id}).
		RunWith(tx).
		Exec(); err != nil {
		return err
	}

	logging.Log.Debugf("DeleteDay: Day %d and its effects removed for owner %d", id, ownerID)
	return tx.Commit()
}

// DeleteDays removes all of the owner's days and their effects in one
// transaction.
func (s *Repository) DeleteDays(ownerID int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := s.Builder.Delete("effects").
		Where(squirrel.Eq{"owner": ownerID}).
		RunWith(tx).
		Exec(); err != nil {
		return err
	}
	if _, err := s.Builder.Delete("days").
		Where(squirrel.Eq{"owner": ownerID}).
		RunWith(tx).
		Exec(); err != nil {
		return err
	}

	return tx.Commit()
}
