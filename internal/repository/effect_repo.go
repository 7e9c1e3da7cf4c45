// filepath: internal/repository/effect_repo.go
package repository

import (
	"database/sql"

	"daylog/internal/models"
	"daylog/internal/shared"

	"github.com/Masterminds/squirrel"
)

var effectColumns = []string{"id", "time", "rate", "description", "foreign_key", "owner"}

func scanEffect(row squirrel.RowScanner) (*models.Effect, error) {
	var effect models.Effect
	err := row.Scan(&effect.ID, &effect.Time, &effect.Rate, &effect.Description, &effect.ForeignKey, &effect.Owner)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &effect, nil
}

func scanEffects(rows *sql.Rows) ([]models.Effect, error) {
	defer rows.Close()
	effects := make([]models.Effect, 0)
	for rows.Next() {
		var effect models.Effect
		if err := rows.Scan(&effect.ID, &effect.Time, &effect.Rate, &effect.Description, &effect.ForeignKey, &effect.Owner); err != nil {
			return nil, err
		}
		effects = append(effects, effect)
	}
	return effects, rows.Err()
}

// CreateEffect inserts a new effect. The caller is responsible for checking
// that the parent day exists and belongs to the same owner.
func (s *Repository) CreateEffect(effect *models.Effect) (*models.Effect, error) {
	result, err := s.Builder.Insert("effects").
		Columns("time", "rate", "description", "foreign_key", "owner").
		Values(effect.Time, effect.Rate, effect.Description, effect.ForeignKey, effect.Owner).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	effect.ID = id
	return effect, nil
}

// GetEffects retrieves all effects owned by the given user.
func (s *Repository) GetEffects(ownerID int64) ([]models.Effect, error) {
	rows, err := s.Builder.Select(effectColumns...).
		From("effects").
		Where(squirrel.Eq{"owner": ownerID}).
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanEffects(rows)
}

// GetEffectByID retrieves a single owned effect.
func (s *Repository) GetEffectByID(ownerID, id int64) (*models.Effect, error) {
	row := s.Builder.Select(effectColumns...).
		From("effects").
		Where(squirrel.Eq{"owner": ownerID, "id": id}).
		RunWith(s.DB).
		QueryRow()
	return scanEffect(row)
}

// GetEffectsByDay retrieves the owner's effects attached to a day.
func (s *Repository) GetEffectsByDay(ownerID, foreignKey int64) ([]models.Effect, error) {
	rows, err := s.Builder.Select(effectColumns...).
		From("effects").
		Where(squirrel.Eq{"owner": ownerID, "foreign_key": foreignKey}).
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanEffects(rows)
}

// GetEffectsByRates retrieves the owner's effects whose rate matches any of
// the given values.
func (s *Repository) GetEffectsByRates(ownerID int64, rates []int) ([]models.Effect, error) {
	rows, err := s.Builder.Select(effectColumns...).
		From("effects").
		Where(squirrel.Eq{"owner": ownerID, "rate": rates}).
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	return scanEffects(rows)
}

// GetAverageRate computes the mean effect rate for an owned day. The count
// lets callers distinguish "no effects" from a genuine zero average.
func (s *Repository) GetAverageRate(ownerID, foreignKey int64) (float64, int, error) {
	var avg sql.NullFloat64
	var count int
	err := s.Builder.Select("AVG(rate)", "COUNT(*)").
		From("effects").
		Where(squirrel.Eq{"owner": ownerID, "foreign_key": foreignKey}).
		RunWith(s.DB).
		QueryRow().
		Scan(&avg, &count)
	if err != nil {
		return 0, 0, err
	}
	return avg.Float64, count, nil
}

// UpdateEffect updates the mutable fields of an owned effect.
func (s *Repository) UpdateEffect(ownerID, id int64, time string, rate int, description string) error {
	result, err := s.Builder.Update("effects").
		Set("time", time).
		Set("rate", rate).
		Set("description", description).
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

// DeleteEffect removes a single owned effect.
func (s *Repository) DeleteEffect(ownerID, id int64) error {
	result, err := s.Builder.Delete("effects").
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

// DeleteEffectsByDay removes all of the owner's effects attached to a day.
func (s *Repository) DeleteEffectsByDay(ownerID, foreignKey int64) error {
	_, err := s.Builder.Delete("effects").
		Where(squirrel.Eq{"owner": ownerID, "foreign_key": foreignKey}).
		RunWith(s.DB).
		Exec()
	return err
}

// DeleteEffects removes all of the owner's effects.
func (s *Repository) DeleteEffects(ownerID int64) error {
	_, err := s.Builder.Delete("effects").
		Where(squirrel.Eq{"owner": ownerID}).
		RunWith(s.DB).
		Exec()
	return err
}
