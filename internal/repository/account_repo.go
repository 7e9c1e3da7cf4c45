// filepath: internal/repository/account_repo.go
package repository

import (
	"daylog/internal/logging"

	"github.com/Masterminds/squirrel"
)

// DeleteUserData wipes everything a user owns (days, effects, bugs,
// suggestions) in a single transaction. The account row itself stays.
func (s *Repository) DeleteUserData(userID int64) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := s.Builder.Delete("effects").
		Where(squirrel.Eq{"owner": userID}).
		RunWith(tx).
		Exec(); err != nil {
		return err
	}
	if _, err := s.Builder.Delete("days").
		Where(squirrel.Eq{"owner": userID}).
		RunWith(tx).
		Exec(); err != nil {
		return err
	}
	if _, err := s.Builder.Delete("bugs").
		Where(squirrel.Eq{"user_id": userID}).
		RunWith(tx).
		Exec(); err != nil {
		return err
	}
	if _, err := s.Builder.Delete("suggestions").
		Where(squirrel.Eq{"user_id": userID}).
		RunWith(tx).
		Exec(); err != nil {
		return err
	}

	logging.Log.Infof("DeleteUserData: All owned data removed for user %d", userID)
	return tx.Commit()
}
