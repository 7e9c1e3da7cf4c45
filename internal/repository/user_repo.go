// filepath: internal/repository/user_repo.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/shared"

	"github.com/Masterminds/squirrel"
)

var userColumns = []string{"id", "username", "password_hash", "role"}

func scanUser(row squirrel.RowScanner) (*models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by their username, using a cache for performance.
// Lookup is a case-sensitive exact match.
func (s *Repository) GetUserByUsername(username string) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_name_%s", username)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByUsername: CACHE MISS for '%s'. Querying DB.", username)
	row := s.Builder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"username": username}).
		RunWith(s.DB).
		QueryRow()

	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(cacheKey, user, 5*time.Minute)
	s.Cache.Set(fmt.Sprintf("user_by_id_%d", user.ID), user, 5*time.Minute)

	return user, nil
}

// GetUserByID retrieves a user by their ID, using a cache for performance.
func (s *Repository) GetUserByID(id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("user_by_id_%d", id)
	if user, found := s.Cache.Get(cacheKey); found {
		return user.(*models.User), nil
	}

	logging.Log.Debugf("GetUserByID: CACHE MISS for ID %d. Querying DB.", id)
	row := s.Builder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		QueryRow()

	user, err := scanUser(row)
	if err != nil {
		return nil, err
	}

	s.Cache.Set(cacheKey, user, 5*time.Minute)
	s.Cache.Set(fmt.Sprintf("user_by_name_%s", user.Username), user, 5*time.Minute)

	return user, nil
}

// CreateUser inserts a new user row. The password must already be hashed.
func (s *Repository) CreateUser(username, passwordHash, role string) (*models.User, error) {
	result, err := s.Builder.Insert("users").
		Columns("username", "password_hash", "role").
		Values(username, passwordHash, role).
		RunWith(s.DB).
		Exec()
	if err != nil {
		// Check for UNIQUE constraint violation
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.username") {
			return nil, shared.ErrUserExists
		}
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	logging.Log.Debugf("CreateUser: User '%s' created with ID %d", username, id)

	return &models.User{
		ID:           id,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}, nil
}

// GetUsers retrieves all users from the database.
func (s *Repository) GetUsers() ([]models.User, error) {
	rows, err := s.Builder.Select(userColumns...).
		From("users").
		OrderBy("id").
		RunWith(s.DB).
		Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// UpdateUserPassword replaces a single user's password hash.
func (s *Repository) UpdateUserPassword(id int64, passwordHash string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	_, err = s.Builder.Update("users").
		Set("password_hash", passwordHash).
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return err
	}

	s.invalidateUserCache(user)
	return nil
}

// UpdateUserRole changes a user's role. The new role claim only lands in
// tokens issued after the user's next login.
func (s *Repository) UpdateUserRole(id int64, role string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	_, err = s.Builder.Update("users").
		Set("role", role).
		Where(squirrel.Eq{"id": id}).
		RunWith(s.DB).
		Exec()
	if err != nil {
		return err
	}

	logging.Log.Debugf("UpdateUserRole: User '%s' (ID: %d) role set to '%s'", user.Username, id, role)
	s.invalidateUserCache(user)
	return nil
}

// CountAdmins returns the number of accounts holding the admin role.
func (s *Repository) CountAdmins() (int, error) {
	var count int
	err := s.Builder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"role": models.RoleAdmin}).
		RunWith(s.DB).
		QueryRow().
		Scan(&count)
	return count, err
}

// AdminExists reports whether at least one admin account exists.
func (s *Repository) AdminExists() (bool, error) {
	count, err := s.CountAdmins()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Repository) invalidateUserCache(user *models.User) {
	s.Cache.Delete(fmt.Sprintf("user_by_name_%s", user.Username))
	s.Cache.Delete(fmt.Sprintf("user_by_id_%d", user.ID))
}
