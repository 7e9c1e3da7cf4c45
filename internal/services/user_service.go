// filepath: internal/services/user_service.go
package services

import (
	"crypto/rand"
	"errors"
	"fmt"

	"daylog/internal/config"
	"daylog/internal/logging"
	"daylog/internal/models"
	"daylog/internal/repository"
	"daylog/internal/services/auth"
	"daylog/internal/shared"
)

var _ UserService = (*userService)(nil)

// userService handles business logic for accounts and user administration.
type userService struct {
	Repo *repository.Repository
	Cfg  *config.Config
}

// NewUserService creates a new UserService.
func NewUserService(repo *repository.Repository, cfg *config.Config) *userService {
	return &userService{Repo: repo, Cfg: cfg}
}

// Register creates a new account with the default user role.
func (s *userService) Register(username, password string) (*models.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		logging.Log.Errorf("UserService: failed to hash password for '%s': %v", username, err)
		return nil, fmt.Errorf("failed to create user")
	}

	user, err := s.Repo.CreateUser(username, hash, models.RoleUser)
	if err != nil {
		if errors.Is(err, shared.ErrUserExists) {
			return nil, err
		}
		logging.Log.Errorf("UserService: failed to create user '%s': %v", username, err)
		return nil, fmt.Errorf("failed to create user")
	}
	logging.Log.Infof("UserService: registered user '%s' (ID %d)", user.Username, user.ID)
	return user, nil
}

// Authenticate checks a username/password pair. Lookup failure and a wrong
// password are indistinguishable to the caller.
func (s *userService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(username)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			logging.Log.Errorf("UserService: lookup failed for '%s': %v", username, err)
		}
		return nil, shared.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// ChangePassword verifies the current password, checks the confirmation and
// stores the new hash.
func (s *userService) ChangePassword(userID int64, current, newPassword, confirm string) error {
	user, err := s.Repo.GetUserByID(userID)
	if err != nil {
		return err
	}
	if !auth.VerifyPassword(user.PasswordHash, current) {
		return shared.ErrWrongPassword
	}
	if newPassword != confirm {
		return shared.ErrPasswordMismatch
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		logging.Log.Errorf("UserService: failed to hash new password for user %d: %v", userID, err)
		return fmt.Errorf("failed to change password")
	}
	if err := s.Repo.UpdateUserPassword(userID, hash); err != nil {
		return err
	}
	logging.Log.Infof("UserService: password changed for user %d", userID)
	return nil
}

// GetUsers returns all accounts without password material.
func (s *userService) GetUsers() ([]models.UserSummary, error) {
	users, err := s.Repo.GetUsers()
	if err != nil {
		return nil, err
	}
	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, models.UserSummary{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	return summaries, nil
}

// GetUserByID retrieves a single account.
func (s *userService) GetUserByID(id int64) (*models.User, error) {
	return s.Repo.GetUserByID(id)
}

// ToggleAdmin flips a user's role. Demoting the only remaining admin is
// refused so the instance never locks itself out.
func (s *userService) ToggleAdmin(userID int64) (*models.UserSummary, error) {
	user, err := s.Repo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	newRole := models.RoleAdmin
	if user.Role == models.RoleAdmin {
		admins, err := s.Repo.CountAdmins()
		if err != nil {
			return nil, err
		}
		if admins <= 1 {
			return nil, shared.ErrLastAdmin
		}
		newRole = models.RoleUser
	}

	if err := s.Repo.UpdateUserRole(userID, newRole); err != nil {
		return nil, err
	}
	logging.Log.Infof("UserService: user %d role changed to %s", userID, newRole)
	return &models.UserSummary{ID: user.ID, Username: user.Username, Role: newRole}, nil
}

// DeleteUserData wipes all tracked data owned by the user. The account row
// itself is kept.
func (s *userService) DeleteUserData(userID int64) error {
	if err := s.Repo.DeleteUserData(userID); err != nil {
		return err
	}
	logging.Log.Infof("UserService: wiped all data for user %d", userID)
	return nil
}

// InitializeAdminUser ensures the bootstrap admin exists on startup and
// handles password resets requested via CLI flags.
func (s *userService) InitializeAdminUser() error {
	exists, err := s.Repo.AdminExists()
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	if !exists {
		return s.createAdminUser()
	}
	if s.Cfg.ResetAdminPassword {
		return s.resetAdminPassword()
	}
	return nil
}

func (s *userService) createAdminUser() error {
	password := s.Cfg.Admin.Password
	if password == "" {
		password = generateRandomPassword(12)
		logging.Log.Infof("No admin password provided. Generated a random password for '%s': %s", s.Cfg.Admin.Username, password)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if _, err := s.Repo.CreateUser(s.Cfg.Admin.Username, hash, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	logging.Log.Info("Admin user created successfully.")
	return nil
}

func (s *userService) resetAdminPassword() error {
	if s.Cfg.Admin.Password == "" {
		return fmt.Errorf("cannot reset admin password: --reset_pw is true but no --password or DL_PASSWORD was provided")
	}
	admin, err := s.Repo.GetUserByUsername(s.Cfg.Admin.Username)
	if err != nil {
		return fmt.Errorf("failed to load admin user: %w", err)
	}
	hash, err := auth.HashPassword(s.Cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := s.Repo.UpdateUserPassword(admin.ID, hash); err != nil {
		return fmt.Errorf("failed to reset admin password: %w", err)
	}
	logging.Log.Info("Admin password has been reset.")
	return nil
}

// generateRandomPassword creates a cryptographically secure random password.
func generateRandomPassword(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("failed to generate random password: %v", err))
	}
	for i := range b {
		b[i] = chars[int(b[i])%len(chars)]
	}
	return string(b)
}
