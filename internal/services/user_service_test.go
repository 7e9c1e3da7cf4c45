// filepath: internal/services/user_service_test.go
package services

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"daylog/internal/config"
	"daylog/internal/models"
	"daylog/internal/repository"
	"daylog/internal/shared"
)

func setupServiceTest(t *testing.T) (*repository.Repository, *config.Config, func()) {
	t.Helper()
	const dbPath = "test_services.db"
	os.Remove(dbPath)

	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: dbPath},
	}
	cfg.ApplyDefaults()
	cfg.Database.Path = dbPath

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
	}
	return repo, cfg, cleanup
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	svc := NewUserService(repo, cfg)

	user, err := svc.Register("carol", "Sup3rSecret!")
	assert.NoError(t, err)
	assert.Equal(t, "carol", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.NotEqual(t, "Sup3rSecret!", user.PasswordHash)

	// Duplicate rejected
	_, err = svc.Register("carol", "Sup3rSecret!")
	assert.True(t, errors.Is(err, shared.ErrUserExists))

	// Valid login
	authed, err := svc.Authenticate("carol", "Sup3rSecret!")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	// Wrong password and unknown user fail identically
	_, err = svc.Authenticate("carol", "wrongpassword")
	assert.True(t, errors.Is(err, shared.ErrInvalidCredentials))
	_, err = svc.Authenticate("nobody", "whatever123")
	assert.True(t, errors.Is(err, shared.ErrInvalidCredentials))
}

func TestRegisterValidation(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	svc := NewUserService(repo, cfg)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "Sup3rSecret!"},
		{"username starts with digit", "1abc", "Sup3rSecret!"},
		{"username with spaces", "a b c", "Sup3rSecret!"},
		{"password too short", "dave", "short"},
		{"password with illegal char", "dave", "with space 123"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(tc.username, tc.password)
			assert.True(t, errors.Is(err, shared.ErrValidation))
		})
	}
}

func TestChangePassword(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	svc := NewUserService(repo, cfg)

	user, err := svc.Register("erin", "OldPassword1")
	assert.NoError(t, err)

	// Wrong current password
	err = svc.ChangePassword(user.ID, "notmypassword", "NewPassword1", "NewPassword1")
	assert.True(t, errors.Is(err, shared.ErrWrongPassword))

	// Confirmation mismatch
	err = svc.ChangePassword(user.ID, "OldPassword1", "NewPassword1", "NewPassword2")
	assert.True(t, errors.Is(err, shared.ErrPasswordMismatch))

	// New password fails validation
	err = svc.ChangePassword(user.ID, "OldPassword1", "short", "short")
	assert.True(t, errors.Is(err, shared.ErrValidation))

	// Success
	err = svc.ChangePassword(user.ID, "OldPassword1", "NewPassword1", "NewPassword1")
	assert.NoError(t, err)

	_, err = svc.Authenticate("erin", "OldPassword1")
	assert.True(t, errors.Is(err, shared.ErrInvalidCredentials))
	_, err = svc.Authenticate("erin", "NewPassword1")
	assert.NoError(t, err)
}

func TestToggleAdmin(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	svc := NewUserService(repo, cfg)

	assert.NoError(t, svc.InitializeAdminUser())
	admin, err := repo.GetUserByUsername(cfg.Admin.Username)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// The only admin cannot be demoted
	_, err = svc.ToggleAdmin(admin.ID)
	assert.True(t, errors.Is(err, shared.ErrLastAdmin))

	// Promote a second user, then demotion of the first is allowed
	user, err := svc.Register("frank", "GoodPassword1")
	assert.NoError(t, err)

	promoted, err := svc.ToggleAdmin(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	demoted, err := svc.ToggleAdmin(admin.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.RoleUser, demoted.Role)

	// Unknown user
	_, err = svc.ToggleAdmin(9999)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestInitializeAdminUserIsIdempotent(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	cfg.Admin.Password = "BootstrapPw1"
	svc := NewUserService(repo, cfg)

	assert.NoError(t, svc.InitializeAdminUser())
	assert.NoError(t, svc.InitializeAdminUser())

	users, err := svc.GetUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 1)

	_, err = svc.Authenticate(cfg.Admin.Username, "BootstrapPw1")
	assert.NoError(t, err)
}
