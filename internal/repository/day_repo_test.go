// filepath: internal/repository/day_repo_test.go
package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"daylog/internal/models"
	"daylog/internal/shared"
)

func mustCreateUser(t *testing.T, repo *Repository, name string) *models.User {
	t.Helper()
	user, err := repo.CreateUser(name, "hash", models.RoleUser)
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", name, err)
	}
	return user
}

func mustCreateDay(t *testing.T, repo *Repository, ownerID int64, date string, rate int) *models.Day {
	t.Helper()
	day, err := repo.CreateDay(&models.Day{
		Date: date, Red: 10, Green: 20, Blue: 30, Rate: rate, Owner: ownerID,
	})
	if err != nil {
		t.Fatalf("Failed to create day %s: %v", date, err)
	}
	return day
}

func TestDayCRUD(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	owner := mustCreateUser(t, repo, "dayowner")

	day := mustCreateDay(t, repo, owner.ID, "01/02/2026", 3)
	assert.NotZero(t, day.ID)

	// Same date for the same owner is rejected
	_, err := repo.CreateDay(&models.Day{Date: "01/02/2026", Rate: 1, Owner: owner.ID})
	assert.True(t, errors.Is(err, shared.ErrDayExists))

	// Another owner can track the same date
	other := mustCreateUser(t, repo, "otherowner")
	_, err = repo.CreateDay(&models.Day{Date: "01/02/2026", Rate: 1, Owner: other.ID})
	assert.NoError(t, err)

	byDate, err := repo.GetDayByDate(owner.ID, "01/02/2026")
	assert.NoError(t, err)
	assert.Equal(t, day.ID, byDate.ID)

	byID, err := repo.GetDayByID(owner.ID, day.ID)
	assert.NoError(t, err)
	assert.Equal(t, "01/02/2026", byID.Date)

	// Cross-owner access looks like a missing row
	_, err = repo.GetDayByID(other.ID, day.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	assert.NoError(t, repo.UpdateDay(owner.ID, day.ID, 255, 0, 0, 4, true))
	updated, err := repo.GetDayByID(owner.ID, day.ID)
	assert.NoError(t, err)
	assert.Equal(t, 255, updated.Red)
	assert.Equal(t, 4, updated.Rate)
	assert.True(t, updated.AutoRate)
	assert.Equal(t, "01/02/2026", updated.Date)

	// Updating someone else's day reports not found
	err = repo.UpdateDay(other.ID, day.ID, 1, 2, 3, 0, false)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGetDaysAndOverview(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	owner := mustCreateUser(t, repo, "lister")

	d1 := mustCreateDay(t, repo, owner.ID, "01/01/2026", 1)
	d2 := mustCreateDay(t, repo, owner.ID, "02/01/2026", 2)
	mustCreateDay(t, repo, owner.ID, "03/01/2026", 3)

	all, err := repo.GetDays(owner.ID)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	// Unknown IDs are skipped, not errors
	subset, err := repo.GetDaysByIDs(owner.ID, []int64{d1.ID, d2.ID, 9999})
	assert.NoError(t, err)
	assert.Len(t, subset, 2)
}

func TestDeleteDayCascadesEffects(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	owner := mustCreateUser(t, repo, "cascader")
	day := mustCreateDay(t, repo, owner.ID, "05/05/2026", 2)

	_, err := repo.CreateEffect(&models.Effect{
		Time: "10:30", Rate: 3, Description: "morning walk", ForeignKey: day.ID, Owner: owner.ID,
	})
	assert.NoError(t, err)

	assert.NoError(t, repo.DeleteDay(owner.ID, day.ID))

	_, err = repo.GetDayByID(owner.ID, day.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	effects, err := repo.GetEffects(owner.ID)
	assert.NoError(t, err)
	assert.Empty(t, effects)
}

func TestDeleteDaysWipesOwnerOnly(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	owner := mustCreateUser(t, repo, "wiper")
	other := mustCreateUser(t, repo, "keeper")

	mustCreateDay(t, repo, owner.ID, "01/06/2026", 1)
	mustCreateDay(t, repo, owner.ID, "02/06/2026", 2)
	kept := mustCreateDay(t, repo, other.ID, "01/06/2026", 3)

	assert.NoError(t, repo.DeleteDays(owner.ID))

	mine, err := repo.GetDays(owner.ID)
	assert.NoError(t, err)
	assert.Empty(t, mine)

	// The other owner's day survives
	_, err = repo.GetDayByID(other.ID, kept.ID)
	assert.NoError(t, err)
}
