// filepath: internal/services/effect_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"daylog/internal/models"
	"daylog/internal/shared"
)

func TestEffectCreateRequiresOwnedDay(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	users := NewUserService(repo, cfg)
	days := NewDayService(repo)
	effects := NewEffectService(repo)
	owner := registerTestUser(t, users, "nina")
	stranger := registerTestUser(t, users, "oscar")

	day, err := days.Create(owner.ID, models.CreateDayRequest{Date: "10/09/2026", Rate: 2})
	assert.NoError(t, err)

	// Attaching to someone else's day looks like a missing day
	_, err = effects.Create(stranger.ID, models.CreateEffectRequest{
		Time: "10:00", Rate: 2, Description: "not my day at all", ForeignKey: day.ID,
	})
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	// Unknown day
	_, err = effects.Create(owner.ID, models.CreateEffectRequest{
		Time: "10:00", Rate: 2, Description: "floating effect", ForeignKey: 4242,
	})
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	// The owner succeeds
	created, err := effects.Create(owner.ID, models.CreateEffectRequest{
		Time: "10:00", Rate: 2, Description: "slow start today", ForeignKey: day.ID,
	})
	assert.NoError(t, err)
	assert.Equal(t, owner.ID, created.Owner)
}

func TestEffectValidation(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	users := NewUserService(repo, cfg)
	days := NewDayService(repo)
	effects := NewEffectService(repo)
	owner := registerTestUser(t, users, "paula")

	day, err := days.Create(owner.ID, models.CreateDayRequest{Date: "11/09/2026", Rate: 2})
	assert.NoError(t, err)

	cases := []models.CreateEffectRequest{
		{Time: "25:00", Rate: 2, Description: "valid text", ForeignKey: day.ID}, // bad hour
		{Time: "10:61", Rate: 2, Description: "valid text", ForeignKey: day.ID}, // bad minute
		{Time: "10:00", Rate: 5, Description: "valid text", ForeignKey: day.ID}, // rate range
		{Time: "10:00", Rate: 2, Description: "tiny", ForeignKey: day.ID},       // too short
	}
	for _, req := range cases {
		_, err := effects.Create(owner.ID, req)
		assert.True(t, errors.Is(err, shared.ErrValidation), "expected validation error for %+v", req)
	}
}

func TestEffectPartialUpdate(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	users := NewUserService(repo, cfg)
	days := NewDayService(repo)
	effects := NewEffectService(repo)
	owner := registerTestUser(t, users, "quentin")

	day, err := days.Create(owner.ID, models.CreateDayRequest{Date: "12/09/2026", Rate: 2})
	assert.NoError(t, err)
	created, err := effects.Create(owner.ID, models.CreateEffectRequest{
		Time: "08:15", Rate: 1, Description: "skipped my usual run", ForeignKey: day.ID,
	})
	assert.NoError(t, err)

	// Only the rate changes, time and description stay
	newRate := 3
	updated, err := effects.Update(owner.ID, created.ID, models.UpdateEffectRequest{Rate: &newRate})
	assert.NoError(t, err)
	assert.Equal(t, 3, updated.Rate)
	assert.Equal(t, "08:15", updated.Time)
	assert.Equal(t, "skipped my usual run", updated.Description)

	// A partial update still has to pass validation
	badTime := "99:99"
	_, err = effects.Update(owner.ID, created.ID, models.UpdateEffectRequest{Time: &badTime})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestEffectFilter(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	users := NewUserService(repo, cfg)
	days := NewDayService(repo)
	effects := NewEffectService(repo)
	owner := registerTestUser(t, users, "rachel")

	day, err := days.Create(owner.ID, models.CreateDayRequest{Date: "13/09/2026", Rate: 2})
	assert.NoError(t, err)
	for i, rate := range []int{0, 2, 4, 4} {
		_, err := effects.Create(owner.ID, models.CreateEffectRequest{
			Time: "10:00", Rate: rate, Description: "tracked event number x", ForeignKey: day.ID,
		})
		assert.NoError(t, err, "effect %d", i)
	}

	matched, err := effects.Filter(owner.ID, []int{4})
	assert.NoError(t, err)
	assert.Len(t, matched, 2)

	// Out of range rate in the filter is rejected
	_, err = effects.Filter(owner.ID, []int{7})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}
