// filepath: internal/repository/feedback_repo_test.go
package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"daylog/internal/models"
	"daylog/internal/shared"
)

func TestBugLifecycle(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	user := mustCreateUser(t, repo, "bugfiler")

	bug, err := repo.CreateBug(&models.Bug{
		Username:    user.Username,
		UserID:      user.ID,
		Title:       "Broken save",
		Description: "Saving a day with auto rate enabled silently drops the chosen color values every time.",
	})
	assert.NoError(t, err)
	assert.NotZero(t, bug.ID)
	assert.False(t, bug.Approved)
	assert.False(t, bug.Done)
	assert.Nil(t, bug.IssueLink)

	own, err := repo.GetBugsByOwner(user.ID)
	assert.NoError(t, err)
	assert.Len(t, own, 1)

	// Another user sees nothing of it
	other := mustCreateUser(t, repo, "bystander")
	_, err = repo.GetBugByIDForOwner(other.ID, bug.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	// Moderation
	assert.NoError(t, repo.SetBugApproved(bug.ID))
	assert.NoError(t, repo.SetBugDone(bug.ID))
	assert.NoError(t, repo.SetBugIssueLink(bug.ID, "https://example.com/issues/42"))

	moderated, err := repo.GetBugByID(bug.ID)
	assert.NoError(t, err)
	assert.True(t, moderated.Approved)
	assert.True(t, moderated.Done)
	if assert.NotNil(t, moderated.IssueLink) {
		assert.Equal(t, "https://example.com/issues/42", *moderated.IssueLink)
	}

	// Moderating a missing bug reports not found
	assert.True(t, errors.Is(repo.SetBugApproved(9999), shared.ErrNotFound))

	assert.NoError(t, repo.DeleteBug(bug.ID))
	_, err = repo.GetBugByID(bug.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestSuggestionLifecycle(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	user := mustCreateUser(t, repo, "suggester")

	sug, err := repo.CreateSuggestion(&models.Suggestion{
		Username:    user.Username,
		UserID:      user.ID,
		Description: "A weekly summary view would make spotting mood patterns much easier.",
	})
	assert.NoError(t, err)
	assert.NotZero(t, sug.ID)

	assert.NoError(t, repo.SetSuggestionApproved(sug.ID))
	assert.NoError(t, repo.SetSuggestionDone(sug.ID))
	assert.NoError(t, repo.SetSuggestionIssueLink(sug.ID, "https://example.com/issues/7"))

	moderated, err := repo.GetSuggestionByID(sug.ID)
	assert.NoError(t, err)
	assert.True(t, moderated.Approved)
	assert.True(t, moderated.Done)

	all, err := repo.GetSuggestions()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNewsLifecycle(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	n1, err := repo.CreateNews(&models.News{
		Title:       "Welcome to Daylog",
		Description: "The instance is up and running, start tracking your days.",
	})
	assert.NoError(t, err)
	_, err = repo.CreateNews(&models.News{
		Title:       "Scheduled maintenance",
		Description: "Short downtime expected this weekend while we move servers.",
	})
	assert.NoError(t, err)

	all, err := repo.GetNews()
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	assert.NoError(t, repo.DeleteNews(n1.ID))
	all, err = repo.GetNews()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	assert.NoError(t, repo.DeleteAllNews())
	all, err = repo.GetNews()
	assert.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteUserData(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()
	user := mustCreateUser(t, repo, "wipeme")
	other := mustCreateUser(t, repo, "untouched")

	day := mustCreateDay(t, repo, user.ID, "20/04/2026", 3)
	mustCreateEffect(t, repo, user.ID, day.ID, 2, "an ordinary afternoon")
	_, err := repo.CreateBug(&models.Bug{
		Username: user.Username, UserID: user.ID,
		Title:       "Minor glitch",
		Description: "The color preview flickers briefly whenever the rate slider is moved quickly.",
	})
	assert.NoError(t, err)
	_, err = repo.CreateSuggestion(&models.Suggestion{
		Username: user.Username, UserID: user.ID,
		Description: "Please add an option to export all days as CSV.",
	})
	assert.NoError(t, err)

	otherDay := mustCreateDay(t, repo, other.ID, "20/04/2026", 1)

	assert.NoError(t, repo.DeleteUserData(user.ID))

	days, err := repo.GetDays(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, days)
	effects, err := repo.GetEffects(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, effects)
	bugs, err := repo.GetBugsByOwner(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, bugs)
	sugs, err := repo.GetSuggestionsByOwner(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, sugs)

	// The account row and other users' data survive
	_, err = repo.GetUserByID(user.ID)
	assert.NoError(t, err)
	_, err = repo.GetDayByID(other.ID, otherDay.ID)
	assert.NoError(t, err)
}
