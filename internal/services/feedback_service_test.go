// filepath: internal/services/feedback_service_test.go
package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"daylog/internal/models"
	"daylog/internal/shared"
)

func TestBugServiceModeration(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	users := NewUserService(repo, cfg)
	bugs := NewBugService(repo)
	user := registerTestUser(t, users, "sam")

	// Title and description lengths are enforced
	_, err := bugs.Create(user.ID, models.BugRequest{Title: "x", Description: strings.Repeat("a", 60)})
	assert.True(t, errors.Is(err, shared.ErrValidation))
	_, err = bugs.Create(user.ID, models.BugRequest{Title: "Valid title", Description: "too short"})
	assert.True(t, errors.Is(err, shared.ErrValidation))

	bug, err := bugs.Create(user.ID, models.BugRequest{
		Title:       "Broken overview",
		Description: "Opening the overview with more than fifty selected days renders an empty page every time.",
	})
	assert.NoError(t, err)
	assert.Equal(t, "sam", bug.Username)

	approved, err := bugs.Approve(bug.ID)
	assert.NoError(t, err)
	assert.True(t, approved.Approved)

	// Done does not require a prior approval
	fresh, err := bugs.Create(user.ID, models.BugRequest{
		Title:       "Another issue",
		Description: "The request id header disappears from responses when the server is under heavy load.",
	})
	assert.NoError(t, err)
	done, err := bugs.MarkDone(fresh.ID)
	assert.NoError(t, err)
	assert.True(t, done.Done)
	assert.False(t, done.Approved)

	linked, err := bugs.SetIssueLink(bug.ID, "https://example.com/issues/11")
	assert.NoError(t, err)
	if assert.NotNil(t, linked.IssueLink) {
		assert.Equal(t, "https://example.com/issues/11", *linked.IssueLink)
	}
}

func TestSuggestionServiceScoping(t *testing.T) {
	repo, cfg, cleanup := setupServiceTest(t)
	defer cleanup()
	users := NewUserService(repo, cfg)
	sugs := NewSuggestionService(repo)
	alice := registerTestUser(t, users, "tina")
	bob := registerTestUser(t, users, "victor")

	created, err := sugs.Create(alice.ID, models.SuggestionRequest{
		Description: "Dark mode for the calendar view would be really nice to have.",
	})
	assert.NoError(t, err)

	// Description length enforced
	_, err = sugs.Create(alice.ID, models.SuggestionRequest{Description: "too short"})
	assert.True(t, errors.Is(err, shared.ErrValidation))

	// Owner sees it, the other user does not
	own, err := sugs.ListOwn(alice.ID)
	assert.NoError(t, err)
	assert.Len(t, own, 1)

	_, err = sugs.GetOwn(bob.ID, created.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	// Admin listing sees everything
	all, err := sugs.ListAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNewsService(t *testing.T) {
	repo, _, cleanup := setupServiceTest(t)
	defer cleanup()
	news := NewNewsService(repo)

	_, err := news.Create(models.NewsRequest{Title: "hi", Description: "way too short title above"})
	assert.True(t, errors.Is(err, shared.ErrValidation))

	entry, err := news.Create(models.NewsRequest{
		Title:       "New filter endpoint",
		Description: "Effects can now be filtered by rating, see the API docs for details.",
	})
	assert.NoError(t, err)

	feed, err := news.List()
	assert.NoError(t, err)
	assert.Len(t, feed, 1)

	loaded, err := news.GetByID(entry.ID)
	assert.NoError(t, err)
	assert.Equal(t, entry.Title, loaded.Title)

	assert.NoError(t, news.DeleteAll())
	feed, err = news.List()
	assert.NoError(t, err)
	assert.Empty(t, feed)
}
