// filepath: internal/services/interfaces.go
package services

import (
	"daylog/internal/models"
)

// UserService handles registration, authentication and user administration.
type UserService interface {
	Register(username, password string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	ChangePassword(userID int64, current, newPassword, confirm string) error
	GetUsers() ([]models.UserSummary, error)
	GetUserByID(id int64) (*models.User, error)
	ToggleAdmin(userID int64) (*models.UserSummary, error)
	DeleteUserData(userID int64) error
	InitializeAdminUser() error
}

// DayService manages the per-owner day entries.
type DayService interface {
	Create(ownerID int64, req models.CreateDayRequest) (*models.Day, error)
	GetByDate(ownerID int64, date string) (*models.DayWithAverage, error)
	GetByID(ownerID, id int64) (*models.DayWithAverage, error)
	List(ownerID int64) ([]models.DayWithAverage, error)
	Overview(ownerID int64, ids []int64) ([]models.DayWithAverage, error)
	Update(ownerID, id int64, req models.UpdateDayRequest) (*models.Day, error)
	Delete(ownerID, id int64) error
	DeleteAll(ownerID int64) error
}

// EffectService manages the sub-entries attached to days.
type EffectService interface {
	Create(ownerID int64, req models.CreateEffectRequest) (*models.Effect, error)
	List(ownerID int64) ([]models.Effect, error)
	GetByID(ownerID, id int64) (*models.Effect, error)
	ListByDay(ownerID, dayID int64) ([]models.Effect, error)
	Filter(ownerID int64, rates []int) ([]models.Effect, error)
	Average(ownerID, dayID int64) (*models.EffectAverage, error)
	Update(ownerID, id int64, req models.UpdateEffectRequest) (*models.Effect, error)
	Delete(ownerID, id int64) error
	DeleteByDay(ownerID, dayID int64) error
	DeleteAll(ownerID int64) error
}

// BugService covers user-filed bug reports and their moderation.
type BugService interface {
	Create(userID int64, req models.BugRequest) (*models.Bug, error)
	ListOwn(userID int64) ([]models.Bug, error)
	GetOwn(userID, id int64) (*models.Bug, error)
	ListAll() ([]models.Bug, error)
	Get(id int64) (*models.Bug, error)
	Approve(id int64) (*models.Bug, error)
	MarkDone(id int64) (*models.Bug, error)
	SetIssueLink(id int64, link string) (*models.Bug, error)
	Delete(id int64) error
}

// SuggestionService covers user-filed suggestions and their moderation.
type SuggestionService interface {
	Create(userID int64, req models.SuggestionRequest) (*models.Suggestion, error)
	ListOwn(userID int64) ([]models.Suggestion, error)
	GetOwn(userID, id int64) (*models.Suggestion, error)
	ListAll() ([]models.Suggestion, error)
	Get(id int64) (*models.Suggestion, error)
	Approve(id int64) (*models.Suggestion, error)
	MarkDone(id int64) (*models.Suggestion, error)
	SetIssueLink(id int64, link string) (*models.Suggestion, error)
	Delete(id int64) error
}

// NewsService manages the admin-curated news feed.
type NewsService interface {
	Create(req models.NewsRequest) (*models.News, error)
	List() ([]models.News, error)
	GetByID(id int64) (*models.News, error)
	Delete(id int64) error
	DeleteAll() error
}
