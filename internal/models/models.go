// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

// User represents a user account in the system.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Omit from JSON responses
	Role         string `json:"role"`
}

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Day is one tracked calendar day: a color code plus a rating.
// Date is stored as dd/mm/yyyy and is unique per owner.
type Day struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	Red      int    `json:"red"`
	Green    int    `json:"green"`
	Blue     int    `json:"blue"`
	Rate     int    `json:"rate"`
	AutoRate bool   `json:"auto_rate"`
	Owner    int64  `json:"owner"`
}

// DayWithAverage is a Day plus its derived average effect rating.
type DayWithAverage struct {
	Day
	AverageRate float64 `json:"average_rate"`
}

// Effect is a timed sub-entry under a Day.
type Effect struct {
	ID          int64  `json:"id"`
	Time        string `json:"time"`
	Rate        int    `json:"rate"`
	Description string `json:"description"`
	ForeignKey  int64  `json:"foreign_key"`
	Owner       int64  `json:"owner"`
}

// EffectAverage is the derived mean rating of a day's effects.
type EffectAverage struct {
	ForeignKey  int64   `json:"foreign_key"`
	AverageRate float64 `json:"average_rate"`
	Count       int     `json:"count"`
}

// Bug is a user-filed bug report, moderated by admins.
type Bug struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	UserID      int64   `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Approved    bool    `json:"approved"`
	Done        bool    `json:"done"`
	IssueLink   *string `json:"issue_link"`
}

// Suggestion is a user-filed feature suggestion, moderated by admins.
type Suggestion struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	UserID      int64   `json:"user_id"`
	Description string  `json:"description"`
	Approved    bool    `json:"approved"`
	Done        bool    `json:"done"`
	IssueLink   *string `json:"issue_link"`
}

// News is an admin-curated announcement visible to all users.
type News struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// --- REQUEST PAYLOADS ---

// RegisterRequest is the JSON body for POST /auth/.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateDayRequest is used for POST /days/new. Owner is stamped server-side.
type CreateDayRequest struct {
	Date     string `json:"date"`
	Red      int    `json:"red"`
	Green    int    `json:"green"`
	Blue     int    `json:"blue"`
	Rate     int    `json:"rate"`
	AutoRate bool   `json:"auto_rate"`
}

// UpdateDayRequest is used for PUT /days/id/{id}. Date and owner are
// immutable after creation, so they are deliberately absent here.
type UpdateDayRequest struct {
	Red      int  `json:"red"`
	Green    int  `json:"green"`
	Blue     int  `json:"blue"`
	Rate     int  `json:"rate"`
	AutoRate bool `json:"auto_rate"`
}

// CreateEffectRequest is used for POST /effects/new.
type CreateEffectRequest struct {
	Time        string `json:"time"`
	Rate        int    `json:"rate"`
	Description string `json:"description"`
	ForeignKey  int64  `json:"foreign_key"`
}

// UpdateEffectRequest is used for PUT /effects/id/{id}. Nil fields are
// left unchanged.
type UpdateEffectRequest struct {
	Time        *string `json:"time,omitempty"`
	Rate        *int    `json:"rate,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BugRequest is the JSON body for POST /bugs.
type BugRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestionRequest is the JSON body for POST /suggestions.
type SuggestionRequest struct {
	Description string `json:"description"`
}

// NewsRequest is the JSON body for POST /admin/news.
type NewsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChangePasswordRequest is the JSON body for PUT /account.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// UserSummary is the admin-facing listing shape: no hash, no secrets.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
