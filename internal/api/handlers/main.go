// filepath: internal/api/handlers/main.go
package handlers

import (
	"daylog/internal/config"
	"daylog/internal/services"
	"daylog/internal/services/auth"
)

// Handlers holds the shared dependencies for the API handlers.
type Handlers struct {
	User       services.UserService
	Day        services.DayService
	Effect     services.EffectService
	Bug        services.BugService
	Suggestion services.SuggestionService
	News       services.NewsService
	Token      auth.TokenService

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	user services.UserService,
	day services.DayService,
	effect services.EffectService,
	bug services.BugService,
	suggestion services.SuggestionService,
	news services.NewsService,
	token auth.TokenService,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		User:       user,
		Day:        day,
		Effect:     effect,
		Bug:        bug,
		Suggestion: suggestion,
		News:       news,
		Token:      token,
		Cfg:        cfg,
	}
}
