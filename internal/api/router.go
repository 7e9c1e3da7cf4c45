// filepath: internal/api/router.go
package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/oklog/ulid/v2"
	httpSwagger "github.com/swaggo/http-swagger"

	"daylog/internal/api/handlers"
	"daylog/internal/logging"
	"daylog/internal/services/auth"
)

// requestIDMiddleware tags every request with a ULID and logs the outcome.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ulid.Make().String()
		w.Header().Set("X-Request-ID", id)

		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Log.WithFields(map[string]interface{}{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"duration":   time.Since(start).String(),
		}).Debug("request handled")
	})
}

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	// Public endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	r.HandleFunc("/auth/", h.Register).Methods("POST")
	r.HandleFunc("/auth/token", h.GetToken).Methods("POST")

	// Everything below requires a bearer token.
	authed := r.PathPrefix("").Subrouter()
	authed.Use(am.Authenticate)

	addDayRoutes(authed, h)
	addEffectRoutes(authed, h)
	addFeedbackRoutes(authed, h)
	addNewsRoutes(authed, h)
	addAccountRoutes(authed, h)
	addAdminRoutes(authed, h, am)

	return r
}

// addDayRoutes configures the owner-scoped day endpoints.
func addDayRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/days/new", h.CreateDay).Methods("POST")
	r.HandleFunc("/days/date", h.GetDayByDate).Methods("GET")
	r.HandleFunc("/days/overview", h.GetDaysOverview).Methods("GET")
	r.HandleFunc("/days/id/{id}", h.GetDayByID).Methods("GET")
	r.HandleFunc("/days/id/{id}", h.UpdateDay).Methods("PUT")
	r.HandleFunc("/days/id/{id}", h.DeleteDay).Methods("DELETE")
	r.HandleFunc("/days", h.GetDays).Methods("GET")
	r.HandleFunc("/days", h.DeleteDays).Methods("DELETE")
}

// addEffectRoutes configures the owner-scoped effect endpoints.
func addEffectRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/effects/new", h.CreateEffect).Methods("POST")
	r.HandleFunc("/effects/avg", h.GetEffectAverage).Methods("GET")
	r.HandleFunc("/effects/filter", h.FilterEffects).Methods("POST")
	r.HandleFunc("/effects/foreign_key/{foreign_key}", h.GetEffectsByDay).Methods("GET")
	r.HandleFunc("/effects/foreign_key/{foreign_key}", h.DeleteEffectsByDay).Methods("DELETE")
	r.HandleFunc("/effects/id/{id}", h.GetEffectByID).Methods("GET")
	r.HandleFunc("/effects/id/{id}", h.UpdateEffect).Methods("PUT")
	r.HandleFunc("/effects/id/{id}", h.DeleteEffect).Methods("DELETE")
	r.HandleFunc("/effects", h.GetEffects).Methods("GET")
	r.HandleFunc("/effects", h.DeleteEffects).Methods("DELETE")
}

// addFeedbackRoutes configures the user-facing bug and suggestion endpoints.
func addFeedbackRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/bugs", h.CreateBug).Methods("POST")
	r.HandleFunc("/bugs", h.GetOwnBugs).Methods("GET")
	r.HandleFunc("/bugs/{id}", h.GetOwnBugByID).Methods("GET")

	r.HandleFunc("/suggestions", h.CreateSuggestion).Methods("POST")
	r.HandleFunc("/suggestions", h.GetOwnSuggestions).Methods("GET")
	r.HandleFunc("/suggestions/{id}", h.GetOwnSuggestionByID).Methods("GET")
}

// addNewsRoutes configures the read-only news feed.
func addNewsRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/news", h.GetNews).Methods("GET")
	r.HandleFunc("/news/{id}", h.GetNewsByID).Methods("GET")
}

// addAccountRoutes configures self-service account management.
func addAccountRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/account", h.ChangePassword).Methods("PUT")
	r.HandleFunc("/account/data", h.DeleteAccountData).Methods("DELETE")
}

// addAdminRoutes configures the admin-only moderation and curation endpoints.
func addAdminRoutes(r *mux.Router, h *handlers.Handlers, am *auth.Middleware) {
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(am.RequireAdmin)

	admin.HandleFunc("/news", h.CreateNews).Methods("POST")
	admin.HandleFunc("/news", h.DeleteAllNews).Methods("DELETE")
	admin.HandleFunc("/news/{id}", h.DeleteNews).Methods("DELETE")

	admin.HandleFunc("/bugs", h.GetAllBugs).Methods("GET")
	admin.HandleFunc("/bugs/approve/{id}", h.ApproveBug).Methods("PUT")
	admin.HandleFunc("/bugs/done/{id}", h.MarkBugDone).Methods("PUT")
	admin.HandleFunc("/bugs/link/{id}", h.SetBugLink).Methods("PUT")
	admin.HandleFunc("/bugs/{id}", h.GetBugByID).Methods("GET")
	admin.HandleFunc("/bugs/{id}", h.DeleteBug).Methods("DELETE")

	admin.HandleFunc("/suggestions", h.GetAllSuggestions).Methods("GET")
	admin.HandleFunc("/suggestions/approve/{id}", h.ApproveSuggestion).Methods("PUT")
	admin.HandleFunc("/suggestions/done/{id}", h.MarkSuggestionDone).Methods("PUT")
	admin.HandleFunc("/suggestions/link/{id}", h.SetSuggestionLink).Methods("PUT")
	admin.HandleFunc("/suggestions/{id}", h.GetSuggestionByID).Methods("GET")
	admin.HandleFunc("/suggestions/{id}", h.DeleteSuggestion).Methods("DELETE")

	admin.HandleFunc("/users", h.GetUsers).Methods("GET")
	admin.HandleFunc("/users/toggle-admin/{id}", h.ToggleAdmin).Methods("PUT")
	admin.HandleFunc("/users/{id}", h.GetUserByID).Methods("GET")
}
