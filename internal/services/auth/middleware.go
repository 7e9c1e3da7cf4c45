// filepath: internal/services/auth/middleware.go
package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"daylog/internal/logging"
	"daylog/internal/shared"
)

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware provides authentication and authorization middleware.
type Middleware struct {
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(token TokenService) *Middleware {
	return &Middleware{Token: token}
}

// Authenticate checks for a valid JWT Bearer token and stores the resolved
// identity in the request context. 401 on a missing, malformed or expired
// token.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := m.Token.Verify(tokenString)
		if err != nil {
			logging.Log.Warnf("Authenticate: Invalid Bearer token: %v", err)
			if errors.Is(err, shared.ErrMissingClaims) {
				writeError(w, http.StatusUnauthorized, "Invalid Credentials")
			} else if errors.Is(err, jwt.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "Token expired")
			} else {
				writeError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), identity)))
	})
}

// RequireAdmin gates admin-only routes on the role claim embedded in the
// token. The role is not re-fetched from the store: a demotion takes effect
// on the user's next login.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			logging.Log.Warnf("RequireAdmin: No identity found in context for %s", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if !identity.IsAdmin() {
			logging.Log.Warnf("RequireAdmin: Access DENIED for user '%s' on %s", identity.Username, r.URL.Path)
			writeError(w, http.StatusForbidden, "No Admin privileges")
			return
		}

		next.ServeHTTP(w, r)
	})
}
