// filepath: internal/api/handlers/utils.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"daylog/internal/services/auth"
)

// pathID extracts the {id}-style route variable as an int64.
func pathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("missing path parameter %q", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

// identity pulls the authenticated caller out of the request context. The
// auth middleware guarantees it is present on protected routes.
func identity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	ident, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return ident, true
}

// parseIntList parses a comma-separated list of integers, e.g. "1,2,3".
func parseIntList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid list value %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}
