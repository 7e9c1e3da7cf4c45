// filepath: internal/api/router_test.go
package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"

	"daylog/internal/api/handlers"
	"daylog/internal/config"
	"daylog/internal/models"
	"daylog/internal/services/auth"
	"daylog/internal/services/mocks"
)

func testRouterSetup() (*httptest.Server, auth.TokenService, *mocks.MockBugService) {
	cfg := &config.Config{JWTSecret: "router-test-secret"}
	cfg.JWT.AccessDurationHours = 1

	tokenSvc := auth.NewTokenService(cfg)
	bugSvc := new(mocks.MockBugService)
	h := &handlers.Handlers{Bug: bugSvc, Token: tokenSvc, Cfg: cfg}
	router := SetupRouter(h, auth.NewMiddleware(tokenSvc))
	return httptest.NewServer(router), tokenSvc, bugSvc
}

func TestHealthIsPublic(t *testing.T) {
	srv, _, _ := testRouterSetup()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRequestIDUnderConcurrentLoad(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := requestIDMiddleware(inner)

	const workers = 16
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				rec := httptest.NewRecorder()
				req := httptest.NewRequest("GET", "/health", nil)
				handler.ServeHTTP(rec, req)

				id := rec.Header().Get("X-Request-ID")
				if _, err := ulid.Parse(id); err != nil {
					t.Errorf("malformed request id %q: %v", id, err)
					return
				}
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	srv, _, _ := testRouterSetup()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/days")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRejectPlainUsers(t *testing.T) {
	srv, tokenSvc, _ := testRouterSetup()
	defer srv.Close()

	token, err := tokenSvc.Issue(&models.User{ID: 5, Username: "plain", Role: models.RoleUser})
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", srv.URL+"/admin/bugs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminRoutesAllowAdmins(t *testing.T) {
	srv, tokenSvc, bugSvc := testRouterSetup()
	defer srv.Close()

	bugSvc.On("ListAll").Return([]models.Bug{}, nil)

	token, err := tokenSvc.Issue(&models.User{ID: 1, Username: "root", Role: models.RoleAdmin})
	assert.NoError(t, err)

	req, _ := http.NewRequest("GET", srv.URL+"/admin/bugs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	bugSvc.AssertExpectations(t)
}
