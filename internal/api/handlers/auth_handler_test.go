// filepath: internal/api/handlers/auth_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"daylog/internal/models"
	"daylog/internal/services/auth"
	"daylog/internal/services/mocks"
	"daylog/internal/shared"
)

// stubToken is a trivial TokenService stub; real token behavior is covered
// in the auth package tests.
type stubToken struct {
	token string
	err   error
}

func (s *stubToken) Issue(user *models.User) (string, error) { return s.token, s.err }
func (s *stubToken) Verify(token string) (*auth.Identity, error) {
	return nil, shared.ErrInvalidToken
}

func TestRegisterHandler(t *testing.T) {
	mockUserSvc := new(mocks.MockUserService)
	h := &Handlers{User: mockUserSvc, Token: &stubToken{token: "signed-token"}}

	mockUserSvc.On("Register", "newuser", "GoodPassword1").
		Return(&models.User{ID: 1, Username: "newuser", Role: models.RoleUser}, nil)

	body := `{"username":"newuser","password":"GoodPassword1"}`
	req := httptest.NewRequest("POST", "/auth/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp tokenResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	mockUserSvc.AssertExpectations(t)
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	mockUserSvc := new(mocks.MockUserService)
	h := &Handlers{User: mockUserSvc, Token: &stubToken{}}

	mockUserSvc.On("Register", "taken", "GoodPassword1").Return(nil, shared.ErrUserExists)

	body := `{"username":"taken","password":"GoodPassword1"}`
	req := httptest.NewRequest("POST", "/auth/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegisterHandlerValidation(t *testing.T) {
	mockUserSvc := new(mocks.MockUserService)
	h := &Handlers{User: mockUserSvc, Token: &stubToken{}}

	mockUserSvc.On("Register", "x", "short").Return(nil, shared.ErrValidation)

	body := `{"username":"x","password":"short"}`
	req := httptest.NewRequest("POST", "/auth/", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestGetTokenHandler(t *testing.T) {
	mockUserSvc := new(mocks.MockUserService)
	h := &Handlers{User: mockUserSvc, Token: &stubToken{token: "login-token"}}

	mockUserSvc.On("Authenticate", "alice", "GoodPassword1").
		Return(&models.User{ID: 2, Username: "alice", Role: models.RoleUser}, nil)

	form := url.Values{"username": {"alice"}, "password": {"GoodPassword1"}}
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.GetToken(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp tokenResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "login-token", resp.AccessToken)
}

func TestGetTokenHandlerUniformFailure(t *testing.T) {
	mockUserSvc := new(mocks.MockUserService)
	h := &Handlers{User: mockUserSvc, Token: &stubToken{}}

	// Both wrong password and missing account produce the same body
	mockUserSvc.On("Authenticate", "alice", "wrong").Return(nil, shared.ErrInvalidCredentials)
	mockUserSvc.On("Authenticate", "ghost", "whatever").Return(nil, shared.ErrInvalidCredentials)

	for _, creds := range []url.Values{
		{"username": {"alice"}, "password": {"wrong"}},
		{"username": {"ghost"}, "password": {"whatever"}},
	} {
		req := httptest.NewRequest("POST", "/auth/token", strings.NewReader(creds.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := httptest.NewRecorder()
		h.GetToken(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid Credentials", resp.Error)
	}
}
