// filepath: internal/api/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"daylog/internal/logging"
	"daylog/internal/models"
)

// tokenResponse is the JSON body returned on successful registration and login.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// @Summary Register a new account
// @Description Create a user account and receive a bearer token.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param   credentials  body  models.RegisterRequest  true  "Username and password"
// @Success 201 {object} tokenResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Router /auth/ [post]
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	user, err := h.User.Register(req.Username, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	token, err := h.Token.Issue(user)
	if err != nil {
		logging.Log.Errorf("Token generation failed for %s: %v", user.Username, err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate token")
		return
	}
	respondWithJSON(w, http.StatusCreated, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}

// @Summary Get a bearer token
// @Description Authenticate with form-encoded username/password to receive a bearer token.
// @Tags Auth
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   username  formData  string  true  "Username"
// @Param   password  formData  string  true  "Password"
// @Success 200 {object} tokenResponse
// @Failure 401 {object} ErrorResponse "Authentication failed"
// @Router /auth/token [post]
func (h *Handlers) GetToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.User.Authenticate(username, password)
	if err != nil {
		// Uniform response: no hint whether the account exists.
		respondWithError(w, http.StatusUnauthorized, "Invalid Credentials")
		return
	}

	token, err := h.Token.Issue(user)
	if err != nil {
		logging.Log.Errorf("Token generation failed for %s: %v", username, err)
		respondWithError(w, http.StatusInternalServerError, "Could not generate token")
		return
	}
	respondWithJSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "Bearer"})
}
