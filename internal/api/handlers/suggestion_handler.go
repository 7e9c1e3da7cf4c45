// filepath: internal/api/handlers/suggestion_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"daylog/internal/models"
)

// @Summary File a suggestion
// @Tags Suggestions
// @Accept  json
// @Produce  json
// @Param   suggestion  body  models.SuggestionRequest  true  "Suggestion"
// @Success 201 {object} models.Suggestion
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /suggestions [post]
func (h *Handlers) CreateSuggestion(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var req models.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	sug, err := h.Suggestion.Create(ident.ID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, sug)
}

// @Summary List own suggestions
// @Tags Suggestions
// @Produce  json
// @Success 200 {array} models.Suggestion
// @Security BearerAuth
// @Router /suggestions [get]
func (h *Handlers) GetOwnSuggestions(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	sugs, err := h.Suggestion.ListOwn(ident.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sugs)
}

// @Summary Get one of your suggestions
// @Tags Suggestions
// @Produce  json
// @Param   id  path  int  true  "Suggestion ID"
// @Success 200 {object} models.Suggestion
// @Failure 404 {object} ErrorResponse "No such suggestion"
// @Security BearerAuth
// @Router /suggestions/{id} [get]
func (h *Handlers) GetOwnSuggestionByID(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	sug, err := h.Suggestion.GetOwn(ident.ID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sug)
}
