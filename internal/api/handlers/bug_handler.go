// filepath: internal/api/handlers/bug_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"daylog/internal/models"
)

// @Summary File a bug report
// @Tags Bugs
// @Accept  json
// @Produce  json
// @Param   bug  body  models.BugRequest  true  "Bug report"
// @Success 201 {object} models.Bug
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /bugs [post]
func (h *Handlers) CreateBug(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var req models.BugRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	bug, err := h.Bug.Create(ident.ID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, bug)
}

// @Summary List own bug reports
// @Tags Bugs
// @Produce  json
// @Success 200 {array} models.Bug
// @Security BearerAuth
// @Router /bugs [get]
func (h *Handlers) GetOwnBugs(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	bugs, err := h.Bug.ListOwn(ident.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bugs)
}

// @Summary Get one of your bug reports
// @Tags Bugs
// @Produce  json
// @Param   id  path  int  true  "Bug ID"
// @Success 200 {object} models.Bug
// @Failure 404 {object} ErrorResponse "No such bug"
// @Security BearerAuth
// @Router /bugs/{id} [get]
func (h *Handlers) GetOwnBugByID(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	bug, err := h.Bug.GetOwn(ident.ID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bug)
}
