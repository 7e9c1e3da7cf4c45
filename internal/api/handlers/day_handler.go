// filepath: internal/api/handlers/day_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"daylog/internal/models"
)

// @Summary Create a day
// @Description Store a new tracked day for the authenticated user.
// @Tags Days
// @Accept  json
// @Produce  json
// @Param   day  body  models.CreateDayRequest  true  "Day data"
// @Success 201 {object} models.Day
// @Failure 409 {object} ErrorResponse "Date already tracked"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /days/new [post]
func (h *Handlers) CreateDay(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var req models.CreateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	day, err := h.Day.Create(ident.ID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, day)
}

// @Summary Get a day by date
// @Description Look up the caller's day for a dd/mm/yyyy date, including the derived average rating.
// @Tags Days
// @Produce  json
// @Param   date  query  string  true  "Date (dd/mm/yyyy)"
// @Success 200 {object} models.DayWithAverage
// @Failure 404 {object} ErrorResponse "No such day"
// @Failure 422 {object} ErrorResponse "Bad date format"
// @Security BearerAuth
// @Router /days/date [get]
func (h *Handlers) GetDayByDate(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	day, err := h.Day.GetByDate(ident.ID, r.URL.Query().Get("date"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, day)
}

// @Summary Get a day by ID
// @Tags Days
// @Produce  json
// @Param   id  path  int  true  "Day ID"
// @Success 200 {object} models.DayWithAverage
// @Failure 404 {object} ErrorResponse "No such day"
// @Security BearerAuth
// @Router /days/id/{id} [get]
func (h *Handlers) GetDayByID(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	day, err := h.Day.GetByID(ident.ID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, day)
}

// @Summary List all days
// @Description List every day the caller has tracked, with derived averages.
// @Tags Days
// @Produce  json
// @Success 200 {array} models.DayWithAverage
// @Security BearerAuth
// @Router /days [get]
func (h *Handlers) GetDays(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	days, err := h.Day.List(ident.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, days)
}

// @Summary Day overview
// @Description Fetch a selection of the caller's days by ID, with derived averages.
// @Tags Days
// @Produce  json
// @Param   days_id  query  []int  true  "Day IDs (repeatable)"
// @Success 200 {array} models.DayWithAverage
// @Security BearerAuth
// @Router /days/overview [get]
func (h *Handlers) GetDaysOverview(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	ids := make([]int64, 0)
	for _, raw := range r.URL.Query()["days_id"] {
		parsed, err := parseIntList(raw)
		if err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		ids = append(ids, parsed...)
	}
	days, err := h.Day.Overview(ident.ID, ids)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, days)
}

// @Summary Update a day
// @Description Change a day's color and rating. Date and owner are immutable.
// @Tags Days
// @Accept  json
// @Param   id   path  int                      true  "Day ID"
// @Param   day  body  models.UpdateDayRequest  true  "New values"
// @Success 204 "Updated"
// @Failure 404 {object} ErrorResponse "No such day"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /days/id/{id} [put]
func (h *Handlers) UpdateDay(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var req models.UpdateDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if _, err := h.Day.Update(ident.ID, id, req); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete a day
// @Description Remove a day and its effects.
// @Tags Days
// @Param   id  path  int  true  "Day ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "No such day"
// @Security BearerAuth
// @Router /days/id/{id} [delete]
func (h *Handlers) DeleteDay(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Day.Delete(ident.ID, id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete all days
// @Description Wipe every day (and effect) the caller has tracked.
// @Tags Days
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /days [delete]
func (h *Handlers) DeleteDays(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	if err := h.Day.DeleteAll(ident.ID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
