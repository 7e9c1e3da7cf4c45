// filepath: internal/api/handlers/effect_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"daylog/internal/models"
)

// effectFilterRequest is the JSON body for POST /effects/filter.
type effectFilterRequest struct {
	Rates []int `json:"rates"`
}

// @Summary Create an effect
// @Description Attach a timed effect to one of the caller's days.
// @Tags Effects
// @Accept  json
// @Produce  json
// @Param   effect  body  models.CreateEffectRequest  true  "Effect data"
// @Success 201 {object} models.Effect
// @Failure 404 {object} ErrorResponse "Parent day not found"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /effects/new [post]
func (h *Handlers) CreateEffect(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var req models.CreateEffectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	effect, err := h.Effect.Create(ident.ID, req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, effect)
}

// @Summary List all effects
// @Tags Effects
// @Produce  json
// @Success 200 {array} models.Effect
// @Security BearerAuth
// @Router /effects [get]
func (h *Handlers) GetEffects(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	effects, err := h.Effect.List(ident.ID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, effects)
}

// @Summary Get an effect by ID
// @Tags Effects
// @Produce  json
// @Param   id  path  int  true  "Effect ID"
// @Success 200 {object} models.Effect
// @Failure 404 {object} ErrorResponse "No such effect"
// @Security BearerAuth
// @Router /effects/id/{id} [get]
func (h *Handlers) GetEffectByID(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	effect, err := h.Effect.GetByID(ident.ID, id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, effect)
}

// @Summary List effects of a day
// @Tags Effects
// @Produce  json
// @Param   foreign_key  path  int  true  "Day ID"
// @Success 200 {array} models.Effect
// @Failure 404 {object} ErrorResponse "No such day"
// @Security BearerAuth
// @Router /effects/foreign_key/{foreign_key} [get]
func (h *Handlers) GetEffectsByDay(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	fk, err := pathID(r, "foreign_key")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	effects, err := h.Effect.ListByDay(ident.ID, fk)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, effects)
}

// @Summary Average effect rating of a day
// @Tags Effects
// @Produce  json
// @Param   foreign_key  query  int  true  "Day ID"
// @Success 200 {object} models.EffectAverage
// @Failure 404 {object} ErrorResponse "No such day"
// @Security BearerAuth
// @Router /effects/avg [get]
func (h *Handlers) GetEffectAverage(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	fk, err := strconv.ParseInt(r.URL.Query().Get("foreign_key"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "invalid foreign_key")
		return
	}
	avg, err := h.Effect.Average(ident.ID, fk)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, avg)
}

// @Summary Filter effects by rating
// @Description Return the caller's effects carrying any of the given rates.
// @Tags Effects
// @Accept  json
// @Produce  json
// @Param   filter  body  effectFilterRequest  true  "Rates to match"
// @Success 200 {array} models.Effect
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /effects/filter [post]
func (h *Handlers) FilterEffects(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var req effectFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	effects, err := h.Effect.Filter(ident.ID, req.Rates)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, effects)
}

// @Summary Update an effect
// @Description Partial update. Absent fields keep their stored value.
// @Tags Effects
// @Accept  json
// @Param   id      path  int                         true  "Effect ID"
// @Param   effect  body  models.UpdateEffectRequest  true  "New values"
// @Success 204 "Updated"
// @Failure 404 {object} ErrorResponse "No such effect"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /effects/id/{id} [put]
func (h *Handlers) UpdateEffect(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var req models.UpdateEffectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if _, err := h.Effect.Update(ident.ID, id, req); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete an effect
// @Tags Effects
// @Param   id  path  int  true  "Effect ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "No such effect"
// @Security BearerAuth
// @Router /effects/id/{id} [delete]
func (h *Handlers) DeleteEffect(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Effect.Delete(ident.ID, id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete all effects of a day
// @Tags Effects
// @Param   foreign_key  path  int  true  "Day ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "No such day"
// @Security BearerAuth
// @Router /effects/foreign_key/{foreign_key} [delete]
func (h *Handlers) DeleteEffectsByDay(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	fk, err := pathID(r, "foreign_key")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Effect.DeleteByDay(ident.ID, fk); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete all effects
// @Tags Effects
// @Success 204 "Deleted"
// @Security BearerAuth
// @Router /effects [delete]
func (h *Handlers) DeleteEffects(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	if err := h.Effect.DeleteAll(ident.ID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
