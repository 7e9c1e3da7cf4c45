// filepath: internal/api/handlers/admin_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"daylog/internal/models"
)

// issueLinkRequest is the JSON body for the moderation link endpoints.
type issueLinkRequest struct {
	Link string `json:"link"`
}

// --- News administration ---

// @Summary Publish news
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param   news  body  models.NewsRequest  true  "News entry"
// @Success 201 {object} models.News
// @Failure 403 {object} ErrorResponse "No Admin privileges"
// @Failure 422 {object} ErrorResponse "Validation failed"
// @Security BearerAuth
// @Router /admin/news [post]
func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req models.NewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	entry, err := h.News.Create(req)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, entry)
}

// @Summary Delete a news entry
// @Tags Admin
// @Param   id  path  int  true  "News ID"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "No Admin privileges"
// @Failure 404 {object} ErrorResponse "No such entry"
// @Security BearerAuth
// @Router /admin/news/{id} [delete]
func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.News.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Clear the news feed
// @Tags Admin
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse "No Admin privileges"
// @Security BearerAuth
// @Router /admin/news [delete]
func (h *Handlers) DeleteAllNews(w http.ResponseWriter, r *http.Request) {
	if err := h.News.DeleteAll(); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Bug moderation ---

// @Summary List all bug reports
// @Tags Admin
// @Produce  json
// @Success 200 {array} models.Bug
// @Failure 403 {object} ErrorResponse "No Admin privileges"
// @Security BearerAuth
// @Router /admin/bugs [get]
func (h *Handlers) GetAllBugs(w http.ResponseWriter, r *http.Request) {
	bugs, err := h.Bug.ListAll()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bugs)
}

// @Summary Get any bug report
// @Tags Admin
// @Produce  json
// @Param   id  path  int  true  "Bug ID"
// @Success 200 {object} models.Bug
// @Failure 404 {object} ErrorResponse "No such bug"
// @Security BearerAuth
// @Router /admin/bugs/{id} [get]
func (h *Handlers) GetBugByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	bug, err := h.Bug.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, bug)
}

// @Summary Approve a bug report
// @Tags Admin
// @Param   id  path  int  true  "Bug ID"
// @Success 204 "Approved"
// @Failure 404 {object} ErrorResponse "No such bug"
// @Security BearerAuth
// @Router /admin/bugs/approve/{id} [put]
func (h *Handlers) ApproveBug(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.Bug.Approve(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Mark a bug report done
// @Tags Admin
// @Param   id  path  int  true  "Bug ID"
// @Success 204 "Done"
// @Failure 404 {object} ErrorResponse "No such bug"
// @Security BearerAuth
// @Router /admin/bugs/done/{id} [put]
func (h *Handlers) MarkBugDone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.Bug.MarkDone(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Attach an issue link to a bug
// @Tags Admin
// @Accept  json
// @Param   id    path  int              true  "Bug ID"
// @Param   link  body  issueLinkRequest  true  "Issue tracker URL"
// @Success 204 "Linked"
// @Failure 404 {object} ErrorResponse "No such bug"
// @Security BearerAuth
// @Router /admin/bugs/link/{id} [put]
func (h *Handlers) SetBugLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var req issueLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if _, err := h.Bug.SetIssueLink(id, req.Link); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete a bug report
// @Tags Admin
// @Param   id  path  int  true  "Bug ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "No such bug"
// @Security BearerAuth
// @Router /admin/bugs/{id} [delete]
func (h *Handlers) DeleteBug(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Bug.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Suggestion moderation ---

// @Summary List all suggestions
// @Tags Admin
// @Produce  json
// @Success 200 {array} models.Suggestion
// @Failure 403 {object} ErrorResponse "No Admin privileges"
// @Security BearerAuth
// @Router /admin/suggestions [get]
func (h *Handlers) GetAllSuggestions(w http.ResponseWriter, r *http.Request) {
	sugs, err := h.Suggestion.ListAll()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sugs)
}

// @Summary Get any suggestion
// @Tags Admin
// @Produce  json
// @Param   id  path  int  true  "Suggestion ID"
// @Success 200 {object} models.Suggestion
// @Failure 404 {object} ErrorResponse "No such suggestion"
// @Security BearerAuth
// @Router /admin/suggestions/{id} [get]
func (h *Handlers) GetSuggestionByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	sug, err := h.Suggestion.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sug)
}

// @Summary Approve a suggestion
// @Tags Admin
// @Param   id  path  int  true  "Suggestion ID"
// @Success 204 "Approved"
// @Failure 404 {object} ErrorResponse "No such suggestion"
// @Security BearerAuth
// @Router /admin/suggestions/approve/{id} [put]
func (h *Handlers) ApproveSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.Suggestion.Approve(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Mark a suggestion done
// @Tags Admin
// @Param   id  path  int  true  "Suggestion ID"
// @Success 204 "Done"
// @Failure 404 {object} ErrorResponse "No such suggestion"
// @Security BearerAuth
// @Router /admin/suggestions/done/{id} [put]
func (h *Handlers) MarkSuggestionDone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.Suggestion.MarkDone(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Attach an issue link to a suggestion
// @Tags Admin
// @Accept  json
// @Param   id    path  int              true  "Suggestion ID"
// @Param   link  body  issueLinkRequest  true  "Issue tracker URL"
// @Success 204 "Linked"
// @Failure 404 {object} ErrorResponse "No such suggestion"
// @Security BearerAuth
// @Router /admin/suggestions/link/{id} [put]
func (h *Handlers) SetSuggestionLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	var req issueLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if _, err := h.Suggestion.SetIssueLink(id, req.Link); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Delete a suggestion
// @Tags Admin
// @Param   id  path  int  true  "Suggestion ID"
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse "No such suggestion"
// @Security BearerAuth
// @Router /admin/suggestions/{id} [delete]
func (h *Handlers) DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.Suggestion.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- User administration ---

// @Summary List all users
// @Tags Admin
// @Produce  json
// @Success 200 {array} models.UserSummary
// @Failure 403 {object} ErrorResponse "No Admin privileges"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.User.GetUsers()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

// @Summary Get a user
// @Tags Admin
// @Produce  json
// @Param   id  path  int  true  "User ID"
// @Success 200 {object} models.UserSummary
// @Failure 404 {object} ErrorResponse "No such user"
// @Security BearerAuth
// @Router /admin/users/{id} [get]
func (h *Handlers) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	user, err := h.User.GetUserByID(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.UserSummary{ID: user.ID, Username: user.Username, Role: user.Role})
}

// @Summary Toggle a user's admin role
// @Description Promote a user to admin or demote an admin to user. Demoting the last admin is refused.
// @Tags Admin
// @Param   id  path  int  true  "User ID"
// @Success 204 "Role changed"
// @Failure 404 {object} ErrorResponse "No such user"
// @Failure 406 {object} ErrorResponse "Cannot demote the last admin"
// @Security BearerAuth
// @Router /admin/users/toggle-admin/{id} [put]
func (h *Handlers) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if _, err := h.User.ToggleAdmin(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
