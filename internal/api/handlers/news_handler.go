// filepath: internal/api/handlers/news_handler.go
package handlers

import (
	"net/http"
)

// @Summary List news
// @Description The news feed, newest first. Visible to every authenticated user.
// @Tags News
// @Produce  json
// @Success 200 {array} models.News
// @Security BearerAuth
// @Router /news [get]
func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.News.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, news)
}

// @Summary Get a news entry
// @Tags News
// @Produce  json
// @Param   id  path  int  true  "News ID"
// @Success 200 {object} models.News
// @Failure 404 {object} ErrorResponse "No such entry"
// @Security BearerAuth
// @Router /news/{id} [get]
func (h *Handlers) GetNewsByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	entry, err := h.News.GetByID(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, entry)
}
