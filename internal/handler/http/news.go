package http

import (
	"encoding/json"
	"net/http"

	"newsroom/internal/logger"
	"newsroom/internal/utils"
	"newsroom/models"
)

// listNews returns one page of news items. An empty page, including an
// empty collection, responds with 404.
func (h *Handler) listNews(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.NewsService.List(r.Context(), parsePageRequest(r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, models.NewNewsPageResponse(page))
}

func (h *Handler) getNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "newsID")
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	news, err := h.services.NewsService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, models.NewNewsResponse(news))
}

// createNews stores a new item with the authenticated user stamped as both
// creator and editor.
func (h *Handler) createNews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var input models.NewsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.NewsService.Create(r.Context(), actorFromRequest(r), input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusCreated, models.NewNewsResponse(created))
}

// updateNews replaces the title and description of an item. Only the
// creator may edit; others receive 403.
func (h *Handler) updateNews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "newsID")
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var input models.NewsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.NewsService.Update(r.Context(), actorFromRequest(r), id, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, models.NewNewsResponse(updated))
}

// deleteNews removes an item. Only the creator may delete; a repeated
// delete of the same id responds with 404.
func (h *Handler) deleteNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "newsID")
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := h.services.NewsService.Delete(r.Context(), actorFromRequest(r), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
