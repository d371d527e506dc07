package http

import (
	"encoding/json"
	"net/http"

	"newsroom/internal/logger"
	"newsroom/internal/utils"
	"newsroom/models"
)

// listUsers returns one page of user accounts. Unlike the news listing,
// an empty page responds with 200.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.UserService.List(r.Context(), parsePageRequest(r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, models.NewUserPageResponse(page))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "userID")
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, models.NewUserResponse(user))
}

// updateUser changes the username and email of an account. Only the
// account owner may edit; others receive 403.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := parseIDParam(r, "userID")
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	var input models.UserEditInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), actorFromRequest(r), id, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, models.NewUserResponse(updated))
}

// deleteUser removes an account. Only the account owner may delete.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "userID")
	if !ok {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := h.services.UserService.Delete(r.Context(), actorFromRequest(r), id); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
