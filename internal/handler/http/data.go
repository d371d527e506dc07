package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"newsroom/internal/logger"
	"newsroom/internal/service"
	"newsroom/internal/utils"
	"newsroom/internal/validators"
	"newsroom/models"
)

// validationErrorsBody is the 422 response envelope with per-field
// validation messages.
type validationErrorsBody struct {
	Errors map[string][]string `json:"errors"`
}

// parsePageRequest reads the page and limit query parameters. Absent or
// malformed values are left at zero; the service layer substitutes its
// configured defaults.
func parsePageRequest(r *http.Request) models.PageRequest {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	return models.PageRequest{Page: page, Limit: limit}
}

// parseIDParam extracts a numeric URL parameter. The second return value
// reports whether parsing succeeded.
func parseIDParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// actorFromRequest returns the user stored by the auth middleware, or a
// zero (anonymous) user when the middleware did not run.
func actorFromRequest(r *http.Request) models.User {
	actor, _ := utils.UserFromContext(r.Context())
	return actor
}

// handleServiceError maps service-layer failures onto HTTP status codes:
//
//   - field-level validation failures → 422 with the errors envelope
//   - not-found conditions → 404
//   - authorization denials → 403
//   - missing identity → 401
//   - bad credentials → 400
//   - anything else → 500
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var verr *validators.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.WriteJSON(w, r, http.StatusUnprocessableEntity, validationErrorsBody{Errors: verr.Fields})
	case errors.Is(err, service.ErrNewsNotFound), errors.Is(err, service.ErrUserNotFound):
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrTokenIsExpired):
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	default:
		log.Err(err).Msg("unexpected error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
