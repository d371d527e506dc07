package http

import (
	"encoding/json"
	"net/http"

	"newsroom/internal/logger"
	"newsroom/internal/utils"
	"newsroom/models"
)

// register creates a new enabled user account.
//
// Responses:
//   - 201 with the public user representation.
//   - 422 with field-level validation errors, including duplicate
//     username or email.
//   - 400 on a malformed body.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registered, err := h.services.AuthService.Register(ctx, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusCreated, models.NewUserResponse(registered))
}

// login verifies credentials and returns a signed token.
//
// Responses:
//   - 200 with {"Authorization": "<token>"}.
//   - 404 when no account exists for the email.
//   - 400 on wrong password, disabled account or a malformed body.
//   - 422 with field-level validation errors.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input models.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, input)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, r, http.StatusOK, models.LoginResponse{Authorization: token.SignedString})
}
