package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.SessionService.Register(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeSession(w, r, user.Email, user.Role, user, http.StatusCreated)
}

func (h *Handler) loginLocal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.SessionService.LoginLocal(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.ID).Bool("admin", user.IsAdmin()).Msg("user successfully logged in")
	h.writeSession(w, r, user.Email, user.Role, user, http.StatusOK)
}

func (h *Handler) loginRemote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.SessionService.LoginRemote(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeSession(w, r, user.Email, user.Role, user, http.StatusOK)
}

func (h *Handler) googleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.GoogleSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.SessionService.GoogleSignIn(ctx, req.IDToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeSession(w, r, user.Email, user.Role, user, http.StatusOK)
}

// writeSession issues a token for email, sets it as a bearer token in the
// Authorization header and writes the account as the response body.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, email string, role models.Role, user any, status int) {
	token, err := h.services.SessionService.CreateToken(r.Context(), email, role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, models.LoginResponse{Email: email, Role: role, User: user}, status)
}
