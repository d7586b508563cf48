package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// auth rejects requests without a valid bearer token with 401 and stores
// the token's email and role in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.SessionService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Err(err).Msg("token expired")
				utils.WriteError(w, service.ErrTokenIsExpired.Error(), http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		email, err := token.GetEmail()
		if err != nil {
			log.Err(err).Msg("token without subject")
			utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, email, token.Role)))
	})
}

// requireAdmin must run after auth. Non-admin sessions get 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || role != models.RoleAdmin {
			logger.FromRequest(r).Warn().Str("role", string(role)).Msg(ErrAdminRequired.Error())
			utils.WriteError(w, ErrAdminRequired.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sessionEmail returns the authenticated email or writes 401.
func sessionEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := utils.GetEmailFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoSession).Send()
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return "", false
	}

	return email, true
}
