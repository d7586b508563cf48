package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

// errorStatusTable is checked in order, so more specific errors that may be
// wrapped together with a generic one come first.
var errorStatusTable = []struct {
	err    error
	status int
}{
	{store.ErrEmptyPhoto, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrEmailAlreadyRegistered, http.StatusConflict},
	{store.ErrEmailAlreadyExists, http.StatusConflict},

	{service.ErrProfileNotFound, http.StatusNotFound},
	{service.ErrFavoriteNotFound, http.StatusNotFound},

	{service.ErrIdentityUnavailable, http.StatusServiceUnavailable},

	{service.ErrRegistrationFailed, http.StatusBadGateway},
	{service.ErrRemoteUnavailable, http.StatusBadGateway},
	{service.ErrPhotoUploadFailed, http.StatusBadGateway},

	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and writes the mapped status. Client errors
// carry the error text, server errors only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
