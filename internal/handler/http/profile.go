package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const (
	maxPhotoSize   = 10 << 20
	photoFormField = "photo"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	user, err := h.services.ProfileService.GetProfile(r.Context(), email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.ProfileService.EditProfile(r.Context(), email, update, nil)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

// editProfileWithPhoto accepts a multipart form with the profile fields as
// values and the picture under "photo".
func (h *Handler) editProfileWithPhoto(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := sessionEmail(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+1<<20)
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(photoFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			utils.WriteError(w, "photo is required", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("error reading photo")
		utils.WriteError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	defer file.Close()

	update := models.ProfileUpdate{
		Username:    r.FormValue("username"),
		Name:        r.FormValue("name"),
		Surname:     r.FormValue("surname"),
		Gender:      r.FormValue("gender"),
		DateOfBirth: r.FormValue("dateOfBirth"),
	}
	photo := &models.Photo{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}

	user, err := h.services.ProfileService.EditProfile(r.Context(), email, update, photo)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

