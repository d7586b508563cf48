package http

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	svcs := newTestServices(t)
	svcs.ProfileService.(*fakeProfileSvc).getProfile = func(email string) (models.User, error) {
		if email == "ghost@example.com" {
			return models.User{}, service.ErrProfileNotFound
		}
		return models.User{ID: 7, Email: email, Username: "chef"}, nil
	}
	router := newTestHandler(t, svcs).Init()

	rec := serve(t, router, authed(t, httptest.NewRequest(http.MethodGet, "/api/profile", nil), "ann@example.com"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"chef"`)

	rec = serve(t, router, authed(t, httptest.NewRequest(http.MethodGet, "/api/profile", nil), "ghost@example.com"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditProfile_JSON(t *testing.T) {
	svcs := newTestServices(t)
	svcs.ProfileService.(*fakeProfileSvc).editProfile = func(email string, update models.ProfileUpdate, photo *models.Photo) (models.RemoteUser, error) {
		assert.Equal(t, "ann@example.com", email)
		assert.Equal(t, "Anna", update.Name)
		assert.Nil(t, photo)
		return models.RemoteUser{Email: email, Name: update.Name}, nil
	}
	router := newTestHandler(t, svcs).Init()

	req := authed(t, httptest.NewRequest(http.MethodPut, "/api/profile", strings.NewReader(`{"name":"Anna"}`)), "ann@example.com")
	rec := serve(t, router, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Anna"`)
}

func multipartPhotoRequest(t *testing.T, withFile bool) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("surname", "Lee-Smith"))

	if withFile {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="photo"; filename="me.png"`)
		header.Set("Content-Type", "image/png")
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/photo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestEditProfileWithPhoto(t *testing.T) {
	svcs := newTestServices(t)
	svcs.ProfileService.(*fakeProfileSvc).editProfile = func(email string, update models.ProfileUpdate, photo *models.Photo) (models.RemoteUser, error) {
		assert.Equal(t, "Lee-Smith", update.Surname)
		require.NotNil(t, photo)
		assert.Equal(t, "me.png", photo.Name)
		assert.Equal(t, "image/png", photo.ContentType)
		content, err := io.ReadAll(photo.Content)
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))

		url := "http://localhost/profilePictures/1-a.png"
		return models.RemoteUser{Email: email, Surname: update.Surname, ProfilePictureURL: &url}, nil
	}
	router := newTestHandler(t, svcs).Init()

	rec := serve(t, router, authed(t, multipartPhotoRequest(t, true), "ann@example.com"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"profilePictureUrl":"http://localhost/profilePictures/1-a.png"`)
}

func TestEditProfileWithPhoto_MissingFile(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	rec := serve(t, router, authed(t, multipartPhotoRequest(t, false), "ann@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "photo is required", decodeError(t, rec))
}

func TestEditProfileWithPhoto_EmptyPhoto(t *testing.T) {
	svcs := newTestServices(t)
	svcs.ProfileService.(*fakeProfileSvc).editProfile = func(string, models.ProfileUpdate, *models.Photo) (models.RemoteUser, error) {
		return models.RemoteUser{}, fmt.Errorf("%w: %w", service.ErrPhotoUploadFailed, store.ErrEmptyPhoto)
	}
	router := newTestHandler(t, svcs).Init()

	rec := serve(t, router, authed(t, multipartPhotoRequest(t, true), "ann@example.com"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
