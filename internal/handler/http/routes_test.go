package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type routeCase struct {
	method string
	path   string
}

func serve(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	routes := []routeCase{
		{http.MethodGet, "/api/favorites"},
		{http.MethodPost, "/api/favorites"},
		{http.MethodDelete, "/api/favorites/52772"},
		{http.MethodPost, "/api/recipes/52772/comments"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPut, "/api/profile"},
		{http.MethodPost, "/api/profile/photo"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodGet, "/api/admin/users/stream"},
		{http.MethodDelete, "/api/admin/users/ann@example,com"},
		{http.MethodGet, "/api/admin/report"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, router, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// ---- Admin routes: 403 for user tokens ----

func TestInit_AdminRoutesRequireAdminRole(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	routes := []routeCase{
		{http.MethodGet, "/api/admin/users"},
		{http.MethodGet, "/api/admin/users/stream"},
		{http.MethodDelete, "/api/admin/users/ann@example,com"},
		{http.MethodGet, "/api/admin/report"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", bearer(t, "ann@example.com", models.RoleUser))

			rec := serve(t, router, req)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	rec := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	rec := serve(t, router, httptest.NewRequest(http.MethodPost, "/api/version", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_Version(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	rec := serve(t, router, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"test-version","commit":"abc123"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_ServesProfilePictures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-a.png"), []byte("png-bytes"), 0o644))

	router := newTestHandler(t, newTestServices(t), WithPhotosDir(dir)).Init()

	rec := serve(t, router, httptest.NewRequest(http.MethodGet, "/profilePictures/1-a.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = serve(t, router, httptest.NewRequest(http.MethodGet, "/profilePictures/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_ProfilePicturesDirectoryIsNotListed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1-a.png"), []byte("png-bytes"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	router := newTestHandler(t, newTestServices(t), WithPhotosDir(dir)).Init()

	for _, path := range []string{"/profilePictures/", "/profilePictures/nested/"} {
		rec := serve(t, router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.NotContains(t, rec.Body.String(), "1-a.png", path)
	}
}

func TestInit_NoPhotosDir(t *testing.T) {
	router := newTestHandler(t, newTestServices(t)).Init()

	rec := serve(t, router, httptest.NewRequest(http.MethodGet, "/profilePictures/1-a.png", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
