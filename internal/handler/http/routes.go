package http

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withTimeout, withGZip)

		r.Get("/api/version", h.getServerVersion)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.loginLocal)
		r.Post("/api/auth/login/remote", h.loginRemote)
		r.Post("/api/auth/google", h.googleSignIn)

		r.Get("/api/recipes/search", h.searchRecipes)
		r.Get("/api/recipes/{id}/comments", h.listComments)
	})

	// routes for signed-in users
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withTimeout, withGZip)

		r.Get("/api/favorites", h.getFavorites)
		r.Post("/api/favorites", h.addFavorite)
		r.Delete("/api/favorites/{idMeal}", h.removeFavorite)

		r.Post("/api/recipes/{id}/comments", h.postComment)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.editProfile)
		r.Post("/api/profile/photo", h.editProfileWithPhoto)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireAdmin)

		// the stream outlives the request timeout and needs the raw connection
		r.Get("/api/admin/users/stream", h.streamUsers)

		r.Group(func(r chi.Router) {
			r.Use(h.withTimeout, withGZip)

			r.Get("/api/admin/users", h.listUsers)
			r.Delete("/api/admin/users/{key}", h.deleteUser)
			r.Get("/api/admin/report", h.getReport)
		})
	})

	if h.photosDir != "" {
		router.Handle("/profilePictures/*",
			http.StripPrefix("/profilePictures/", http.FileServer(noListingFS{http.Dir(h.photosDir)})))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}
	return middleware.Timeout(h.requestTimeout)(next)
}

// noListingFS serves regular files only; directories look missing so the
// file server never renders an index of stored photos.
type noListingFS struct {
	fs http.FileSystem
}

func (n noListingFS) Open(name string) (http.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}
