package http

import (
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	// photosDir is served under /profilePictures/ when photos are stored
	// on local disk. Empty disables the route.
	photosDir      string
	requestTimeout time.Duration
	// allowedOrigins may open the users stream from a browser on another host.
	allowedOrigins []string

	logger *logger.Logger
}

// Option customizes a Handler.
type Option func(*Handler)

// WithPhotosDir serves dir under /profilePictures/.
func WithPhotosDir(dir string) Option {
	return func(h *Handler) { h.photosDir = dir }
}

// WithRequestTimeout bounds every non-streaming request.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) { h.requestTimeout = d }
}

// WithAllowedOrigins accepts websocket handshakes from the given origins,
// e.g. "https://admin.example.com".
func WithAllowedOrigins(origins ...string) Option {
	return func(h *Handler) { h.allowedOrigins = append(h.allowedOrigins, origins...) }
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
