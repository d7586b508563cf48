package handler

import (
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-recipe-keeper/internal/handler/http"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every transport that has an address.
// Profile pictures are served from the local photo directory only when no
// S3 bucket is configured.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		opts := []http.Option{
			http.WithRequestTimeout(cfg.Server.RequestTimeout),
			http.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
		}
		if cfg.Storage.Photos.Bucket == "" && cfg.Storage.Photos.Dir != "" {
			opts = append(opts, http.WithPhotosDir(cfg.Storage.Photos.Dir))
		}
		handlers.HTTP = http.NewHandler(services, logger, opts...)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
