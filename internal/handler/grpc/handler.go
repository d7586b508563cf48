// Package grpc exposes the standard gRPC health service for the
// recipe-keeper server. Load balancers and orchestrators probe it next to
// the REST API.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported to health checks for the recipe API.
const ServiceName = "recipekeeper.v1.RecipeKeeper"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server
	logger   *logger.Logger
}

// NewHandler constructs a Handler. Health status starts as NOT_SERVING until
// Register is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health and reflection services to s and marks the
// recipe API as serving.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)

	if h.services != nil && h.services.AppInfoService != nil {
		h.logger.Info().
			Str("version", h.services.AppInfoService.GetAppVersion(context.Background())).
			Msg("gRPC health registered")
	}

	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every service to NOT_SERVING so that in-flight probes see
// the server draining.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLogging attaches a trace-scoped logger to each call and writes one
// log line per RPC.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", utils.NewTraceID())
	})

	resp, err := next(l.WithContext(ctx), req)

	event := l.Info()
	if err != nil {
		event = l.Warn().Err(err)
	}
	event.Str("method", info.FullMethod).Dur("duration", time.Since(start)).Send()

	return resp, err
}
