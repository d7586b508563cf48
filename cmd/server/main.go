package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/docstore"
	"github.com/MKhiriev/go-recipe-keeper/internal/handler"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/server"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/workers"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("recipe-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	recipeClient, err := adapter.NewRecipeClient(cfg.Recipes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating recipe client")
	}

	identity, err := newIdentityVerifier(ctx, cfg.Identity, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity verifier")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, recipeClient, identity, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if err = services.AdminSeeder.SeedAdmin(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding admin account")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(log, workers.NewUserSync(services.UserSyncJob, cfg.Workers.SyncInterval))
	bg.Run(ctx)

	srv.RunServer()

	cancel()
	bg.Stop()
}

// newIdentityVerifier returns a Firebase-backed verifier when an identity
// project is configured. Without one Google sign-in answers 503.
func newIdentityVerifier(ctx context.Context, cfg config.Identity, log *logger.Logger) (adapter.IdentityVerifier, error) {
	if !cfg.Enabled() {
		log.Warn().Msg("identity provider not configured, Google sign-in disabled")
		return adapter.NewDisabledIdentityVerifier(), nil
	}

	app, err := docstore.NewFirebaseApp(ctx, "", cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	return adapter.NewFirebaseIdentityVerifier(ctx, app, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
