package service

import (
	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type Services struct {
	SessionService   SessionService
	ProfileService   ProfileService
	FavoritesService FavoritesService
	RecipeService    RecipeService
	ReportService    ReportService
	SyncService      SyncService
	AppInfoService   AppInfoService
	AdminSeeder      AdminSeeder
	UserSyncJob      UserSyncJob
}

func NewServices(
	storages *store.Storages,
	recipeClient adapter.RecipeClient,
	identity adapter.IdentityVerifier,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewAccountValidator()
	syncService := NewSyncService(storages.LocalUserRepository, storages.RemoteUserRepository, logger)

	return &Services{
		SessionService: NewSessionService(storages.LocalUserRepository, storages.RemoteUserRepository,
			identity, validator, cfg.App, logger),
		ProfileService: NewProfileService(storages.LocalUserRepository, storages.RemoteUserRepository,
			storages.PhotoStorage, validator, logger),
		FavoritesService: NewFavoritesService(storages.FavoriteRepository, storages.CommentRepository, logger),
		RecipeService:    NewRecipeService(recipeClient, logger),
		ReportService:    NewReportService(storages.RemoteUserRepository, logger),
		SyncService:      syncService,
		AppInfoService:   appInfo,
		AdminSeeder:      NewAdminSeeder(storages.LocalUserRepository, cfg, logger),
		UserSyncJob:      NewUserSyncJob(syncService, logger),
	}, nil
}
