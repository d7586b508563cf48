package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// SessionService authenticates accounts and issues session tokens.
type SessionService interface {
	// LoginLocal checks the credentials against the local store, using the
	// admin table when req.Admin is set.
	LoginLocal(ctx context.Context, req models.LoginRequest) (models.User, error)
	// LoginRemote checks the credentials against the remote user collection.
	LoginRemote(ctx context.Context, req models.LoginRequest) (models.RemoteUser, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	GoogleSignIn(ctx context.Context, idToken string) (models.User, error)

	CreateToken(ctx context.Context, email string, role models.Role) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads and edits user profiles and backs the admin user
// management endpoints.
type ProfileService interface {
	GetProfile(ctx context.Context, email string) (models.User, error)
	EditProfile(ctx context.Context, email string, update models.ProfileUpdate, photo *models.Photo) (models.RemoteUser, error)
	ListUsers(ctx context.Context) ([]models.RemoteUser, error)
	SubscribeUsers(ctx context.Context) *store.Subscription[[]models.RemoteUser]
	DeleteUser(ctx context.Context, key string) error
}

// FavoritesService passes favorites and comments through to the remote store.
type FavoritesService interface {
	AddToFavorites(ctx context.Context, email string, recipe models.Recipe) error
	RemoveFromFavorites(ctx context.Context, email, recipeID string) error
	GetFavoriteRecipes(ctx context.Context, email string) ([]models.Recipe, error)
	PostComment(ctx context.Context, email, recipeID, text string) (models.Comment, error)
	ListComments(ctx context.Context, recipeID string) ([]models.Comment, error)
}

type RecipeService interface {
	Search(ctx context.Context, keyword string) []models.Recipe
}

type ReportService interface {
	Build(ctx context.Context, year string) (models.Report, error)
}

// SyncService copies the authoritative remote users into the local store.
type SyncService interface {
	Reconcile(ctx context.Context) (models.SyncResult, error)
}

// UserSyncJob runs SyncService.Reconcile periodically in the background.
type UserSyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AdminSeeder creates the default admin account.
type AdminSeeder interface {
	SeedAdmin(ctx context.Context) error
}
