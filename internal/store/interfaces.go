package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalUserRepository is the relational cache of user accounts.
type LocalUserRepository interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, user models.User) error
	GetAll(ctx context.Context) ([]models.User, error)
	Watch(ctx context.Context) *Subscription[[]models.User]
	GetByEmail(ctx context.Context, email string) (models.User, error)
	ValidateUser(ctx context.Context, email, password string) (models.User, error)
	ValidateAdmin(ctx context.Context, email, password string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
}

// RemoteUserRepository is the authoritative user collection in the remote
// document tree.
type RemoteUserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	InsertUser(ctx context.Context, user models.RemoteUser) (string, error)
	FindByEmail(ctx context.Context, email string) ([]models.RemoteUser, error)
	GetUser(ctx context.Context, key string) (models.RemoteUser, error)
	ListUsers(ctx context.Context) ([]models.RemoteUser, error)
	SubscribeUsers(ctx context.Context) *Subscription[[]models.RemoteUser]
	UpdateUserProfile(ctx context.Context, key string, user models.RemoteUser, photoURL *string) error
	DeleteUser(ctx context.Context, key string) error
}

type FavoriteRepository interface {
	AddToFavorites(ctx context.Context, email string, recipe models.Recipe) error
	RemoveFromFavorites(ctx context.Context, email, recipeID string) error
	GetFavoriteRecipes(ctx context.Context, email string) ([]models.Recipe, error)
}

type CommentRepository interface {
	PostComment(ctx context.Context, email, recipeID, text string) (models.Comment, error)
	ListComments(ctx context.Context, recipeID string) ([]models.Comment, error)
}

// PhotoStorage is the blob store for profile pictures.
type PhotoStorage interface {
	// UploadPhoto stores the photo and returns its public download URL.
	UploadPhoto(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
