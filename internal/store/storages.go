package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/docstore"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// Storages groups every repository the service layer depends on. It is
// built once at startup and passed down by reference.
type Storages struct {
	LocalUserRepository  LocalUserRepository
	RemoteUserRepository RemoteUserRepository
	FavoriteRepository   FavoriteRepository
	CommentRepository    CommentRepository
	PhotoStorage         PhotoStorage

	db *DB
}

// NewStorages connects to the local database, applies migrations, opens the
// remote tree and the photo store described by cfg.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	tree, err := newTree(ctx, cfg.Remote, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("remote store error: %w", err)
	}

	photos, err := newPhotoStorage(ctx, cfg.Photos, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("photo storage error: %w", err)
	}

	return &Storages{
		LocalUserRepository:  NewLocalUserRepository(db, log),
		RemoteUserRepository: NewRemoteUserRepository(tree, cfg.Remote.PollInterval, log),
		FavoriteRepository:   NewFavoriteRepository(tree, log),
		CommentRepository:    NewCommentRepository(tree, log),
		PhotoStorage:         photos,
		db:                   db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func newTree(ctx context.Context, cfg config.Remote, log *logger.Logger) (docstore.Tree, error) {
	if cfg.DatabaseURL == config.RemoteMemory {
		log.Warn().Msg("using in-memory remote store, data is lost on restart")
		return docstore.NewMemoryTree(), nil
	}

	app, err := docstore.NewFirebaseApp(ctx, cfg.DatabaseURL, "", cfg.CredentialsFile)
	if err != nil {
		return nil, err
	}

	return docstore.NewFirebaseTree(ctx, app)
}

func newPhotoStorage(ctx context.Context, cfg config.Photos, log *logger.Logger) (PhotoStorage, error) {
	switch {
	case cfg.Bucket != "":
		return NewS3PhotoStorage(ctx, cfg, log)
	case cfg.Dir != "":
		return NewFilePhotoStorage(cfg.Dir, cfg.PublicURL, log)
	}

	return nil, errors.New("neither photo bucket nor directory configured")
}
