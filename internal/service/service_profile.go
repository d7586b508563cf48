package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type profileService struct {
	localUsers  store.LocalUserRepository
	remoteUsers store.RemoteUserRepository
	photos      store.PhotoStorage
	validator   validators.Validator

	logger *logger.Logger
}

func NewProfileService(
	localUsers store.LocalUserRepository,
	remoteUsers store.RemoteUserRepository,
	photos store.PhotoStorage,
	validator validators.Validator,
	logger *logger.Logger,
) ProfileService {
	return &profileService{
		localUsers:  localUsers,
		remoteUsers: remoteUsers,
		photos:      photos,
		validator:   validator,
		logger:      logger,
	}
}

// GetProfile returns the local row for email, or the remote record when the
// local cache has not caught up yet.
func (s *profileService) GetProfile(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.localUsers.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*profileService.GetProfile").Msg("local lookup failed")
	}

	key, err := store.EmailKey(email)
	if err != nil {
		return models.User{}, ErrProfileNotFound
	}

	remote, err := s.remoteUsers.GetUser(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrRemoteUserNotFound) {
			return models.User{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", "*profileService.GetProfile").Msg("remote lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	local := remote.ToLocal()
	local.PasswordHash = ""
	return local, nil
}

// EditProfile merges the non-empty fields of update into the remote record
// of email, uploading photo first when one is given. Email and role are
// never changed. The local row is refreshed on a best-effort basis.
func (s *profileService) EditProfile(ctx context.Context, email string, update models.ProfileUpdate, photo *models.Photo) (models.RemoteUser, error) {
	log := logger.FromContext(ctx)

	update.Username = strings.TrimSpace(update.Username)
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key, err := store.EmailKey(email)
	if err != nil {
		return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.remoteUsers.GetUser(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrRemoteUserNotFound) {
			return models.RemoteUser{}, ErrProfileNotFound
		}
		return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	merged := mergeProfile(existing, update)

	var photoURL *string
	if photo != nil {
		url, err := s.photos.UploadPhoto(ctx, photo.Name, photo.ContentType, photo.Content)
		if err != nil {
			log.Err(err).Str("func", "*profileService.EditProfile").Msg("photo upload failed")
			return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrPhotoUploadFailed, err)
		}
		photoURL = &url
		merged.ProfilePictureURL = photoURL
	}

	if err = s.remoteUsers.UpdateUserProfile(ctx, key, merged, photoURL); err != nil {
		log.Err(err).Str("func", "*profileService.EditProfile").Msg("remote update failed")
		return models.RemoteUser{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	s.refreshLocal(ctx, merged)

	merged.Key = key
	return merged.WithoutSecrets(), nil
}

func (s *profileService) refreshLocal(ctx context.Context, remote models.RemoteUser) {
	log := logger.FromContext(ctx)

	local, err := s.localUsers.GetByEmail(ctx, remote.Email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "*profileService.refreshLocal").Msg("local lookup failed")
		}
		return
	}

	local.Username = remote.Username
	local.Name = remote.Name
	local.Surname = remote.Surname
	local.Gender = remote.Gender
	local.DateOfBirth = remote.DateOfBirth
	local.ProfilePictureURL = remote.ProfilePictureURL

	if err = s.localUsers.Update(ctx, local); err != nil {
		log.Err(err).Str("func", "*profileService.refreshLocal").Msg("local update failed, sync will retry")
	}
}

func mergeProfile(u models.RemoteUser, update models.ProfileUpdate) models.RemoteUser {
	if update.Username != "" {
		u.Username = update.Username
	}
	if update.Name != "" {
		u.Name = update.Name
	}
	if update.Surname != "" {
		u.Surname = update.Surname
	}
	if update.Gender != "" {
		u.Gender = update.Gender
	}
	if update.DateOfBirth != "" {
		u.DateOfBirth = update.DateOfBirth
	}

	return u
}

func (s *profileService) ListUsers(ctx context.Context) ([]models.RemoteUser, error) {
	users, err := s.remoteUsers.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*profileService.ListUsers").Msg("listing users failed")
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	for i := range users {
		users[i] = users[i].WithoutSecrets()
	}

	return users, nil
}

// SubscribeUsers streams the remote user list. Password hashes are stripped
// by the caller before anything is written to a client.
func (s *profileService) SubscribeUsers(ctx context.Context) *store.Subscription[[]models.RemoteUser] {
	return s.remoteUsers.SubscribeUsers(ctx)
}

// DeleteUser removes the remote record under key and the local row with the
// same email.
func (s *profileService) DeleteUser(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	user, err := s.remoteUsers.GetUser(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrRemoteUserNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	if err = s.remoteUsers.DeleteUser(ctx, key); err != nil {
		log.Err(err).Str("func", "*profileService.DeleteUser").Str("key", key).Msg("remote delete failed")
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	err = s.localUsers.Delete(ctx, models.User{Email: user.Email})
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("func", "*profileService.DeleteUser").Str("key", key).Msg("local delete failed")
	}

	log.Info().Str("func", "*profileService.DeleteUser").Str("key", key).Msg("user deleted")
	return nil
}
