package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type syncService struct {
	localUsers  store.LocalUserRepository
	remoteUsers store.RemoteUserRepository

	logger *logger.Logger
}

// NewSyncService creates a SyncService that treats the remote collection as
// the source of truth.
func NewSyncService(localUsers store.LocalUserRepository, remoteUsers store.RemoteUserRepository, logger *logger.Logger) SyncService {
	return &syncService{
		localUsers:  localUsers,
		remoteUsers: remoteUsers,
		logger:      logger,
	}
}

// Reconcile upserts every remote user into the local store by email. Rows
// that already match are left alone and local-only rows are kept. A failure
// on one user is counted and logged; only failing to read either store aborts
// the pass.
func (s *syncService) Reconcile(ctx context.Context) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	remote, err := s.remoteUsers.ListUsers(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	local, err := s.localUsers.GetAll(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("reading local users: %w", err)
	}

	byEmail := make(map[string]models.User, len(local))
	for _, u := range local {
		byEmail[u.Email] = u
	}

	var result models.SyncResult
	for _, r := range remote {
		if r.Email == "" {
			continue
		}

		want := r.ToLocal()
		have, ok := byEmail[r.Email]
		if !ok {
			created, err := s.localUsers.Insert(ctx, want)
			if err != nil {
				log.Err(err).Str("func", "*syncService.Reconcile").Str("key", r.Key).Msg("insert failed")
				result.Failed++
				continue
			}
			byEmail[r.Email] = created
			result.Inserted++
			continue
		}

		want.ID = have.ID
		if sameUser(have, want) {
			continue
		}

		if err = s.localUsers.Update(ctx, want); err != nil {
			log.Err(err).Str("func", "*syncService.Reconcile").Str("key", r.Key).Msg("update failed")
			result.Failed++
			continue
		}
		result.Updated++
	}

	if result.Changed() || result.Failed > 0 {
		log.Info().Str("func", "*syncService.Reconcile").
			Int("inserted", result.Inserted).
			Int("updated", result.Updated).
			Int("failed", result.Failed).
			Msg("users reconciled")
	}

	return result, nil
}

func sameUser(a, b models.User) bool {
	if a.Username != b.Username || a.Name != b.Name || a.Surname != b.Surname ||
		a.Email != b.Email || a.PasswordHash != b.PasswordHash || a.Gender != b.Gender ||
		a.DateOfBirth != b.DateOfBirth || a.Role != b.Role || a.RegistrationDate != b.RegistrationDate {
		return false
	}

	switch {
	case a.ProfilePictureURL == nil && b.ProfilePictureURL == nil:
		return true
	case a.ProfilePictureURL == nil || b.ProfilePictureURL == nil:
		return false
	default:
		return *a.ProfilePictureURL == *b.ProfilePictureURL
	}
}
