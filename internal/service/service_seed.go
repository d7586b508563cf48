package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type adminSeeder struct {
	localUsers store.LocalUserRepository

	seed         config.Seed
	passwordCost int

	logger *logger.Logger
}

func NewAdminSeeder(localUsers store.LocalUserRepository, cfg config.StructuredConfig, logger *logger.Logger) AdminSeeder {
	return &adminSeeder{
		localUsers:   localUsers,
		seed:         cfg.Seed,
		passwordCost: cfg.App.PasswordCost,
		logger:       logger,
	}
}

// SeedAdmin inserts the configured admin into the local store unless a row
// with the admin username already exists. It does nothing when seeding is
// disabled.
func (s *adminSeeder) SeedAdmin(ctx context.Context) error {
	if !s.seed.Admin {
		return nil
	}

	_, err := s.localUsers.FindByUsername(ctx, s.seed.AdminUsername)
	if err == nil {
		s.logger.Debug().Str("func", "*adminSeeder.SeedAdmin").Msg("admin already present")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("looking up admin: %w", err)
	}

	hash, err := utils.HashPassword(s.seed.AdminPassword, s.passwordCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := models.User{
		Username:         s.seed.AdminUsername,
		Name:             "Admin",
		Surname:          "User",
		Email:            s.seed.AdminEmail,
		PasswordHash:     hash,
		Role:             models.RoleAdmin,
		RegistrationDate: utils.Today(),
	}

	if _, err = s.localUsers.Insert(ctx, admin); err != nil {
		return fmt.Errorf("inserting admin: %w", err)
	}

	s.logger.Info().Str("func", "*adminSeeder.SeedAdmin").Str("username", admin.Username).Msg("admin seeded")
	return nil
}
