// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged [StructuredConfig] can be used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key and positive token duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordCost < bcrypt.MinCost || cfg.App.PasswordCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordCost)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Remote.DatabaseURL == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Photos.Bucket == "" && cfg.Storage.Photos.Dir == "" {
		return fmt.Errorf("%w: photo bucket or directory is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Recipes.Provider {
	case ProviderMealDB:
	case ProviderSpoonacular:
		if cfg.Recipes.APIKey == "" {
			return fmt.Errorf("%w: spoonacular requires an API key", ErrInvalidRecipesConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidRecipesConfigs, cfg.Recipes.Provider)
	}
	if cfg.Recipes.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidRecipesConfigs)
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Seed.Admin && (cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" || cfg.Seed.AdminUsername == "") {
		return ErrInvalidSeedConfigs
	}

	return nil
}
