// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter wraps the external services the recipe keeper talks to:
// the recipe search APIs and the identity provider used for Google sign-in.
//
// Two [RecipeClient] implementations exist, one per search API
// ([NewMealDBClient], [NewSpoonacularClient]); both return recipes in the
// MealDB shape. HTTP status codes are mapped to the sentinel errors in
// errors.go by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RecipeClient searches a recipe API by keyword.
type RecipeClient interface {
	// Search returns the recipes matching keyword. Transport and decoding
	// failures are logged and reported as an empty result.
	Search(ctx context.Context, keyword string) []models.Recipe
}

// IdentityVerifier exchanges an identity-provider token for the account
// profile it was issued for.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (models.GoogleAccount, error)
}
