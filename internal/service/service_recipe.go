package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type recipeService struct {
	client adapter.RecipeClient

	logger *logger.Logger
}

func NewRecipeService(client adapter.RecipeClient, logger *logger.Logger) RecipeService {
	return &recipeService{client: client, logger: logger}
}

// Search trims keyword and queries the configured provider. A blank keyword
// is forwarded too; each provider answers it with its default listing.
func (s *recipeService) Search(ctx context.Context, keyword string) []models.Recipe {
	return s.client.Search(ctx, strings.TrimSpace(keyword))
}
