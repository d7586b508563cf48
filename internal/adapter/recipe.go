package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

// NewRecipeClient picks the implementation named by cfg.Provider.
func NewRecipeClient(cfg config.Recipes, logger *logger.Logger) (RecipeClient, error) {
	switch cfg.Provider {
	case config.ProviderMealDB:
		return NewMealDBClient(cfg.RecipesBaseURL(), cfg.Timeout, logger), nil
	case config.ProviderSpoonacular:
		return NewSpoonacularClient(cfg.RecipesBaseURL(), cfg.APIKey, cfg.Timeout, logger), nil
	}

	return nil, fmt.Errorf("unknown recipe provider %q", cfg.Provider)
}
