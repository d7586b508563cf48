package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const mealDBSearchPath = "/api/json/v1/1/search.php"

type mealDBClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewMealDBClient returns a [RecipeClient] for TheMealDB search endpoint
// GET <base>/api/json/v1/1/search.php?s=<keyword>.
func NewMealDBClient(baseURL string, timeout time.Duration, logger *logger.Logger) RecipeClient {
	return &mealDBClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}
}

// Search implements [RecipeClient].
func (c *mealDBClient) Search(ctx context.Context, keyword string) []models.Recipe {
	recipes, err := c.search(ctx, keyword)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*mealDBClient.Search").
			Str("keyword", keyword).
			Msg("recipe search failed")
		return []models.Recipe{}
	}

	return recipes
}

func (c *mealDBClient) search(ctx context.Context, keyword string) ([]models.Recipe, error) {
	var result models.RecipeResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("s", keyword).
		SetResult(&result).
		Get(mealDBSearchPath)
	if err != nil {
		return nil, fmt.Errorf("mealdb search request: %w", err)
	}
	if err = mapHTTPError("mealdb", resp); err != nil {
		return nil, err
	}

	// "meals": null means no match.
	if result.Meals == nil {
		return []models.Recipe{}, nil
	}

	return result.Meals, nil
}
