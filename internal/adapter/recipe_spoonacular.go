package adapter

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const spoonacularSearchPath = "/recipes/complexSearch"

type spoonacularClient struct {
	client *utils.HTTPClient
	apiKey string
	logger *logger.Logger
}

// spoonacularResponse is the subset of the complexSearch payload we read.
type spoonacularResponse struct {
	Results []struct {
		ID           int64  `json:"id"`
		Title        string `json:"title"`
		Image        string `json:"image"`
		Instructions string `json:"instructions"`
		Summary      string `json:"summary"`
	} `json:"results"`
}

// NewSpoonacularClient returns a [RecipeClient] for the Spoonacular
// endpoint GET <base>/recipes/complexSearch?apiKey=<key>&query=<keyword>.
func NewSpoonacularClient(baseURL, apiKey string, timeout time.Duration, logger *logger.Logger) RecipeClient {
	return &spoonacularClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		apiKey: apiKey,
		logger: logger,
	}
}

// Search implements [RecipeClient]. Results are converted to the MealDB
// recipe shape, with the numeric id rendered as a string.
func (c *spoonacularClient) Search(ctx context.Context, keyword string) []models.Recipe {
	recipes, err := c.search(ctx, keyword)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*spoonacularClient.Search").
			Str("keyword", keyword).
			Msg("recipe search failed")
		return []models.Recipe{}
	}

	return recipes
}

func (c *spoonacularClient) search(ctx context.Context, keyword string) ([]models.Recipe, error) {
	var result spoonacularResponse

	req := c.client.R().
		SetContext(ctx).
		SetQueryParam("apiKey", c.apiKey).
		SetQueryParam("addRecipeInformation", "true").
		SetResult(&result)
	if keyword != "" {
		req.SetQueryParam("query", keyword)
	}

	resp, err := req.Get(spoonacularSearchPath)
	if err != nil {
		return nil, fmt.Errorf("spoonacular search request: %w", err)
	}
	if err = mapHTTPError("spoonacular", resp); err != nil {
		return nil, err
	}

	recipes := make([]models.Recipe, 0, len(result.Results))
	for _, r := range result.Results {
		instructions := r.Instructions
		if instructions == "" {
			instructions = r.Summary
		}
		recipes = append(recipes, models.Recipe{
			IDMeal:          strconv.FormatInt(r.ID, 10),
			StrMeal:         r.Title,
			StrMealThumb:    r.Image,
			StrInstructions: instructions,
		})
	}

	return recipes, nil
}
