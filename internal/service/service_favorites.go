package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type favoritesService struct {
	favorites store.FavoriteRepository
	comments  store.CommentRepository

	logger *logger.Logger
}

func NewFavoritesService(favorites store.FavoriteRepository, comments store.CommentRepository, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		favorites: favorites,
		comments:  comments,
		logger:    logger,
	}
}

func (s *favoritesService) AddToFavorites(ctx context.Context, email string, recipe models.Recipe) error {
	if strings.TrimSpace(recipe.IDMeal) == "" {
		return fmt.Errorf("%w: recipe id is required", ErrInvalidDataProvided)
	}

	if err := s.favorites.AddToFavorites(ctx, email, recipe); err != nil {
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return nil
}

func (s *favoritesService) RemoveFromFavorites(ctx context.Context, email, recipeID string) error {
	err := s.favorites.RemoveFromFavorites(ctx, email, recipeID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrFavoriteNotFound):
		return ErrFavoriteNotFound
	default:
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}
}

// GetFavoriteRecipes returns the distinct favorites of email. Read failures
// surface as an error so the caller can tell them from an empty list.
func (s *favoritesService) GetFavoriteRecipes(ctx context.Context, email string) ([]models.Recipe, error) {
	recipes, err := s.favorites.GetFavoriteRecipes(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return recipes, nil
}

func (s *favoritesService) PostComment(ctx context.Context, email, recipeID, text string) (models.Comment, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(recipeID) == "" {
		return models.Comment{}, fmt.Errorf("%w: comment text and recipe id are required", ErrInvalidDataProvided)
	}

	comment, err := s.comments.PostComment(ctx, email, recipeID, text)
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return comment, nil
}

func (s *favoritesService) ListComments(ctx context.Context, recipeID string) ([]models.Comment, error) {
	comments, err := s.comments.ListComments(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return comments, nil
}
