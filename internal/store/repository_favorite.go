package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/docstore"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// favoriteRepository stores one node per (user, recipe) pair under
// favorites/{pushKey} with the flat {userEmail, recipe} shape.
type favoriteRepository struct {
	tree   docstore.Tree
	logger *logger.Logger
}

func NewFavoriteRepository(tree docstore.Tree, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		tree:   tree,
		logger: logger,
	}
}

// AddToFavorites pushes a new favorite node. Adding the same recipe twice
// stores two nodes; reads collapse them.
func (r *favoriteRepository) AddToFavorites(ctx context.Context, email string, recipe models.Recipe) error {
	favorite := models.Favorite{UserEmail: email, Recipe: recipe}
	if _, err := r.tree.Push(ctx, favoritesPath, favorite); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteRepository.AddToFavorites").Msg("error pushing favorite")
		return wrapErr(ErrRemoteWrite, err)
	}

	return nil
}

// RemoveFromFavorites deletes every favorite node of email whose recipe id
// equals recipeID, one node at a time. Nodes of other users and other
// recipes are not touched.
func (r *favoriteRepository) RemoveFromFavorites(ctx context.Context, email, recipeID string) error {
	log := logger.FromContext(ctx)

	favorites, err := r.userFavorites(ctx, email)
	if err != nil {
		return err
	}

	removed := 0
	for _, favorite := range favorites {
		if favorite.Recipe.IDMeal != recipeID {
			continue
		}

		path, err := docstore.Join(favoritesPath, favorite.Key)
		if err != nil {
			return wrapErr(ErrDecodingDocument, err)
		}
		if err = r.tree.Delete(ctx, path); err != nil {
			log.Err(err).Str("func", "*favoriteRepository.RemoveFromFavorites").Msg("error deleting favorite")
			return wrapErr(ErrRemoteWrite, err)
		}
		removed++
	}

	if removed == 0 {
		return ErrFavoriteNotFound
	}

	return nil
}

// GetFavoriteRecipes lists the favorite recipes of email, first occurrence
// of each recipe id kept, in insertion order.
func (r *favoriteRepository) GetFavoriteRecipes(ctx context.Context, email string) ([]models.Recipe, error) {
	favorites, err := r.userFavorites(ctx, email)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(favorites))
	recipes := make([]models.Recipe, 0, len(favorites))
	for _, favorite := range favorites {
		if _, ok := seen[favorite.Recipe.IDMeal]; ok {
			continue
		}
		seen[favorite.Recipe.IDMeal] = struct{}{}
		recipes = append(recipes, favorite.Recipe)
	}

	return recipes, nil
}

func (r *favoriteRepository) userFavorites(ctx context.Context, email string) ([]models.Favorite, error) {
	nodes, err := r.tree.QueryEqual(ctx, favoritesPath, "userEmail", email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteRepository.userFavorites").Msg("error querying favorites")
		return nil, wrapErr(ErrRemoteRead, err)
	}

	favorites := make([]models.Favorite, 0, len(nodes))
	for _, node := range nodes {
		var favorite models.Favorite
		if err = node.Unmarshal(&favorite); err != nil {
			return nil, wrapErr(ErrDecodingDocument, err)
		}
		favorite.Key = node.Key
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}
