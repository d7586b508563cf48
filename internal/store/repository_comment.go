package store

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/docstore"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type commentRepository struct {
	tree   docstore.Tree
	logger *logger.Logger
}

func NewCommentRepository(tree docstore.Tree, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		tree:   tree,
		logger: logger,
	}
}

// PostComment pushes a new node under comments and returns it with its key.
func (r *commentRepository) PostComment(ctx context.Context, email, recipeID, text string) (models.Comment, error) {
	comment := models.Comment{UserEmail: email, RecipeID: recipeID, Comment: text}

	key, err := r.tree.Push(ctx, commentsPath, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.PostComment").Msg("error pushing comment")
		return models.Comment{}, wrapErr(ErrRemoteWrite, err)
	}
	comment.Key = key

	return comment, nil
}

// ListComments returns the comments on recipeID in posting order.
func (r *commentRepository) ListComments(ctx context.Context, recipeID string) ([]models.Comment, error) {
	nodes, err := r.tree.QueryEqual(ctx, commentsPath, "recipeId", recipeID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*commentRepository.ListComments").Msg("error querying comments")
		return nil, wrapErr(ErrRemoteRead, err)
	}

	comments := make([]models.Comment, 0, len(nodes))
	for _, node := range nodes {
		var comment models.Comment
		if err = node.Unmarshal(&comment); err != nil {
			return nil, wrapErr(ErrDecodingDocument, err)
		}
		comment.Key = node.Key
		comments = append(comments, comment)
	}

	return comments, nil
}
