package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// FirebaseTree is a Tree backed by the Firebase Realtime Database.
type FirebaseTree struct {
	client *db.Client
}

// NewFirebaseApp initializes a Firebase app. credentialsFile may be empty,
// in which case application default credentials are used.
func NewFirebaseApp(ctx context.Context, databaseURL, projectID, credentialsFile string) (*firebase.App, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		credentialsJSON, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("error reading firebase credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	}

	conf := &firebase.Config{
		DatabaseURL: databaseURL,
		ProjectID:   projectID,
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase init failed: %w", err)
	}

	return app, nil
}

// NewFirebaseTree connects to the database configured on app.
func NewFirebaseTree(ctx context.Context, app *firebase.App) (*FirebaseTree, error) {
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("database client init failed: %w", err)
	}

	return &FirebaseTree{client: client}, nil
}

func (t *FirebaseTree) ref(path string) (*db.Ref, error) {
	if _, err := splitPath(path); err != nil {
		return nil, err
	}

	return t.client.NewRef(path), nil
}

func (t *FirebaseTree) Get(ctx context.Context, path string) (json.RawMessage, error) {
	ref, err := t.ref(path)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := ref.Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	if IsAbsent(raw) {
		return nil, nil
	}

	return raw, nil
}

func (t *FirebaseTree) Set(ctx context.Context, path string, v any) error {
	ref, err := t.ref(path)
	if err != nil {
		return err
	}

	if err := ref.Set(ctx, v); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}

	return nil
}

func (t *FirebaseTree) Push(ctx context.Context, path string, v any) (string, error) {
	ref, err := t.ref(path)
	if err != nil {
		return "", err
	}

	child, err := ref.Push(ctx, v)
	if err != nil {
		return "", fmt.Errorf("error pushing to %s: %w", path, err)
	}

	return child.Key, nil
}

func (t *FirebaseTree) Update(ctx context.Context, path string, fields map[string]any) error {
	ref, err := t.ref(path)
	if err != nil {
		return err
	}

	if err := ref.Update(ctx, fields); err != nil {
		return fmt.Errorf("error updating %s: %w", path, err)
	}

	return nil
}

func (t *FirebaseTree) Delete(ctx context.Context, path string) error {
	ref, err := t.ref(path)
	if err != nil {
		return err
	}

	if err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("error deleting %s: %w", path, err)
	}

	return nil
}

func (t *FirebaseTree) Children(ctx context.Context, path string) ([]Node, error) {
	ref, err := t.ref(path)
	if err != nil {
		return nil, err
	}

	return collect(ctx, ref.OrderByKey(), path)
}

func (t *FirebaseTree) QueryEqual(ctx context.Context, path, child string, value any) ([]Node, error) {
	ref, err := t.ref(path)
	if err != nil {
		return nil, err
	}

	return collect(ctx, ref.OrderByChild(child).EqualTo(value), path)
}

func collect(ctx context.Context, q *db.Query, path string) ([]Node, error) {
	results, err := q.GetOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("error querying %s: %w", path, err)
	}

	nodes := make([]Node, 0, len(results))
	for _, r := range results {
		var raw json.RawMessage
		if err := r.Unmarshal(&raw); err != nil {
			return nil, fmt.Errorf("error decoding %s/%s: %w", path, r.Key(), err)
		}
		nodes = append(nodes, Node{Key: r.Key(), Value: raw})
	}

	return nodes, nil
}
