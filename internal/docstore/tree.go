// Package docstore abstracts the remote JSON document tree that holds the
// users, favorites and comments collections.
//
// Paths are slash-separated ("users/alice@example,com"). Values are encoded
// with encoding/json, so struct tags decide the stored shape. Two
// implementations exist: FirebaseTree, backed by the Firebase Realtime
// Database, and MemoryTree, an in-process tree used for local runs and tests.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrInvalidPath is returned for empty paths or keys containing characters
// the tree does not accept.
var ErrInvalidPath = errors.New("invalid document path")

// Node is a direct child of a collection together with its raw JSON value.
type Node struct {
	Key   string
	Value json.RawMessage
}

// Unmarshal decodes the node value into v.
func (n Node) Unmarshal(v any) error {
	return json.Unmarshal(n.Value, v)
}

// Tree is a hierarchical JSON store.
type Tree interface {
	// Get returns the raw value at path, or nil when nothing is stored there.
	Get(ctx context.Context, path string) (json.RawMessage, error)
	// Set replaces the value at path.
	Set(ctx context.Context, path string, v any) error
	// Push stores v under a new, time-ordered child key of path and returns
	// that key.
	Push(ctx context.Context, path string, v any) (string, error)
	// Update writes each field relative to path, leaving siblings untouched.
	Update(ctx context.Context, path string, fields map[string]any) error
	// Delete removes the value at path. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error
	// Children lists the direct children of path ordered by key.
	Children(ctx context.Context, path string) ([]Node, error)
	// QueryEqual lists the children of path whose child field equals value,
	// ordered by key.
	QueryEqual(ctx context.Context, path, child string, value any) ([]Node, error)
}

// IsAbsent reports whether a raw value returned by Get denotes a missing node.
func IsAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
