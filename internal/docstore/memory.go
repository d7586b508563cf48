package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
)

// MemoryTree is a Tree kept in process memory. Values are normalized through
// encoding/json on write, so reads observe exactly what FirebaseTree would
// return for the same writes.
type MemoryTree struct {
	mu   sync.RWMutex
	root map[string]any
}

// NewMemoryTree returns an empty tree.
func NewMemoryTree() *MemoryTree {
	return &MemoryTree{root: make(map[string]any)}
}

func (t *MemoryTree) Get(ctx context.Context, path string) (json.RawMessage, error) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node, ok := t.lookup(parts)
	if !ok {
		return nil, nil
	}

	return json.Marshal(node)
}

func (t *MemoryTree) Set(ctx context.Context, path string, v any) error {
	parts, err := splitPath(path)
	if err != nil {
		return err
	}

	value, err := normalize(v)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.write(parts, value)
	return nil
}

func (t *MemoryTree) Push(ctx context.Context, path string, v any) (string, error) {
	parts, err := splitPath(path)
	if err != nil {
		return "", err
	}

	value, err := normalize(v)
	if err != nil {
		return "", err
	}

	key, err := newPushKey()
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.write(append(parts, key), value)
	return key, nil
}

func (t *MemoryTree) Update(ctx context.Context, path string, fields map[string]any) error {
	parts, err := splitPath(path)
	if err != nil {
		return err
	}

	values := make(map[string]any, len(fields))
	for field, v := range fields {
		if _, err := splitPath(field); err != nil {
			return err
		}
		if values[field], err = normalize(v); err != nil {
			return err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for field, v := range values {
		sub, _ := splitPath(field)
		t.write(append(append([]string{}, parts...), sub...), v)
	}

	return nil
}

func (t *MemoryTree) Delete(ctx context.Context, path string) error {
	parts, err := splitPath(path)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.write(parts, nil)
	return nil
}

func (t *MemoryTree) Children(ctx context.Context, path string) ([]Node, error) {
	return t.filterChildren(path, func(any) bool { return true })
}

func (t *MemoryTree) QueryEqual(ctx context.Context, path, child string, value any) ([]Node, error) {
	want, err := normalize(value)
	if err != nil {
		return nil, err
	}

	return t.filterChildren(path, func(v any) bool {
		obj, ok := v.(map[string]any)
		if !ok {
			return false
		}
		got, ok := obj[child]
		return ok && reflect.DeepEqual(got, want)
	})
}

func (t *MemoryTree) filterChildren(path string, keep func(any) bool) ([]Node, error) {
	parts, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node, ok := t.lookup(parts)
	if !ok {
		return nil, nil
	}
	collection, ok := node.(map[string]any)
	if !ok {
		return nil, nil
	}

	keys := make([]string, 0, len(collection))
	for k := range collection {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nodes := make([]Node, 0, len(keys))
	for _, k := range keys {
		if !keep(collection[k]) {
			continue
		}
		raw, err := json.Marshal(collection[k])
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, Node{Key: k, Value: raw})
	}

	return nodes, nil
}

// lookup must be called with the lock held.
func (t *MemoryTree) lookup(parts []string) (any, bool) {
	var node any = t.root
	for _, p := range parts {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if node, ok = obj[p]; !ok {
			return nil, false
		}
	}

	return node, true
}

// write stores value at parts, creating intermediate objects. A nil value
// deletes the node and prunes parents left empty. Must be called with the
// write lock held.
func (t *MemoryTree) write(parts []string, value any) {
	if m, ok := value.(map[string]any); ok && len(m) == 0 {
		value = nil
	}

	parents := make([]map[string]any, 0, len(parts))
	node := t.root
	for _, p := range parts[:len(parts)-1] {
		parents = append(parents, node)
		next, ok := node[p].(map[string]any)
		if !ok {
			if value == nil {
				return
			}
			next = make(map[string]any)
			node[p] = next
		}
		node = next
	}

	last := parts[len(parts)-1]
	if value != nil {
		node[last] = value
		return
	}

	delete(node, last)
	for i := len(parents) - 1; i >= 0 && len(node) == 0; i-- {
		delete(parents[i], parts[i])
		node = parents[i]
	}
}

// normalize round-trips v through encoding/json so the stored value holds
// only maps, slices, strings, float64, bools and nils.
func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}

	return out, nil
}

func newPushKey() (string, error) {
	return utils.NewOrderedID()
}
