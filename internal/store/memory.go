// Package store provides the key/value backends the reconciliation engine
// commits to: an in-memory store and a YAML file store laid out by scope.
package store

import (
	"context"
	"sync"

	"github.com/alexisbeaulieu97/framecolors/internal/ports"
)

// Memory is a concurrency-safe in-process store. It counts writes so callers
// can assert that a cycle stayed quiet.
type Memory struct {
	mu     sync.Mutex
	docs   map[ports.Target]map[string]any
	writes int
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[ports.Target]map[string]any)}
}

// Read returns a deep copy of the stored value, or nil.
func (m *Memory) Read(ctx context.Context, target ports.Target, key string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Clone(m.docs[target][key]), nil
}

// Write stores a deep copy of value; nil removes the key.
func (m *Memory) Write(ctx context.Context, target ports.Target, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	doc := m.docs[target]
	if value == nil {
		delete(doc, key)
		return nil
	}
	if doc == nil {
		doc = make(map[string]any)
		m.docs[target] = doc
	}
	doc[key] = Clone(value)
	return nil
}

// Writes reports how many Write calls the store has served.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Clone deep-copies plain decoded data (maps, slices, scalars).
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = Clone(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = Clone(item)
		}
		return out
	default:
		return v
	}
}

var _ ports.Store = (*Memory)(nil)
