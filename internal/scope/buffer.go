// Package scope mirrors one configuration key per store target in memory so
// a reconciliation cycle can edit it freely and commit only real changes.
package scope

import (
	"context"
	"reflect"

	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/store"
	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

// Buffer is the in-memory copy of one key's object value in one target.
// Entries the engine does not manage are carried through untouched.
type Buffer struct {
	Target ports.Target
	Key    string

	stored  map[string]any
	current map[string]any
	// malformed is set when the stored value exists but is not an object.
	malformed bool
}

// Load reads key from target and returns a buffer seeded with it. A stored
// value that is not an object is treated as empty; it is only replaced if
// the cycle has something to write.
func Load(ctx context.Context, s ports.Store, target ports.Target, key string) (*Buffer, error) {
	raw, err := s.Read(ctx, target, key)
	if err != nil {
		return nil, fcerrors.NewStoreError("read", target.String(), key, err)
	}
	stored, ok := raw.(map[string]any)
	if stored == nil {
		stored = map[string]any{}
	}
	return &Buffer{
		Target:    target,
		Key:       key,
		stored:    stored,
		current:   cloneObject(stored),
		malformed: raw != nil && !ok,
	}, nil
}

// Set writes value into the slot, or removes the slot when value is nil.
func (b *Buffer) Set(slot string, value *string) {
	if value == nil {
		delete(b.current, slot)
		return
	}
	b.current[slot] = *value
}

// Get returns the in-memory value of slot.
func (b *Buffer) Get(slot string) (any, bool) {
	v, ok := b.current[slot]
	return v, ok
}

// Stored returns a copy of the value read at Load time.
func (b *Buffer) Stored() map[string]any {
	return cloneObject(b.stored)
}

// Current returns a copy of the in-memory value.
func (b *Buffer) Current() map[string]any {
	return cloneObject(b.current)
}

// Dirty reports whether the in-memory value differs structurally from the
// stored one. A missing key and an empty object are equal.
func (b *Buffer) Dirty() bool {
	if b.malformed {
		return len(b.current) > 0
	}
	return !reflect.DeepEqual(b.stored, b.current)
}

// Commit writes the buffer back when it is dirty and reports whether it
// wrote. An empty object removes the key from the document.
func (b *Buffer) Commit(ctx context.Context, s ports.Store) (bool, error) {
	if !b.Dirty() {
		return false, nil
	}
	var value any
	if len(b.current) > 0 {
		value = b.Current()
	}
	if err := s.Write(ctx, b.Target, b.Key, value); err != nil {
		return false, fcerrors.NewStoreError("write", b.Target.String(), b.Key, err)
	}
	b.stored = b.Current()
	b.malformed = false
	return true, nil
}

func cloneObject(m map[string]any) map[string]any {
	return store.Clone(m).(map[string]any)
}
