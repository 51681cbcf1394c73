package store

import (
	"context"

	"github.com/alexisbeaulieu97/framecolors/internal/ports"
)

// View is the effective, read-only view of a key across several targets.
// Targets are consulted in order and the first non-nil value wins, so list
// the narrowest scope first.
type View struct {
	ctx     context.Context
	store   ports.Store
	targets []ports.Target
	err     error
}

// NewView returns a View over targets.
func NewView(ctx context.Context, s ports.Store, targets ...ports.Target) *View {
	return &View{ctx: ctx, store: s, targets: targets}
}

// Lookup returns the effective value of name. Read failures make the target
// count as unset; the first one is kept for Err.
func (v *View) Lookup(name string) (any, bool) {
	for _, target := range v.targets {
		value, err := v.store.Read(v.ctx, target, name)
		if err != nil {
			if v.err == nil {
				v.err = err
			}
			continue
		}
		if value != nil {
			return value, true
		}
	}
	return nil, false
}

// Err returns the first read error seen by Lookup.
func (v *View) Err() error {
	return v.err
}
