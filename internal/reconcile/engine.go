// Package reconcile drives reconciliation cycles: resolve the workspace
// frame, compute every slot color, stage the results in per-scope buffers
// and commit only the buffers that changed.
package reconcile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/framecolors/internal/config"
	"github.com/alexisbeaulieu97/framecolors/internal/logger"
	"github.com/alexisbeaulieu97/framecolors/internal/palette"
	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/scope"
	"github.com/alexisbeaulieu97/framecolors/internal/store"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
)

// OutputKey is the configuration key every slot color is written under.
const OutputKey = "workbench.colorCustomizations"

// Result summarizes one cycle.
type Result struct {
	CycleID string
	// Changed is true when at least one scope was written.
	Changed bool
	// Scopes lists the written scopes, broadest first.
	Scopes []ports.Scope
	// Skipped is true when the apply-scope gate closed the cycle.
	Skipped bool
}

// Plan is a computed but uncommitted cycle.
type Plan struct {
	Frame       workspace.Frame
	Settings    config.Snapshot
	Assignments []palette.Assignment
	// Buffers holds one buffer per open scope, broadest first. It is empty
	// when Skipped.
	Buffers []*scope.Buffer
	Skipped bool
}

// Dirty returns the buffers that differ from the store.
func (p *Plan) Dirty() []*scope.Buffer {
	var out []*scope.Buffer
	for _, b := range p.Buffers {
		if b.Dirty() {
			out = append(out, b)
		}
	}
	return out
}

// Engine runs reconciliation cycles against one store and host.
type Engine struct {
	store   ports.Store
	host    workspace.Host
	catalog *config.Catalog
	log     *logger.Logger
	newID   func() string
}

// New wires an Engine.
func New(s ports.Store, host workspace.Host, catalog *config.Catalog, log *logger.Logger) *Engine {
	return &Engine{
		store:   s,
		host:    host,
		catalog: catalog,
		log:     log.Component("reconcile"),
		newID:   uuid.NewString,
	}
}

// Plan runs a cycle up to the diff without writing anything.
func (e *Engine) Plan(ctx context.Context) (*Plan, error) {
	frame, err := workspace.Resolve(ctx, e.host, e.newID())
	if err != nil {
		return nil, err
	}
	targets := resolveTargets(frame)

	view := store.NewView(ctx, e.store, targets.settingsOrder()...)
	settings, changed := e.catalog.Refresh(view)
	if err := view.Err(); err != nil {
		return nil, err
	}
	e.log.WithFields(map[string]any{"cycle": frame.ID, "settings_changed": changed}).Debug("settings refreshed")

	plan := &Plan{Frame: frame, Settings: settings}
	if !settings.ApplyScope.Allows(frame) {
		plan.Skipped = true
		return plan, nil
	}

	plan.Assignments = palette.Compose(settings.BaseColor, settings.Choices, frame)

	buffers := make(map[ports.Scope]*scope.Buffer, 3)
	for _, t := range targets.open() {
		b, err := scope.Load(ctx, e.store, t, OutputKey)
		if err != nil {
			return nil, err
		}
		buffers[t.Scope] = b
		plan.Buffers = append(plan.Buffers, b)
	}

	for _, a := range plan.Assignments {
		owner := buffers[targets.persistTo(a.Scope)]
		for _, b := range plan.Buffers {
			if b == owner {
				b.Set(a.Slot.Key, a.Value)
				continue
			}
			b.Set(a.Slot.Key, nil)
		}
	}
	return plan, nil
}

// Apply runs one full cycle and commits the changed buffers.
func (e *Engine) Apply(ctx context.Context, trigger ports.Trigger) (Result, error) {
	start := time.Now()
	plan, err := e.Plan(ctx)
	if err != nil {
		e.log.WithFields(map[string]any{"trigger": string(trigger)}).Error(err, "cycle failed")
		return Result{}, err
	}

	res := Result{CycleID: plan.Frame.ID, Skipped: plan.Skipped}
	for _, b := range plan.Buffers {
		wrote, err := b.Commit(ctx, e.store)
		if err != nil {
			e.log.WithFields(map[string]any{"cycle": res.CycleID, "trigger": string(trigger)}).Error(err, "cycle failed")
			return res, err
		}
		if wrote {
			res.Changed = true
			res.Scopes = append(res.Scopes, b.Target.Scope)
		}
	}

	scopes := make([]string, 0, len(res.Scopes))
	for _, s := range res.Scopes {
		scopes = append(scopes, s.String())
	}
	e.log.WithFields(map[string]any{
		"cycle":    res.CycleID,
		"trigger":  string(trigger),
		"changed":  res.Changed,
		"scopes":   scopes,
		"skipped":  res.Skipped,
		"duration": time.Since(start).String(),
	}).Info("cycle complete")
	return res, nil
}
