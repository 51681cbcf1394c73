package reconcile

import (
	"context"

	"github.com/alexisbeaulieu97/framecolors/internal/logger"
	"github.com/alexisbeaulieu97/framecolors/internal/ports"
)

// Applier runs one reconciliation cycle.
type Applier interface {
	Apply(ctx context.Context, trigger ports.Trigger) (Result, error)
}

// Runner serializes cycles on one goroutine. Triggers that arrive while a
// cycle is running collapse into a single follow-up cycle.
type Runner struct {
	applier Applier
	log     *logger.Logger
	pending chan ports.Trigger
	// OnCycle, when set, observes every finished cycle.
	OnCycle func(ports.Trigger, Result, error)
}

// NewRunner returns a Runner for a.
func NewRunner(a Applier, log *logger.Logger) *Runner {
	return &Runner{
		applier: a,
		log:     log.Component("runner"),
		pending: make(chan ports.Trigger, 1),
	}
}

// Trigger schedules a cycle. It never blocks; if a cycle is already
// pending the trigger is folded into it.
func (r *Runner) Trigger(t ports.Trigger) {
	select {
	case r.pending <- t:
	default:
		r.log.WithFields(map[string]any{"trigger": string(t)}).Debug("trigger coalesced")
	}
}

// Run processes triggers until ctx is done. Cycle errors are logged and do
// not stop the loop.
func (r *Runner) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-r.pending:
			res, err := r.applier.Apply(ctx, t)
			if r.OnCycle != nil {
				r.OnCycle(t, res, err)
			}
		}
	}
}
