package reconcile

import (
	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
)

// targets are the store locations open to one cycle.
type targets struct {
	global    ports.Target
	workspace *ports.Target
	local     *ports.Target
	// localAlias is set in a single-folder workspace whose folder owns the
	// active document: workspace-local colors go to the workspace buffer.
	localAlias bool
}

func resolveTargets(f workspace.Frame) targets {
	t := targets{global: ports.Target{Scope: ports.ScopeGlobal}}
	if f.RootFolder == "" {
		return t
	}
	t.workspace = &ports.Target{Scope: ports.ScopeWorkspace, URI: f.RootFolder}
	if f.DocumentFolder == "" {
		return t
	}
	if f.MultiRoot() {
		t.local = &ports.Target{Scope: ports.ScopeWorkspaceLocal, URI: f.DocumentFolder}
	} else {
		t.localAlias = true
	}
	return t
}

// open lists the targets that get a buffer, broadest first.
func (t targets) open() []ports.Target {
	out := []ports.Target{t.global}
	if t.workspace != nil {
		out = append(out, *t.workspace)
	}
	if t.local != nil {
		out = append(out, *t.local)
	}
	return out
}

// settingsOrder lists the targets settings are read from, narrowest first.
func (t targets) settingsOrder() []ports.Target {
	open := t.open()
	out := make([]ports.Target, 0, len(open))
	for i := len(open) - 1; i >= 0; i-- {
		out = append(out, open[i])
	}
	return out
}

// persistTo maps a slot scope onto the buffer scope that owns it, or
// ScopeNone when no buffer does and the slot must be cleared everywhere.
func (t targets) persistTo(s ports.Scope) ports.Scope {
	switch s {
	case ports.ScopeGlobal:
		return ports.ScopeGlobal
	case ports.ScopeWorkspace:
		if t.workspace != nil {
			return ports.ScopeWorkspace
		}
	case ports.ScopeWorkspaceLocal:
		if t.local != nil {
			return ports.ScopeWorkspaceLocal
		}
		if t.localAlias {
			return ports.ScopeWorkspace
		}
	}
	return ports.ScopeNone
}
