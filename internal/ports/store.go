package ports

import (
	"context"
	"fmt"
)

// Scope identifies one tier of the layered configuration store.
type Scope int

const (
	// ScopeNone means "not persisted anywhere".
	ScopeNone Scope = iota
	// ScopeGlobal is the per-user tier shared by every workspace.
	ScopeGlobal
	// ScopeWorkspace is the tier owned by the open workspace.
	ScopeWorkspace
	// ScopeWorkspaceLocal is the tier owned by a single workspace folder.
	ScopeWorkspaceLocal
)

// Scopes lists the persistable scopes from broadest to narrowest.
var Scopes = []Scope{ScopeGlobal, ScopeWorkspace, ScopeWorkspaceLocal}

func (s Scope) String() string {
	switch s {
	case ScopeNone:
		return "none"
	case ScopeGlobal:
		return "global"
	case ScopeWorkspace:
		return "workspace"
	case ScopeWorkspaceLocal:
		return "workspace-local"
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Target addresses one concrete document of the store. URI selects the
// workspace or folder for the workspace and workspace-local scopes and is
// empty for the global scope.
type Target struct {
	Scope Scope
	URI   string
}

func (t Target) String() string {
	if t.URI == "" {
		return t.Scope.String()
	}
	return t.Scope.String() + ":" + t.URI
}

// Store is the key/value backend the reconciliation engine reads from and
// commits to. Values are plain data as produced by a YAML or JSON decoder:
// strings, numbers, bools, []any and map[string]any. Read returns nil for a
// missing key; Write with a nil value removes the key.
//
// Implementations must be safe for concurrent use and honour ctx.
type Store interface {
	Read(ctx context.Context, target Target, key string) (any, error)
	Write(ctx context.Context, target Target, key string, value any) error
}
