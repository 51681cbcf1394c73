// Package workspace resolves the contextual identifiers (host name,
// workspace folders, active document) that seed accent colors, and decides
// which configuration scope each kind of identifier persists into.
package workspace

import "github.com/alexisbeaulieu97/framecolors/internal/ports"

// Source selects the identifier whose hash seeds a region's hue.
type Source string

const (
	SourceNone             Source = "none"
	SourceHostname         Source = "hostname"
	SourceWorkspace        Source = "workspace"
	SourceWorkspaceFolder  Source = "workspace-folder"
	SourceDocument         Source = "document"
	SourceDocumentFullPath Source = "document-fullpath"
	SourceFileType         Source = "file-type"
)

// Sources lists every source in declaration order.
var Sources = []Source{
	SourceNone,
	SourceHostname,
	SourceWorkspace,
	SourceWorkspaceFolder,
	SourceDocument,
	SourceDocumentFullPath,
	SourceFileType,
}

// Scope is the configuration tier a source persists into. The pairing is
// fixed: colors follow the lifetime of the identifier that produced them.
func (s Source) Scope() ports.Scope {
	switch s {
	case SourceHostname:
		return ports.ScopeGlobal
	case SourceWorkspace, SourceWorkspaceFolder:
		return ports.ScopeWorkspace
	case SourceDocument, SourceDocumentFullPath, SourceFileType:
		return ports.ScopeWorkspaceLocal
	default:
		return ports.ScopeNone
	}
}

// Valid reports whether s is a known source.
func (s Source) Valid() bool {
	for _, known := range Sources {
		if s == known {
			return true
		}
	}
	return false
}
