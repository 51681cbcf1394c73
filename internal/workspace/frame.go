package workspace

import (
	"context"
	"fmt"
	"sort"
)

// State is what the host reports about the editor at one instant.
type State struct {
	Hostname string
	// Folders are file:// URIs in host order; the first is the root.
	Folders []string
	// Document is the file:// URI of the active document, or "".
	Document string
}

// Host supplies editor state. Implementations read it however they like;
// the engine calls Current once per cycle.
type Host interface {
	Current(ctx context.Context) (State, error)
}

// StaticHost always reports the same state.
type StaticHost State

// Current implements Host.
func (h StaticHost) Current(context.Context) (State, error) {
	return State(h), nil
}

// Frame is the context snapshot a reconciliation cycle works against. It is
// resolved once per cycle so folder or editor changes mid-cycle cannot mix
// two states.
type Frame struct {
	ID       string
	Hostname string
	Folders  []string
	// RootFolder is the first folder, or "" with no folder open.
	RootFolder string
	// DocumentFolder is the folder containing Document, or "".
	DocumentFolder string
	// CurrentFolder is DocumentFolder, falling back to RootFolder.
	CurrentFolder string
	Document      string
}

// Resolve asks host for its state and derives the cycle frame.
func Resolve(ctx context.Context, host Host, id string) (Frame, error) {
	state, err := host.Current(ctx)
	if err != nil {
		return Frame{}, fmt.Errorf("read host state: %w", err)
	}
	return NewFrame(id, state), nil
}

// NewFrame derives a frame from state.
func NewFrame(id string, state State) Frame {
	f := Frame{
		ID:       id,
		Hostname: state.Hostname,
		Folders:  append([]string(nil), state.Folders...),
		Document: state.Document,
	}
	if len(f.Folders) > 0 {
		f.RootFolder = f.Folders[0]
	}
	f.DocumentFolder = owningFolder(f.Folders, f.Document)
	f.CurrentFolder = f.DocumentFolder
	if f.CurrentFolder == "" {
		f.CurrentFolder = f.RootFolder
	}
	return f
}

// owningFolder picks the deepest folder that contains doc.
func owningFolder(folders []string, doc string) string {
	if doc == "" {
		return ""
	}
	candidates := make([]string, 0, len(folders))
	for _, folder := range folders {
		if _, ok := contains(folder, doc); ok {
			candidates = append(candidates, folder)
		}
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Slice(candidates, func(i, j int) bool { return len(candidates[i]) > len(candidates[j]) })
	return candidates[0]
}

// Value returns the identifier for src, or false when the context it needs
// is missing.
func (f Frame) Value(src Source) (string, bool) {
	switch src {
	case SourceHostname:
		return f.Hostname, f.Hostname != ""
	case SourceWorkspace:
		return f.RootFolder, f.RootFolder != ""
	case SourceWorkspaceFolder:
		return f.CurrentFolder, f.CurrentFolder != ""
	case SourceDocument:
		if f.Document == "" {
			return "", false
		}
		if f.DocumentFolder != "" {
			if rel, ok := contains(f.DocumentFolder, f.Document); ok {
				return rel, true
			}
		}
		return f.Document, true
	case SourceDocumentFullPath:
		return f.Document, f.Document != ""
	case SourceFileType:
		if f.Document == "" {
			return "", false
		}
		return extension(f.Document), true
	default:
		return "", false
	}
}

// MultiRoot reports whether more than one folder is open.
func (f Frame) MultiRoot() bool {
	return len(f.Folders) > 1
}
