package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/framecolors/internal/ports"
)

func TestSourceScopesAreFixed(t *testing.T) {
	t.Parallel()

	want := map[Source]ports.Scope{
		SourceNone:             ports.ScopeNone,
		SourceHostname:         ports.ScopeGlobal,
		SourceWorkspace:        ports.ScopeWorkspace,
		SourceWorkspaceFolder:  ports.ScopeWorkspace,
		SourceDocument:         ports.ScopeWorkspaceLocal,
		SourceDocumentFullPath: ports.ScopeWorkspaceLocal,
		SourceFileType:         ports.ScopeWorkspaceLocal,
	}
	require.Len(t, want, len(Sources))
	for src, scope := range want {
		assert.Equal(t, scope, src.Scope(), string(src))
		assert.True(t, src.Valid())
	}
	assert.False(t, Source("titlebar").Valid())
	assert.Equal(t, ports.ScopeNone, Source("bogus").Scope())
}

func TestFrameValues(t *testing.T) {
	t.Parallel()

	state := State{
		Hostname: "myhost",
		Folders:  []string{"file:///src/app", "file:///src/lib"},
		Document: "file:///src/lib/pkg/util.go",
	}
	f := NewFrame("c1", state)

	assert.Equal(t, "file:///src/app", f.RootFolder)
	assert.Equal(t, "file:///src/lib", f.DocumentFolder)
	assert.Equal(t, "file:///src/lib", f.CurrentFolder)
	assert.True(t, f.MultiRoot())

	tests := []struct {
		src  Source
		want string
	}{
		{SourceHostname, "myhost"},
		{SourceWorkspace, "file:///src/app"},
		{SourceWorkspaceFolder, "file:///src/lib"},
		{SourceDocument, "pkg/util.go"},
		{SourceDocumentFullPath, "file:///src/lib/pkg/util.go"},
		{SourceFileType, ".go"},
	}
	for _, tt := range tests {
		got, ok := f.Value(tt.src)
		assert.True(t, ok, string(tt.src))
		assert.Equal(t, tt.want, got, string(tt.src))
	}

	_, ok := f.Value(SourceNone)
	assert.False(t, ok)
}

func TestFrameDocumentOutsideFolders(t *testing.T) {
	t.Parallel()

	f := NewFrame("c1", State{
		Folders:  []string{"file:///src/app"},
		Document: "file:///tmp/notes.txt",
	})

	assert.Equal(t, "", f.DocumentFolder)
	assert.Equal(t, "file:///src/app", f.CurrentFolder)

	doc, ok := f.Value(SourceDocument)
	require.True(t, ok)
	assert.Equal(t, "file:///tmp/notes.txt", doc)
}

func TestFrameFolderPrefixMustEndAtSegment(t *testing.T) {
	t.Parallel()

	f := NewFrame("c1", State{
		Folders:  []string{"file:///src/app"},
		Document: "file:///src/application/main.go",
	})
	assert.Equal(t, "", f.DocumentFolder)
}

func TestFramePrefersDeepestFolder(t *testing.T) {
	t.Parallel()

	f := NewFrame("c1", State{
		Folders:  []string{"file:///src", "file:///src/app"},
		Document: "file:///src/app/main.go",
	})
	assert.Equal(t, "file:///src/app", f.DocumentFolder)

	doc, _ := f.Value(SourceDocument)
	assert.Equal(t, "main.go", doc)
}

func TestFrameMissingContext(t *testing.T) {
	t.Parallel()

	f := NewFrame("c1", State{})
	for _, src := range []Source{SourceHostname, SourceWorkspace, SourceWorkspaceFolder, SourceDocument, SourceDocumentFullPath, SourceFileType} {
		_, ok := f.Value(src)
		assert.False(t, ok, string(src))
	}
}

func TestFileTypeWithoutExtension(t *testing.T) {
	t.Parallel()

	f := NewFrame("c1", State{Document: "file:///src/v1.2/Makefile"})
	ext, ok := f.Value(SourceFileType)
	require.True(t, ok)
	assert.Equal(t, "", ext)

	f = NewFrame("c1", State{Document: "file:///src/archive.tar.gz"})
	ext, _ = f.Value(SourceFileType)
	assert.Equal(t, ".gz", ext)
}

func TestResolveUsesHostState(t *testing.T) {
	t.Parallel()

	host := StaticHost{Hostname: "box", Folders: []string{"file:///a"}}
	f, err := Resolve(context.Background(), host, "cycle-9")
	require.NoError(t, err)
	assert.Equal(t, "cycle-9", f.ID)
	assert.Equal(t, "file:///a", f.RootFolder)
}

func TestFileURIRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	uri := FileURI(dir)
	assert.Contains(t, uri, "file://")

	back, ok := FilePath(uri)
	require.True(t, ok)
	assert.Equal(t, filepath.Clean(dir), back)

	_, ok = FilePath("untitled:Untitled-1")
	assert.False(t, ok)
}

func TestApplyScopeGate(t *testing.T) {
	t.Parallel()

	plain := t.TempDir()
	withVSCode := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(withVSCode, ".vscode"), 0o755))
	withGit := t.TempDir()
	_, err := git.PlainInit(withGit, false)
	require.NoError(t, err)

	frame := func(dir string) Frame {
		return NewFrame("c", State{Folders: []string{FileURI(dir)}})
	}
	empty := NewFrame("c", State{})

	tests := []struct {
		name  string
		scope ApplyScope
		frame Frame
		want  bool
	}{
		{"never", ApplyNever, frame(withVSCode), false},
		{"any without folder", ApplyAny, empty, true},
		{"vscode present", ApplyHasVSCode, frame(withVSCode), true},
		{"vscode missing", ApplyHasVSCode, frame(plain), false},
		{"vscode gate ignores git", ApplyHasVSCode, frame(withGit), false},
		{"git repository", ApplyHasVSCodeOrGit, frame(withGit), true},
		{"vscode satisfies either", ApplyHasVSCodeOrGit, frame(withVSCode), true},
		{"neither", ApplyHasVSCodeOrGit, frame(plain), false},
		{"no folder open", ApplyHasVSCodeOrGit, empty, false},
		{"unknown value", ApplyScope("sometimes"), frame(withVSCode), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.scope.Allows(tt.frame))
		})
	}
}

func TestApplyScopeValid(t *testing.T) {
	t.Parallel()

	for _, s := range ApplyScopes {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ApplyScope("sometimes").Valid())
	assert.False(t, ApplyScope("").Valid())
}
