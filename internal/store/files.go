package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/framecolors/internal/ports"
	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

const (
	// DirName is the per-folder directory holding workspace documents.
	DirName = ".framecolors"

	// WorkspaceFile and LocalFile are the document names inside DirName.
	WorkspaceFile = "workspace.yaml"
	LocalFile     = "local.yaml"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Files keeps one YAML document per target:
//
//	global           <Global>
//	workspace        <root folder>/.framecolors/workspace.yaml
//	workspace-local  <folder>/.framecolors/local.yaml
type Files struct {
	Global string

	mu sync.Mutex
}

// NewFiles returns a file store whose global document lives at global.
func NewFiles(global string) *Files {
	return &Files{Global: global}
}

// DefaultGlobalPath returns settings.yaml under the user configuration
// directory ($XDG_CONFIG_HOME on Linux).
func DefaultGlobalPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "framecolors", "settings.yaml"), nil
}

// Path maps a target to the document that backs it.
func (f *Files) Path(target ports.Target) (string, error) {
	switch target.Scope {
	case ports.ScopeGlobal:
		if f.Global == "" {
			return "", errors.New("global settings path is not configured")
		}
		return f.Global, nil
	case ports.ScopeWorkspace, ports.ScopeWorkspaceLocal:
		dir, ok := workspace.FilePath(target.URI)
		if !ok {
			return "", fmt.Errorf("target %s is not a file URI", target)
		}
		name := WorkspaceFile
		if target.Scope == ports.ScopeWorkspaceLocal {
			name = LocalFile
		}
		return filepath.Join(dir, DirName, name), nil
	default:
		return "", fmt.Errorf("scope %s is not persistable", target.Scope)
	}
}

// Read returns the value stored under key, or nil when the document or key
// does not exist.
func (f *Files) Read(ctx context.Context, target ports.Target, key string) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := f.Path(target)
	if err != nil {
		return nil, fcerrors.NewStoreError("read", target.String(), key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := load(path)
	if err != nil {
		return nil, fcerrors.NewStoreError("read", target.String(), key, err)
	}
	return Clone(doc[key]), nil
}

// Write replaces key in the target document, creating it if needed. A nil
// value removes the key. The document is replaced atomically.
func (f *Files) Write(ctx context.Context, target ports.Target, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := f.Path(target)
	if err != nil {
		return fcerrors.NewStoreError("write", target.String(), key, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doc, err := load(path)
	if err != nil {
		return fcerrors.NewStoreError("write", target.String(), key, err)
	}
	if doc == nil {
		doc = make(map[string]any)
	}
	if value == nil {
		delete(doc, key)
	} else {
		doc[key] = Clone(value)
	}
	if err := save(path, doc); err != nil {
		return fcerrors.NewStoreError("write", target.String(), key, err)
	}
	return nil
}

func load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fcerrors.NewParseError(path, extractLine(err), err)
	}
	return doc, nil
}

func save(path string, doc map[string]any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.yaml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

var _ ports.Store = (*Files)(nil)
