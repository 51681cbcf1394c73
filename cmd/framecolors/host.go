package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/framecolors/internal/workspace"
	fcerrors "github.com/alexisbeaulieu97/framecolors/pkg/errors"
)

// stateFile is the on-disk editor state read by --state.
type stateFile struct {
	Folders  []string `yaml:"folders"`
	Document string   `yaml:"document"`
}

// fileHost re-reads the state file on every cycle so watch picks up
// folder and editor changes.
type fileHost struct {
	path     string
	hostname string
}

func (h fileHost) Current(context.Context) (workspace.State, error) {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return workspace.State{}, fmt.Errorf("read state file: %w", err)
	}
	var sf stateFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return workspace.State{}, fcerrors.NewParseError(h.path, 0, err)
	}
	return newState(h.hostname, sf.Folders, sf.Document), nil
}

func newState(hostname string, folders []string, document string) workspace.State {
	state := workspace.State{Hostname: hostname, Document: toURI(document)}
	for _, folder := range folders {
		if uri := toURI(folder); uri != "" {
			state.Folders = append(state.Folders, uri)
		}
	}
	return state
}

// toURI accepts a path or a file:// URI.
func toURI(s string) string {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return ""
	case strings.HasPrefix(s, "file://"):
		return s
	default:
		return workspace.FileURI(s)
	}
}

func resolveHostname(override string) string {
	if override != "" {
		return override
	}
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}

func newHost(flags *rootFlags) workspace.Host {
	hostname := resolveHostname(flags.hostname)
	if flags.statePath != "" {
		return fileHost{path: flags.statePath, hostname: hostname}
	}
	return workspace.StaticHost(newState(hostname, flags.folders, flags.document))
}
