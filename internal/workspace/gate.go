package workspace

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// ApplyScope gates the whole engine on properties of the root folder.
type ApplyScope string

const (
	ApplyNever          ApplyScope = "none"
	ApplyHasVSCode      ApplyScope = "has-vscode"
	ApplyHasVSCodeOrGit ApplyScope = "has-vscode-or-git"
	ApplyAny            ApplyScope = "any"
)

// ApplyScopes lists every gate value.
var ApplyScopes = []ApplyScope{ApplyNever, ApplyHasVSCode, ApplyHasVSCodeOrGit, ApplyAny}

// Valid reports whether a is one of ApplyScopes.
func (a ApplyScope) Valid() bool {
	for _, known := range ApplyScopes {
		if a == known {
			return true
		}
	}
	return false
}

// Allows reports whether a cycle against f may run. The has-* gates are
// false when no folder is open.
func (a ApplyScope) Allows(f Frame) bool {
	switch a {
	case ApplyAny:
		return true
	case ApplyHasVSCode:
		return hasVSCode(f.RootFolder)
	case ApplyHasVSCodeOrGit:
		return hasVSCode(f.RootFolder) || isGitRepository(f.RootFolder)
	default:
		return false
	}
}

func hasVSCode(folder string) bool {
	dir, ok := FilePath(folder)
	if !ok || folder == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, ".vscode"))
	return err == nil && info.IsDir()
}

func isGitRepository(folder string) bool {
	dir, ok := FilePath(folder)
	if !ok || folder == "" {
		return false
	}
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: false})
	return err == nil
}
