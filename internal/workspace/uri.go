package workspace

import (
	"net/url"
	"path/filepath"
	"strings"
)

// FileURI turns a filesystem path into a file:// URI. Relative paths are
// made absolute first.
func FileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	slashed := filepath.ToSlash(path)
	if !strings.HasPrefix(slashed, "/") {
		slashed = "/" + slashed // C:/x -> /C:/x
	}
	u := url.URL{Scheme: "file", Path: slashed}
	return u.String()
}

// FilePath is the inverse of FileURI. It reports false for non-file URIs.
func FilePath(uri string) (string, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "file" {
		return "", false
	}
	p := u.Path
	if len(p) >= 3 && p[0] == '/' && p[2] == ':' {
		p = p[1:] // /C:/x -> C:/x
	}
	return filepath.FromSlash(p), true
}

// contains reports whether doc lies inside folder and returns the path of
// doc relative to folder.
func contains(folder, doc string) (string, bool) {
	prefix := strings.TrimSuffix(folder, "/") + "/"
	if !strings.HasPrefix(doc, prefix) {
		return "", false
	}
	return strings.TrimPrefix(doc, prefix), true
}

// extension returns the suffix of the last path segment starting at its last
// dot, or "" when the segment has none.
func extension(uri string) string {
	segment := uri[strings.LastIndex(uri, "/")+1:]
	if i := strings.LastIndex(segment, "."); i >= 0 {
		return segment[i:]
	}
	return ""
}
