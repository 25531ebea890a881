package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathInfo holds the identity attributes derived from a file path.
type PathInfo struct {
	Path     string // absolute, cleaned path
	Filename string // base name including extensions
	Name     string // filename up to the first dot
	Parent   string // "/"-separated directory relative to the root, "" at the root
}

// FullName joins Parent and Name.
func (i PathInfo) FullName() string {
	return joinFullName(i.Parent, i.Name)
}

// ResolvePath derives the identity of the file at path relative to root.
// Relative paths (and "~") are expanded before resolution.
func ResolvePath(root, path string) (PathInfo, error) {
	abs, err := ExpandPath(path)
	if err != nil {
		return PathInfo{}, err
	}
	absRoot, err := ExpandPath(root)
	if err != nil {
		return PathInfo{}, err
	}

	rel, err := filepath.Rel(absRoot, filepath.Dir(abs))
	if err != nil {
		return PathInfo{}, fmt.Errorf("%w: %s", ErrOutsideRoot, abs)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return PathInfo{}, fmt.Errorf("%w: %s", ErrOutsideRoot, abs)
	}
	if rel == "." {
		rel = ""
	}

	filename := filepath.Base(abs)
	return PathInfo{
		Path:     abs,
		Filename: filename,
		Name:     NameOf(filename),
		Parent:   strings.Trim(rel, "/"),
	}, nil
}

// NameOf strips everything from the first dot onward.
// Leading dots belong to the name, so ".bashrc" stays ".bashrc".
func NameOf(filename string) string {
	lead := len(filename) - len(strings.TrimLeft(filename, "."))
	if i := strings.IndexByte(filename[lead:], '.'); i >= 0 {
		return filename[:lead+i]
	}
	return filename
}

// Extensions returns the extension chain of filename, left to right.
// "foo.markdown.erb" yields ["markdown", "erb"]; empty segments are skipped.
func Extensions(filename string) []string {
	rest := filename[len(NameOf(filename)):]
	var exts []string
	for _, seg := range strings.Split(rest, ".") {
		if seg != "" {
			exts = append(exts, seg)
		}
	}
	return exts
}

// ExpandPath expands a leading "~" and returns an absolute, cleaned path.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}

func joinFullName(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}
