package fs

import (
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/jadof/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
)

// Repository implements core.Repository over a directory of the local filesystem.
type Repository struct {
	mu        sync.RWMutex
	root      string
	config    Config
	lastCount int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Root   string       // Directory pages are loaded from. Expanded to an absolute path.
	Kind   core.Kind    // Kind of the pages built; zero value means core.PageKind.
	Ignore []string     // Doublestar globs, relative to Root, of files and directories to skip.
	Logger *slog.Logger // Optional.
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) (*Repository, error) {
	if config.Kind.Name == "" && config.Kind.Identity == nil && len(config.Kind.Schema) == 0 {
		config.Kind = core.PageKind
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	for _, pattern := range config.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	r := &Repository{config: config}
	if err := r.SetRoot(config.Root); err != nil {
		return nil, err
	}
	return r, nil
}

// Root returns the absolute root directory.
func (r *Repository) Root() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// SetRoot changes the root directory. The directory does not need to exist yet;
// List reports it if it is still missing.
func (r *Repository) SetRoot(dir string) error {
	abs, err := core.ExpandPath(dir)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.root = abs
	return nil
}

// List walks the root recursively and builds a page for every regular file.
//
// Strategy:
//  1. Walk in lexical order (stable across calls).
//  2. Skip directories, symlinks to directories and ignored paths.
//  3. Read each file, extract its header and resolve its identity.
//
// Any error (missing root, unreadable file, malformed header) aborts the walk.
func (r *Repository) List(ctx context.Context) ([]*core.Page, error) {
	root := r.Root()
	logger := r.config.Logger

	var pages []*core.Page
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && r.ignored(rel) {
				return filepath.SkipDir
			}
			return nil
		}
		if r.ignored(rel) {
			return nil
		}

		if d.Type()&iofs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		page, err := r.load(root, path)
		if err != nil {
			return err
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pages in %s: %w", root, err)
	}

	r.mu.Lock()
	r.lastCount = len(pages)
	r.mu.Unlock()

	logger.Debug("enumerated pages", "root", root, "count", len(pages))
	return pages, nil
}

// Load builds the page for a single file under the root.
func (r *Repository) Load(path string) (*core.Page, error) {
	return r.load(r.Root(), path)
}

func (r *Repository) load(root, path string) (*core.Page, error) {
	info, err := core.ResolvePath(root, path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(info.Path)
	if err != nil {
		return nil, err
	}

	body, meta, err := ExtractHeader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", info.Path, err)
	}

	return core.NewPage(info, body, meta, r.config.Kind)
}

func (r *Repository) ignored(rel string) bool {
	for _, pattern := range r.config.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

var _ core.Repository = (*Repository)(nil)
