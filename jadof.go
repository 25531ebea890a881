package jadof

import (
	_ "embed"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/jadof/internal/platform"
	"github.com/aretw0/jadof/pkg/adapters/format"
	"github.com/aretw0/jadof/pkg/core"
)

//go:embed VERSION
var version string

// Version is the library version.
var Version = strings.TrimSpace(version)

// Default directories used when New or NewPosts receive an empty path.
const (
	DefaultPagesDir = "./pages"
	DefaultPostsDir = "./posts"
)

// --- Types ---

// Page is a public alias for the domain page.
type Page = core.Page

// Metadata is a public alias for a page header.
type Metadata = core.Metadata

// Conditions is a public alias for Where/FirstWhere filters.
type Conditions = core.Conditions

// Service is a public alias for the page collection.
type Service = core.Service

// Formatters is a public alias for the formatter registry.
type Formatters = core.Formatters

// MarkdownOptions is a public alias for the markdown formatter settings.
type MarkdownOptions = format.MarkdownOptions

// Page kinds.
var (
	PageKind = core.PageKind
	PostKind = core.PostKind
)

// --- Configuration ---

// Option defines a functional option for configuring a page source.
type Option = platform.Option

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom repository.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithKind selects the page kind.
func WithKind(kind core.Kind) Option {
	return platform.WithKind(kind)
}

// WithIgnore skips files and directories matching the globs.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithCache sets a custom cache collaborator.
func WithCache(c core.Cache) Option {
	return platform.WithCache(c)
}

// WithMemoryCache enables an unbounded in-process cache.
func WithMemoryCache() Option {
	return platform.WithMemoryCache()
}

// WithLRUCache enables a bounded LRU cache.
func WithLRUCache(size int) Option {
	return platform.WithLRUCache(size)
}

// WithCacheTTL enables a cache whose entries expire after ttl.
func WithCacheTTL(ttl time.Duration) Option {
	return platform.WithCacheTTL(ttl)
}

// WithFormatters replaces the default formatter registry.
func WithFormatters(f *core.Formatters) Option {
	return platform.WithFormatters(f)
}

// WithMarkdownOptions tunes the default markdown formatter.
func WithMarkdownOptions(md MarkdownOptions) Option {
	return platform.WithMarkdownOptions(md)
}

// WithFormatter registers a text formatter for ext.
func WithFormatter(ext string, fn core.TextFunc) Option {
	return platform.WithFormatter(ext, fn)
}

// WithPageFormatter registers a page-aware formatter for ext.
func WithPageFormatter(ext string, fn core.PageFunc) Option {
	return platform.WithPageFormatter(ext, fn)
}

// --- Factory ---

// New creates a page source over dir. An empty dir means DefaultPagesDir.
func New(dir string, opts ...Option) (*core.Service, error) {
	if dir == "" {
		dir = DefaultPagesDir
	}
	return platform.New(dir, opts...)
}

// NewPosts creates a source of dated posts over dir. An empty dir means DefaultPostsDir.
func NewPosts(dir string, opts ...Option) (*core.Service, error) {
	if dir == "" {
		dir = DefaultPostsDir
	}
	return platform.New(dir, append([]Option{platform.WithKind(core.PostKind)}, opts...)...)
}

// Init builds the repository explicitly, without the query layer.
func Init(dir string, opts ...Option) (core.Repository, error) {
	if dir == "" {
		dir = DefaultPagesDir
	}
	return platform.Init(dir, opts...)
}

// DefaultFormatters returns a fresh registry with the stock formatters.
func DefaultFormatters() (*core.Formatters, error) {
	return format.Defaults()
}

// FindRoot looks upwards from startDir for a jadof.yaml, jadof.yml or .jadof marker.
func FindRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
