package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/jadof/pkg/adapters/format"
	"github.com/aretw0/jadof/pkg/core"
)

// options holds the internal configuration for a page source.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	kind       core.Kind
	ignore     []string
	cache      core.Cache
	cacheSize  int
	cacheTTL   time.Duration
	formatters *core.Formatters
	markdown   *format.MarkdownOptions
	extra      map[string]any // ext -> core.TextFunc or core.PageFunc
}

// Option defines a functional option for configuring a page source.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		kind:  core.PageKind,
		extra: make(map[string]any),
	}
}

// WithLogger sets the logger for the service and the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom repository (e.g. an in-memory one in tests).
// If provided, the filesystem adapter is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithKind selects the page kind (core.PageKind, core.PostKind or a custom one).
func WithKind(kind core.Kind) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// WithIgnore skips files and directories matching the doublestar globs, relative to the root.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.ignore = append(o.ignore, patterns...)
	}
}

// WithCache sets the cache collaborator memoizing the page collection.
func WithCache(c core.Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithMemoryCache enables an in-process cache.
func WithMemoryCache() Option {
	return WithLRUCache(0)
}

// WithLRUCache enables a bounded LRU cache. Zero size means an unbounded map.
func WithLRUCache(size int) Option {
	return func(o *options) {
		o.cacheSize = size
		o.cacheTTL = 0
		o.cache = nil
		if size <= 0 {
			o.cacheSize = -1
		}
	}
}

// WithCacheTTL enables a cache whose collection expires after ttl.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.cacheTTL = ttl
		o.cache = nil
	}
}

// WithFormatters replaces the default formatter registry.
func WithFormatters(f *core.Formatters) Option {
	return func(o *options) {
		o.formatters = f
	}
}

// WithMarkdownOptions tunes the default markdown formatter.
func WithMarkdownOptions(md format.MarkdownOptions) Option {
	return func(o *options) {
		o.markdown = &md
	}
}

// WithFormatter registers a text formatter on top of the registry.
func WithFormatter(ext string, fn core.TextFunc) Option {
	return func(o *options) {
		o.extra[ext] = fn
	}
}

// WithPageFormatter registers a formatter that also receives the page.
func WithPageFormatter(ext string, fn core.PageFunc) Option {
	return func(o *options) {
		o.extra[ext] = fn
	}
}
