package core

import (
	"context"
	"io"
	"log/slog"
	"reflect"
	"slices"
	"sync"

	"github.com/spf13/cast"
)

// allKey is the cache key holding the full enumeration.
const allKey = "all"

// Service is the collection store: it answers queries over the pages of one
// repository, memoizing the enumeration when a cache is configured.
type Service struct {
	mu         sync.RWMutex
	repo       Repository
	cache      Cache
	formatters *Formatters
	logger     *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCache sets the cache collaborator.
func WithCache(c Cache) ServiceOption {
	return func(s *Service) { s.cache = c }
}

// WithFormatters sets the formatter registry used by Render.
func WithFormatters(f *Formatters) ServiceOption {
	return func(s *Service) { s.formatters = f }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = l }
}

// NewService creates a new Service.
func NewService(repo Repository, opts ...ServiceOption) *Service {
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	if s.formatters == nil {
		s.formatters = NewFormatters()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Dir returns the root directory pages are loaded from.
func (s *Service) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.repo == nil {
		return ""
	}
	return s.repo.Root()
}

// SetDir changes the root directory. The cache is cleared before the new root
// takes effect so no collection from the old root survives.
func (s *Service) SetDir(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.repo == nil {
		return ErrNoRepository
	}
	if s.cache != nil {
		s.cache.Clear()
	}
	if err := s.repo.SetRoot(dir); err != nil {
		return err
	}
	s.logger.Debug("root directory changed", "dir", s.repo.Root())
	return nil
}

// Cache returns the configured cache, or nil.
func (s *Service) Cache() Cache {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache
}

// SetCache replaces the cache collaborator. Passing nil disables caching.
func (s *Service) SetCache(c Cache) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = c
}

// ClearCache drops the memoized enumeration, if any.
func (s *Service) ClearCache() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Formatters returns the registry used by Render.
func (s *Service) Formatters() *Formatters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.formatters
}

// SetFormatters replaces the formatter registry. Nil installs an empty one.
func (s *Service) SetFormatters(f *Formatters) {
	if f == nil {
		f = NewFormatters()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formatters = f
}

// All returns every page under the root.
// With a cache configured the enumeration happens once per cache lifetime.
// The returned slice belongs to the caller; reordering it does not affect the cache.
func (s *Service) All(ctx context.Context) ([]*Page, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.repo == nil {
		return nil, ErrNoRepository
	}

	if s.cache == nil {
		return s.repo.List(ctx)
	}

	if v, ok := s.cache.Get(allKey); ok {
		if pages, ok := v.([]*Page); ok {
			return slices.Clone(pages), nil
		}
	}

	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(allKey, slices.Clone(pages))
	s.logger.Debug("cached page collection", "dir", s.repo.Root(), "count", len(pages))
	return pages, nil
}

// Count returns the number of pages.
func (s *Service) Count(ctx context.Context) (int, error) {
	pages, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}

// First returns the first page, or nil when there are none.
func (s *Service) First(ctx context.Context) (*Page, error) {
	pages, err := s.All(ctx)
	if err != nil || len(pages) == 0 {
		return nil, err
	}
	return pages[0], nil
}

// Last returns the last page, or nil when there are none.
func (s *Service) Last(ctx context.Context) (*Page, error) {
	pages, err := s.All(ctx)
	if err != nil || len(pages) == 0 {
		return nil, err
	}
	return pages[len(pages)-1], nil
}

// Get returns the page whose full name equals name, or nil.
// Full names encode the parent-relative path, so only files differing by
// extension alone can share one; the first in enumeration order wins.
func (s *Service) Get(ctx context.Context, name string) (*Page, error) {
	return s.FirstWhere(ctx, Conditions{"full_name": name})
}

// GetAny is Get with the name coerced to a string.
func (s *Service) GetAny(ctx context.Context, name any) (*Page, error) {
	return s.Get(ctx, cast.ToString(name))
}

// Where returns the pages matching every condition.
func (s *Service) Where(ctx context.Context, cond Conditions) ([]*Page, error) {
	pages, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []*Page
	for _, p := range pages {
		if Matches(p, cond) {
			out = append(out, p)
		}
	}
	return out, nil
}

// FirstWhere returns the first page matching every condition, or nil.
func (s *Service) FirstWhere(ctx context.Context, cond Conditions) (*Page, error) {
	pages, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if Matches(p, cond) {
			return p, nil
		}
	}
	return nil, nil
}

// Render formats the page body with the service formatters.
func (s *Service) Render(p *Page) (string, error) {
	return p.Render(s.Formatters())
}

// Matches reports whether every condition holds for p. Only equality is supported.
func Matches(p *Page, cond Conditions) bool {
	for k, want := range cond {
		got, ok := p.Attr(k)
		if !ok {
			if want != nil {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
