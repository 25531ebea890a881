package platform

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/jadof/pkg/adapters/cache"
	"github.com/aretw0/jadof/pkg/adapters/format"
	"github.com/aretw0/jadof/pkg/adapters/fs"
	"github.com/aretw0/jadof/pkg/core"
)

// svc, err := jadof.New("./pages", jadof.WithMemoryCache())
func New(dir string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	repo, err := initRepository(dir, o)
	if err != nil {
		return nil, err
	}

	formatters, err := buildFormatters(o)
	if err != nil {
		return nil, err
	}

	c, err := buildCache(o)
	if err != nil {
		return nil, err
	}

	svcOpts := []core.ServiceOption{
		core.WithFormatters(formatters),
		core.WithLogger(o.logger),
	}
	if c != nil {
		svcOpts = append(svcOpts, core.WithCache(c))
	}

	return core.NewService(repo, svcOpts...), nil
}

// Init builds the repository alone, without the query layer.
func Init(dir string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initRepository(dir, o)
}

func initRepository(dir string, o *options) (core.Repository, error) {
	if o.repository != nil {
		return o.repository, nil
	}
	repo, err := fs.NewRepository(fs.Config{
		Root:   dir,
		Kind:   o.kind,
		Ignore: o.ignore,
		Logger: o.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	return repo, nil
}

func buildFormatters(o *options) (*core.Formatters, error) {
	var (
		f   *core.Formatters
		err error
	)
	switch {
	case o.formatters != nil:
		f = o.formatters
	case o.markdown != nil:
		f, err = format.WithMarkdown(*o.markdown)
	default:
		f, err = format.Defaults()
	}
	if err != nil {
		return nil, err
	}

	for ext, fn := range o.extra {
		switch fn := fn.(type) {
		case core.TextFunc:
			err = f.Register(ext, fn)
		case core.PageFunc:
			err = f.RegisterPage(ext, fn)
		default:
			err = fmt.Errorf("%w: %q has type %T", core.ErrInvalidFormatter, ext, fn)
		}
		if err != nil {
			return nil, err
		}
	}
	return f, nil
}

func buildCache(o *options) (core.Cache, error) {
	switch {
	case o.cache != nil:
		return o.cache, nil
	case o.cacheTTL > 0:
		return cache.NewExpiring(max(o.cacheSize, 0), o.cacheTTL), nil
	case o.cacheSize > 0:
		return cache.NewLRU(o.cacheSize)
	case o.cacheSize < 0:
		return cache.NewMemory(), nil
	}
	return nil, nil
}
