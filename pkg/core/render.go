package core

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// TextFunc transforms text on its own.
type TextFunc func(text string) (string, error)

// PageFunc transforms text and needs the page it belongs to (filename, metadata...).
type PageFunc func(text string, p *Page) (string, error)

// formatter holds exactly one of the two variants.
type formatter struct {
	text TextFunc
	page PageFunc
}

func (f formatter) apply(text string, p *Page) (string, error) {
	if f.page != nil {
		return f.page(text, p)
	}
	return f.text(text)
}

// Formatters maps an extension name (without the dot) to a formatter.
// The zero value is an empty, usable registry.
type Formatters struct {
	mu sync.RWMutex
	m  map[string]formatter
}

// NewFormatters creates an empty registry.
func NewFormatters() *Formatters {
	return &Formatters{m: make(map[string]formatter)}
}

// Register adds a text-only formatter for ext, replacing any previous one.
func (f *Formatters) Register(ext string, fn TextFunc) error {
	if ext == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormatter, ext)
	}
	f.put(ext, formatter{text: fn})
	return nil
}

// RegisterPage adds a formatter that also receives the page being rendered.
func (f *Formatters) RegisterPage(ext string, fn PageFunc) error {
	if ext == "" || fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormatter, ext)
	}
	f.put(ext, formatter{page: fn})
	return nil
}

func (f *Formatters) put(ext string, fm formatter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil {
		f.m = make(map[string]formatter)
	}
	f.m[ext] = fm
}

// Unregister removes the formatter for ext.
func (f *Formatters) Unregister(ext string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.m, ext)
}

// Has reports whether a formatter is registered for ext.
func (f *Formatters) Has(ext string) bool {
	_, ok := f.lookup(ext)
	return ok
}

func (f *Formatters) lookup(ext string) (formatter, bool) {
	if f == nil {
		return formatter{}, false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	fm, ok := f.m[ext]
	return fm, ok
}

// Names returns the registered extensions, sorted.
func (f *Formatters) Names() []string {
	if f == nil {
		return nil
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Sorted(maps.Keys(f.m))
}

// Clone returns an independent copy of the registry.
func (f *Formatters) Clone() *Formatters {
	c := NewFormatters()
	if f == nil {
		return c
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	maps.Copy(c.m, f.m)
	return c
}

// Merge copies every formatter of other into f, overriding duplicates.
func (f *Formatters) Merge(other *Formatters) {
	if other == nil {
		return
	}
	other.mu.RLock()
	src := maps.Clone(other.m)
	other.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.m == nil {
		f.m = make(map[string]formatter)
	}
	maps.Copy(f.m, src)
}

// Render applies the formatters matching the page's extension chain, last extension first.
// "foo.markdown.erb" runs "erb" and then "markdown". Extensions without a
// formatter are skipped. The page is not modified.
func (p *Page) Render(f *Formatters) (string, error) {
	out := p.body
	exts := Extensions(p.filename)
	for i := len(exts) - 1; i >= 0; i-- {
		fm, ok := f.lookup(exts[i])
		if !ok {
			continue
		}
		var err error
		out, err = fm.apply(out, p)
		if err != nil {
			return "", fmt.Errorf("format %q of %s: %w", exts[i], p.FullName(), err)
		}
	}
	return out, nil
}
