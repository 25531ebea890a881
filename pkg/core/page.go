package core

import (
	"fmt"
	"maps"
	"time"
)

// Metadata represents the flexible key-value pairs parsed from a page header.
type Metadata map[string]any

// Page is one source file plus its parsed header and body.
// Pages are immutable once built; use NewPage to construct one.
type Page struct {
	name     string
	filename string
	path     string
	parent   string
	body     string
	metadata Metadata
	extras   map[string]any
	kind     Kind
}

// NewPage builds a page from resolved path attributes, a body and header metadata.
// Fields declared by the kind's schema are coerced from metadata; a coercion
// failure aborts construction.
func NewPage(info PathInfo, body string, meta Metadata, kind Kind) (*Page, error) {
	meta = maps.Clone(meta)
	if meta == nil {
		meta = Metadata{}
	}
	p := &Page{
		name:     info.Name,
		filename: info.Filename,
		path:     info.Path,
		parent:   info.Parent,
		body:     body,
		metadata: meta,
		kind:     kind,
	}

	for _, f := range kind.Schema {
		raw, ok := meta[f.Name]
		if !ok || raw == nil {
			continue
		}
		if f.Coerce == nil {
			p.setExtra(f.Name, raw)
			continue
		}
		v, err := f.Coerce(raw)
		if err != nil {
			return nil, fmt.Errorf("field %q of %s: %w", f.Name, info.Path, err)
		}
		p.setExtra(f.Name, v)
	}

	return p, nil
}

func (p *Page) setExtra(key string, v any) {
	if p.extras == nil {
		p.extras = make(map[string]any)
	}
	p.extras[key] = v
}

func (p *Page) Name() string     { return p.name }
func (p *Page) Filename() string { return p.filename }
func (p *Page) Path() string     { return p.path }
func (p *Page) Parent() string   { return p.parent }
func (p *Page) Body() string     { return p.body }
func (p *Page) Kind() Kind       { return p.kind }

// FullName is the canonical lookup key: parent and name joined with "/".
func (p *Page) FullName() string {
	return joinFullName(p.parent, p.name)
}

// Metadata returns a copy of the header values.
func (p *Page) Metadata() Metadata {
	return maps.Clone(p.metadata)
}

// Param is the external identifier computed by the page kind.
func (p *Page) Param() string {
	return p.kind.identity().Identify(p)
}

// Date returns the coerced "date" field, if the page kind declares one.
func (p *Page) Date() (time.Time, bool) {
	t, ok := p.extras["date"].(time.Time)
	return t, ok
}

// Attr looks a key up in three tiers: fixed attributes, schema fields, metadata.
// Computed attributes always win over header keys of the same name.
func (p *Page) Attr(key string) (any, bool) {
	switch key {
	case "name":
		return p.name, true
	case "filename":
		return p.filename, true
	case "path":
		return p.path, true
	case "parent":
		return p.parent, true
	case "full_name":
		return p.FullName(), true
	case "body":
		return p.body, true
	case "param":
		return p.Param(), true
	}
	if v, ok := p.extras[key]; ok {
		return v, true
	}
	v, ok := p.metadata[key]
	return v, ok
}

// Get returns the attribute value or nil when it does not exist.
func (p *Page) Get(key string) any {
	v, _ := p.Attr(key)
	return v
}

// Equal reports whether both pages come from the same file.
func (p *Page) Equal(other *Page) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.path == other.path
}

func (p *Page) String() string { return p.name }
