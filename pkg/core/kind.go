package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Identity computes the external identifier of a page (what a router puts in a URL).
type Identity interface {
	Identify(p *Page) string
}

// PlainIdentity identifies a page by its full name.
type PlainIdentity struct{}

func (PlainIdentity) Identify(p *Page) string { return p.FullName() }

// DatedIdentity prefixes the full name with the page date, e.g. "2010/01/31/foo".
// Pages without a date fall back to the full name.
type DatedIdentity struct {
	Field  string // schema field holding the date, defaults to "date"
	Layout string // defaults to "2006/01/02"
}

func (d DatedIdentity) Identify(p *Page) string {
	field := d.Field
	if field == "" {
		field = "date"
	}
	layout := d.Layout
	if layout == "" {
		layout = "2006/01/02"
	}
	t, ok := p.extras[field].(time.Time)
	if !ok || t.IsZero() {
		return p.FullName()
	}
	return t.Format(layout) + "/" + p.FullName()
}

// Field is a typed attribute coerced from a metadata value at construction.
type Field struct {
	Name   string
	Coerce func(v any) (any, error)
}

// Schema is the ordered list of extra fields a kind declares.
type Schema []Field

// Kind describes a family of pages: the extra fields they carry and how they are identified.
type Kind struct {
	Name     string
	Schema   Schema
	Identity Identity
}

var (
	// PageKind is the plain kind: no extra fields, identified by full name.
	PageKind = Kind{Name: "page", Identity: PlainIdentity{}}

	// PostKind adds a "date" field and identifies pages as "YYYY/MM/DD/full/name".
	PostKind = Kind{
		Name:     "post",
		Schema:   Schema{TimeField("date")},
		Identity: DatedIdentity{},
	}
)

func (k Kind) identity() Identity {
	if k.Identity == nil {
		return PlainIdentity{}
	}
	return k.Identity
}

// extraLayouts are accepted on top of what cast understands.
var extraLayouts = []string{
	"01/02/2006",
	"01/02/2006 15:04",
	"2006/01/02",
	"2006/01/02 15:04",
	"January 2, 2006",
	"Jan 2, 2006",
}

// TimeField declares a field coerced into a time.Time.
func TimeField(name string) Field {
	return Field{Name: name, Coerce: CoerceTime}
}

// CoerceTime parses v into a time.Time. Strings are tried against common layouts.
func CoerceTime(v any) (any, error) {
	if s, ok := v.(string); ok {
		s = strings.TrimSpace(s)
		for _, layout := range extraLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	t, err := cast.ToTimeE(v)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %v as time: %w", v, err)
	}
	return t, nil
}
