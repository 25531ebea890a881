package jadof

import (
	"github.com/aretw0/jadof/pkg/core"
	"github.com/aretw0/jadof/pkg/typed"
)

// Model wraps a page with its header decoded into T.
type Model[T any] = typed.Model[T]

// TypedService is a public alias for the typed service.
type TypedService[T any] = typed.Service[T]

// NewTyped creates a type-safe wrapper around an existing service.
// T is the struct the page headers decode into, using `json` tags.
func NewTyped[T any](svc *core.Service) *TypedService[T] {
	return typed.NewService[T](svc)
}

// OpenTyped simplifies creating a TypedService from a directory.
func OpenTyped[T any](dir string, opts ...Option) (*TypedService[T], error) {
	svc, err := New(dir, opts...)
	if err != nil {
		return nil, err
	}
	return typed.NewService[T](svc), nil
}
