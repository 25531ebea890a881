package typed

import (
	"context"

	"github.com/aretw0/jadof/pkg/core"
)

// Service wraps a core.Service to return typed models.
type Service[T any] struct {
	svc *core.Service
}

// NewService creates a new typed service wrapper.
func NewService[T any](svc *core.Service) *Service[T] {
	return &Service[T]{svc: svc}
}

// Unwrap returns the underlying core service.
func (s *Service[T]) Unwrap() *core.Service {
	return s.svc
}

// All returns every page as a typed model.
func (s *Service[T]) All(ctx context.Context) ([]*Model[T], error) {
	pages, err := s.svc.All(ctx)
	if err != nil {
		return nil, err
	}
	return newModels[T](pages)
}

// Get retrieves a page by full name. It returns nil when there is no such page.
func (s *Service[T]) Get(ctx context.Context, name string) (*Model[T], error) {
	p, err := s.svc.Get(ctx, name)
	if err != nil || p == nil {
		return nil, err
	}
	return NewModel[T](p)
}

// Where returns the pages matching every condition as typed models.
func (s *Service[T]) Where(ctx context.Context, cond core.Conditions) ([]*Model[T], error) {
	pages, err := s.svc.Where(ctx, cond)
	if err != nil {
		return nil, err
	}
	return newModels[T](pages)
}

// Render formats the model's page with the service formatters.
func (s *Service[T]) Render(m *Model[T]) (string, error) {
	return s.svc.Render(m.Page)
}
