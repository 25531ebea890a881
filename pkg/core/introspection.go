package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Dir            string   `json:"dir"`
	Cached         bool     `json:"cached"`
	Formatters     []string `json:"formatters"`
	RepositoryType string   `json:"repository_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	dir := ""
	if s.repo != nil {
		repoType = "repository"
		dir = s.repo.Root()
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return ServiceState{
		Dir:            dir,
		Cached:         s.cache != nil,
		Formatters:     s.formatters.Names(),
		RepositoryType: repoType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
