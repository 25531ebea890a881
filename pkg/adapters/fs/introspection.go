package fs

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
type RepositoryState struct {
	Root      string   `json:"root"`
	Kind      string   `json:"kind"`
	Ignore    []string `json:"ignore,omitempty"`
	LastCount int      `json:"last_count"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return RepositoryState{
		Root:      r.root,
		Kind:      r.config.Kind.Name,
		Ignore:    r.config.Ignore,
		LastCount: r.lastCount,
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
