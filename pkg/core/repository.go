package core

import "context"

// Repository enumerates the pages under a root directory.
// Adhering to this interface keeps the query layer independent of where
// the files actually live.
type Repository interface {
	// List builds every page found under the root. Any failure aborts the
	// whole enumeration; there are no partial results.
	List(ctx context.Context) ([]*Page, error)

	// Root returns the absolute root directory.
	Root() string

	// SetRoot changes the root directory. The path is expanded to an absolute one.
	SetRoot(dir string) error
}

// Cache memoizes values by key. Implementations decide eviction.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Clear()
}

// Conditions maps attribute names to the value they must equal.
type Conditions map[string]any
