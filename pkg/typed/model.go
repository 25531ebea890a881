package typed

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/jadof/pkg/core"
)

// Model wraps a core.Page with its header decoded into T.
// It acts as a typed view of a page.
type Model[T any] struct {
	*core.Page
	Data T
}

// Decode converts the page header into T through a JSON round trip, so T uses
// `json` struct tags. Fields declared by the page kind (e.g. a post date) are
// taken in their coerced form.
func Decode[T any](p *core.Page) (T, error) {
	var data T

	payload := map[string]any(p.Metadata())
	for _, f := range p.Kind().Schema {
		if v, ok := p.Attr(f.Name); ok {
			payload[f.Name] = v
		}
	}

	dataBytes, err := json.Marshal(payload)
	if err != nil {
		return data, fmt.Errorf("metadata marshal failed for %s: %w", p.FullName(), err)
	}
	if err := json.Unmarshal(dataBytes, &data); err != nil {
		return data, fmt.Errorf("unmarshal to target type failed for %s: %w", p.FullName(), err)
	}
	return data, nil
}

// NewModel decodes p into a Model.
func NewModel[T any](p *core.Page) (*Model[T], error) {
	data, err := Decode[T](p)
	if err != nil {
		return nil, err
	}
	return &Model[T]{Page: p, Data: data}, nil
}

func newModels[T any](pages []*core.Page) ([]*Model[T], error) {
	result := make([]*Model[T], 0, len(pages))
	for _, p := range pages {
		m, err := NewModel[T](p)
		if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}
