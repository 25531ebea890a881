package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jadof/pkg/core"
)

// pageView is the JSON shape of a page.
type pageView struct {
	Name     string        `json:"name"`
	FullName string        `json:"full_name"`
	Filename string        `json:"filename"`
	Path     string        `json:"path"`
	Parent   string        `json:"parent"`
	Param    string        `json:"param"`
	Metadata core.Metadata `json:"metadata,omitempty"`
	Body     string        `json:"body,omitempty"`
}

func newPageView(p *core.Page, withBody bool) pageView {
	v := pageView{
		Name:     p.Name(),
		FullName: p.FullName(),
		Filename: p.Filename(),
		Path:     p.Path(),
		Parent:   p.Parent(),
		Param:    p.Param(),
		Metadata: p.Metadata(),
	}
	if withBody {
		v.Body = p.Body()
	}
	return v
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// parseConditions turns key=value pairs into conditions. Values are read as
// YAML scalars, so draft=true matches a boolean and views=3 an integer.
func parseConditions(pairs []string) (core.Conditions, error) {
	cond := core.Conditions{}
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid condition %q (want key=value)", pair)
		}
		var value any
		if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
			value = raw
		}
		cond[key] = value
	}
	return cond, nil
}

// findPage looks a page up by full name and fails when it does not exist.
func findPage(ctx context.Context, svc *core.Service, name string) (*core.Page, error) {
	p, err := svc.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("page %q not found", name)
	}
	return p, nil
}
