package format

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/flosch/pongo2/v6"

	"github.com/aretw0/jadof/pkg/core"
)

// GoTemplate returns a page formatter executing the text as a text/template
// with the page as data: {{ .Name }}, {{ .FullName }}, {{ .Get "title" }}.
func GoTemplate(funcs template.FuncMap) core.PageFunc {
	return func(text string, p *core.Page) (string, error) {
		tpl, err := template.New(p.Filename()).Option("missingkey=zero").Funcs(funcs).Parse(text)
		if err != nil {
			return "", fmt.Errorf("template: %w", err)
		}
		var sb strings.Builder
		if err := tpl.Execute(&sb, p); err != nil {
			return "", fmt.Errorf("template: %w", err)
		}
		return sb.String(), nil
	}
}

// Pongo2 returns a page formatter executing the text as a Django-syntax template.
// The context exposes page, name, full_name, param, parent and meta; extra
// values are merged in and override those keys.
func Pongo2(extra pongo2.Context) core.PageFunc {
	return func(text string, p *core.Page) (string, error) {
		tpl, err := pongo2.FromString(text)
		if err != nil {
			return "", fmt.Errorf("pongo2: %w", err)
		}

		ctx := pongo2.Context{
			"page":      p,
			"name":      p.Name(),
			"full_name": p.FullName(),
			"param":     p.Param(),
			"parent":    p.Parent(),
			"meta":      map[string]any(p.Metadata()),
		}
		ctx.Update(extra)

		out, err := tpl.Execute(ctx)
		if err != nil {
			return "", fmt.Errorf("pongo2: %w", err)
		}
		return out, nil
	}
}

// Passthrough returns the text unchanged.
func Passthrough(text string) (string, error) {
	return text, nil
}
