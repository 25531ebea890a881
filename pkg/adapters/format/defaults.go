// Package format provides the stock formatters for the render pipeline.
package format

import (
	"fmt"

	"github.com/aretw0/jadof/pkg/core"
)

// Extension names registered by Defaults.
var (
	MarkdownExtensions = []string{"markdown", "md", "mkd"}
	TemplateExtensions = []string{"tmpl", "gotmpl"}
	Pongo2Extensions   = []string{"pongo2", "django"}
	PlainExtensions    = []string{"txt", "html"}
)

// Defaults returns a fresh registry with every stock formatter.
func Defaults() (*core.Formatters, error) {
	return WithMarkdown(MarkdownOptions{})
}

// WithMarkdown is Defaults with custom markdown options.
// It fails when one of the extension lists holds an empty name.
func WithMarkdown(opts MarkdownOptions) (*core.Formatters, error) {
	f := core.NewFormatters()

	if err := registerText(f, MarkdownExtensions, Markdown(opts)); err != nil {
		return nil, err
	}
	if err := registerPage(f, TemplateExtensions, GoTemplate(nil)); err != nil {
		return nil, err
	}
	if err := registerPage(f, Pongo2Extensions, Pongo2(nil)); err != nil {
		return nil, err
	}
	if err := registerText(f, PlainExtensions, Passthrough); err != nil {
		return nil, err
	}
	return f, nil
}

func registerText(f *core.Formatters, exts []string, fn core.TextFunc) error {
	for _, ext := range exts {
		if err := f.Register(ext, fn); err != nil {
			return fmt.Errorf("failed to register default formatter: %w", err)
		}
	}
	return nil
}

func registerPage(f *core.Formatters, exts []string, fn core.PageFunc) error {
	for _, ext := range exts {
		if err := f.RegisterPage(ext, fn); err != nil {
			return fmt.Errorf("failed to register default formatter: %w", err)
		}
	}
	return nil
}
