package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/aretw0/jadof/pkg/core"
)

// MarkdownOptions tunes the markdown formatter.
type MarkdownOptions struct {
	// Extensions names goldmark extensions to enable. Empty means GFM, linkify and task lists.
	Extensions []string
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
	// Safe drops raw HTML found in the source.
	Safe bool
	// Sanitize runs the rendered HTML through bluemonday's UGC policy.
	Sanitize bool
}

// Markdown returns a text formatter converting markdown to HTML with goldmark.
// The engine is built once; goldmark converters are safe for concurrent use.
func Markdown(opts MarkdownOptions) core.TextFunc {
	engine := newGoldmarkEngine(opts)

	var policy *bluemonday.Policy
	if opts.Sanitize {
		policy = bluemonday.UGCPolicy()
	}

	return func(text string) (string, error) {
		var buf bytes.Buffer
		if err := engine.Convert([]byte(text), &buf); err != nil {
			return "", fmt.Errorf("markdown: %w", err)
		}
		if policy != nil {
			return policy.Sanitize(buf.String()), nil
		}
		return buf.String(), nil
	}
}

func newGoldmarkEngine(opts MarkdownOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.Safe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// collectExtensions maps names to extenders; unknown names are ignored.
func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		if ext, ok := extensionRegistry[key]; ok {
			extenders = append(extenders, ext)
			seen[key] = struct{}{}
		}
	}
	return extenders
}
