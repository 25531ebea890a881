// Package jadof is the composition root for jadof, "just a directory of files".
//
// It turns a directory tree of text files into pages: each file may start with a
// YAML header between two "---" lines, and the rest is the body. Pages are
// identified by their path relative to the directory without extensions
// ("blog/hello" for blog/hello.md.tmpl), and the remaining extensions select the
// formatters that render the body, innermost last.
//
// The core (pkg/core) knows nothing about the filesystem. The default adapter
// (pkg/adapters/fs) walks a local directory; caches live in pkg/adapters/cache and
// the stock formatters (goldmark, text/template, pongo2) in pkg/adapters/format.
//
// Usage:
//
//	svc, err := jadof.New("./pages",
//		jadof.WithMemoryCache(),
//		jadof.WithIgnore("drafts/**"),
//	)
//
//	page, err := svc.Get(ctx, "blog/hello")
//	html, err := svc.Render(page)
//
//	tagged, err := svc.Where(ctx, jadof.Conditions{"layout": "post"})
package jadof
