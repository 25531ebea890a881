package jadof_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/jadof"
	"github.com/aretw0/jadof/pkg/core"
)

func prepareDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// TestCachedCollection ensures a cached source keeps serving the enumeration it
// memoized until the cache is cleared, while an uncached one sees every change.
func TestCachedCollection(t *testing.T) {
	ctx := context.Background()
	dir := prepareDir(t, map[string]string{"existing.md": "original content"})

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cached, err := jadof.New(dir, jadof.WithMemoryCache(), jadof.WithLogger(logger))
	require.NoError(t, err)
	uncached, err := jadof.New(dir)
	require.NoError(t, err)

	n, err := cached.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Create a "ghost" file behind the scenes
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ghost.md"), []byte("ghost"), 0644))

	ghost, err := cached.Get(ctx, "ghost")
	require.NoError(t, err)
	assert.Nil(t, ghost, "cached source should not see the ghost yet")

	ghost, err = uncached.Get(ctx, "ghost")
	require.NoError(t, err)
	require.NotNil(t, ghost)
	assert.Equal(t, "ghost", ghost.Body())

	cached.ClearCache()
	ghost, err = cached.Get(ctx, "ghost")
	require.NoError(t, err)
	assert.NotNil(t, ghost, "cleared cache should re-enumerate")
}

func TestCacheTTL(t *testing.T) {
	ctx := context.Background()
	dir := prepareDir(t, map[string]string{"a.md": "A"})

	svc, err := jadof.New(dir, jadof.WithCacheTTL(50*time.Millisecond))
	require.NoError(t, err)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("B"), 0644))

	assert.Eventually(t, func() bool {
		n, err := svc.Count(ctx)
		return err == nil && n == 2
	}, 2*time.Second, 20*time.Millisecond)
}

func TestSetDirSwitchesCollection(t *testing.T) {
	ctx := context.Background()
	first := prepareDir(t, map[string]string{"one.md": "1"})
	second := prepareDir(t, map[string]string{"two.md": "2", "three.md": "3"})

	svc, err := jadof.New(first, jadof.WithLRUCache(4))
	require.NoError(t, err)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, svc.SetDir(second))
	assert.Equal(t, second, svc.Dir())

	n, err = svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCustomFormatters(t *testing.T) {
	ctx := context.Background()
	dir := prepareDir(t, map[string]string{
		"shout.up":         "quiet words",
		"greeting.hi.tmpl": "{{ .Name }}",
	})

	svc, err := jadof.New(dir,
		jadof.WithFormatter("up", func(text string) (string, error) {
			return strings.ToUpper(text), nil
		}),
		jadof.WithPageFormatter("hi", func(text string, p *core.Page) (string, error) {
			return "hi " + text + " from " + p.Filename(), nil
		}),
	)
	require.NoError(t, err)

	shout, err := svc.Get(ctx, "shout")
	require.NoError(t, err)
	out, err := svc.Render(shout)
	require.NoError(t, err)
	assert.Equal(t, "QUIET WORDS", out)

	greeting, err := svc.Get(ctx, "greeting")
	require.NoError(t, err)
	out, err = svc.Render(greeting)
	require.NoError(t, err)
	assert.Equal(t, "hi greeting from greeting.hi.tmpl", out)
}

func TestMalformedHeaderAbortsEnumeration(t *testing.T) {
	dir := prepareDir(t, map[string]string{
		"good.md": "---\ntitle: ok\n---\n",
		"bad.md":  "---\n: [nope\n---\n",
	})

	svc, err := jadof.New(dir)
	require.NoError(t, err)

	_, err = svc.All(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrMalformedHeader), "got %v", err)
}

func TestInitAndFindRoot(t *testing.T) {
	dir := prepareDir(t, map[string]string{
		"jadof.yaml":          "dir: pages\n",
		"pages/deep/page.txt": "x",
	})

	root, err := jadof.FindRoot(filepath.Join(dir, "pages", "deep"))
	require.NoError(t, err)
	assert.Equal(t, dir, root)

	repo, err := jadof.Init(filepath.Join(root, "pages"))
	require.NoError(t, err)
	pages, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "deep/page", pages[0].FullName())
}
