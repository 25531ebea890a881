package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPages(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// resetFlags restores every flag to its default; flag values outlive a single Execute.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

var sitePages = map[string]string{
	"index.md":          "---\ntitle: Home\n---\n# Welcome\n",
	"blog/hello.md":     "---\ntitle: Hello\ndraft: false\n---\nHello *there*.\n",
	"blog/wip.md":       "---\ntitle: WIP\ndraft: true\n---\nNot yet.\n",
	"blog/raw.txt":      "plain",
	"drafts/secret.txt": "hidden",
}

func TestList(t *testing.T) {
	dir := setupPages(t, sitePages)

	out, err := run(t, "--dir", dir, "list")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"blog/hello - Hello",
		"blog/raw",
		"blog/wip - WIP",
		"drafts/secret",
		"index - Home",
	}, strings.Split(strings.TrimSpace(out), "\n"))

	out, err = run(t, "--dir", dir, "--ignore", "drafts/**", "list", "--where", "draft=true")
	require.NoError(t, err)
	assert.Equal(t, "blog/wip - WIP\n", out)

	_, err = run(t, "--dir", dir, "list", "--where", "nokey")
	assert.Error(t, err)
}

func TestList_JSON(t *testing.T) {
	dir := setupPages(t, sitePages)

	out, err := run(t, "--dir", dir, "list", "--json", "-w", "title=Hello")
	require.NoError(t, err)

	var views []pageView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "blog/hello", views[0].FullName)
	assert.Equal(t, "blog", views[0].Parent)
	assert.Equal(t, "Hello", views[0].Metadata["title"])
	assert.Empty(t, views[0].Body)
}

func TestShowAndRender(t *testing.T) {
	dir := setupPages(t, sitePages)

	out, err := run(t, "--dir", dir, "show", "blog/hello")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Hello\n")
	assert.True(t, strings.HasSuffix(out, "Hello *there*.\n"))

	out, err = run(t, "--dir", dir, "show", "--json", "index")
	require.NoError(t, err)
	var view pageView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "# Welcome\n", view.Body)

	out, err = run(t, "--dir", dir, "render", "blog/hello")
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello <em>there</em>.</p>\n", out)

	_, err = run(t, "--dir", dir, "render", "blog/missing")
	assert.ErrorContains(t, err, `page "blog/missing" not found`)
}

func TestCount(t *testing.T) {
	dir := setupPages(t, sitePages)

	out, err := run(t, "--dir", dir, "count")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	out, err = run(t, "--dir", dir, "--ignore", "drafts", "--ignore", "**/*.txt", "count")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestPostsKind(t *testing.T) {
	dir := setupPages(t, map[string]string{
		"foo.md": "---\ndate: 01/31/2010\n---\nFirst.",
	})

	out, err := run(t, "--dir", dir, "--kind", "post", "list", "--json")
	require.NoError(t, err)
	var views []pageView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "2010/01/31/foo", views[0].Param)

	_, err = run(t, "--dir", dir, "--kind", "essay", "count")
	assert.ErrorContains(t, err, "unknown kind")
}

func TestConfigFile(t *testing.T) {
	project := setupPages(t, map[string]string{
		"jadof.yaml":        "dir: content\nignore:\n  - drafts/**\n",
		"content/a.md":      "A",
		"content/drafts/b":  "B",
		"content/sub/c.txt": "C",
	})
	t.Chdir(filepath.Join(project, "content", "sub"))

	out, err := run(t, "count")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	// Flags win over the file.
	out, err = run(t, "--dir", filepath.Join(project, "content", "sub"), "count")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestConfigEnv(t *testing.T) {
	dir := setupPages(t, sitePages)
	t.Setenv("JADOF_DIR", dir)
	t.Setenv("JADOF_KIND", "page")

	out, err := run(t, "count")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	cfgPath := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("kind: [broken\n"), 0644))
	_, err = run(t, "--config", cfgPath, "count")
	assert.ErrorContains(t, err, "failed to read config")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "jadof version "))
}
