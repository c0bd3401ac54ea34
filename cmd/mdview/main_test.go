package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// project creates a temporary project with the given files.
func project(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

var docs = map[string]string{
	"Assets/index.md":       "# Hello\n\nSee [guide](guide.md).\n",
	"Assets/guide/intro.md": "Intro\n",
	"Assets/notes.txt":      "not markdown\n",
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("paints text", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		out, err := runCLI(t, "--project", dir, "render", "Assets/index.md", "--width", "40")
		require.NoError(t, err)
		assert.Contains(t, out, "Hello")
		assert.Contains(t, out, "See guide.")
	})

	t.Run("dumps json", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		out, err := runCLI(t, "--project", dir, "render", "--format", "json", "Assets/index.md")
		require.NoError(t, err)

		var dump struct {
			Version int `json:"version"`
			Root    struct {
				Kind       string   `json:"kind"`
				Classes    []string `json:"classes"`
				Stylesheet string   `json:"stylesheet"`
			} `json:"root"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &dump))
		assert.Equal(t, 1, dump.Version)
		assert.Equal(t, "container", dump.Root.Kind)
		assert.Equal(t, []string{mdview.ClassRoot}, dump.Root.Classes)
		assert.Equal(t, "default", dump.Root.Stylesheet)
	})

	t.Run("accepts file paths inside the project", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		out, err := runCLI(t, "--project", dir, "render", filepath.Join(dir, "Assets", "guide", "intro.md"))
		require.NoError(t, err)
		assert.Contains(t, out, "Intro")
	})

	t.Run("missing document", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		_, err := runCLI(t, "--project", dir, "render", "Assets/missing.md")
		assert.ErrorIs(t, err, mdview.ErrAssetNotFound)
	})

	t.Run("rejects non-markdown documents", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		_, err := runCLI(t, "--project", dir, "render", "Assets/notes.txt")
		assert.ErrorIs(t, err, mdview.ErrUnsupportedFormat)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		_, err := runCLI(t, "--project", dir, "render", "--format", "html", "Assets/index.md")
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("lists markdown documents", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		out, err := runCLI(t, "--project", dir, "list")
		require.NoError(t, err)
		assert.Equal(t, "Assets/guide/intro.md\nAssets/index.md\n", out)
	})

	t.Run("lists a custom pattern", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		out, err := runCLI(t, "--project", dir, "list", "Assets/*.txt")
		require.NoError(t, err)
		assert.Equal(t, "Assets/notes.txt\n", out)
	})
}

func TestStylesheet(t *testing.T) {
	t.Parallel()

	t.Run("prints the default stylesheet", func(t *testing.T) {
		t.Parallel()
		dir := project(t, docs)
		out, err := runCLI(t, "--project", dir, "stylesheet")
		require.NoError(t, err)
		assert.Contains(t, out, "version: 1")
		assert.Contains(t, out, mdview.ClassLink+":")
	})

	t.Run("layers a stylesheet file over the defaults", func(t *testing.T) {
		t.Parallel()
		dir := project(t, map[string]string{
			"Assets/index.md": "x\n",
			"styles/mdview_markdown.yaml": "version: 1\nrules:\n" +
				"  mdv-link:\n    foreground: \"#ff0000\"\n",
		})
		out, err := runCLI(t, "--project", dir, "--styles", filepath.Join(dir, "styles"), "stylesheet")
		require.NoError(t, err)
		assert.Contains(t, out, "#ff0000")
		assert.Contains(t, out, mdview.HeadingClass(1)+":")
	})
}
