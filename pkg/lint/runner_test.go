package lint

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeTestFile(t, dir, "a.md", "# A\n")
	b := writeTestFile(t, dir, "nested/b.md", "# B\n")
	writeTestFile(t, dir, "c.txt", "not markdown\n")

	t.Run("glob matches recursively", func(t *testing.T) {
		paths, err := ExpandPaths([]string{filepath.Join(dir, "**", "*.md")})
		require.NoError(t, err)
		assert.Equal(t, []string{a, b}, paths)
	})

	t.Run("literal path passes through", func(t *testing.T) {
		paths, err := ExpandPaths([]string{a})
		require.NoError(t, err)
		assert.Equal(t, []string{a}, paths)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		paths, err := ExpandPaths([]string{a, filepath.Join(dir, "*.md")})
		require.NoError(t, err)
		assert.Equal(t, []string{a}, paths)
	})

	t.Run("no match is an error", func(t *testing.T) {
		_, err := ExpandPaths([]string{filepath.Join(dir, "*.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no files match")
	})

	t.Run("good patterns still expand alongside bad ones", func(t *testing.T) {
		paths, err := ExpandPaths([]string{a, filepath.Join(dir, "*.json")})
		require.Error(t, err)
		assert.Equal(t, []string{a}, paths)
	})
}

func TestValidateFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	clean := writeTestFile(t, dir, "clean.md", "# Title\n\nbody\n")
	broken := writeTestFile(t, dir, "broken.md", "####### too deep\n")

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ValidateFiles(ctx, "xml", []string{clean})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown document kind")
	})

	t.Run("per-file results", func(t *testing.T) {
		results, err := ValidateFiles(ctx, "md", []string{clean, broken})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, clean, results[0].File)
		assert.Empty(t, results[0].Issues)
		assert.Equal(t, broken, results[1].File)
		assert.True(t, results[1].HasErrors())
	})

	t.Run("unreadable file is aggregated, others still checked", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.md")
		results, err := ValidateFiles(ctx, "md", []string{missing, clean})
		require.Error(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, clean, results[0].File)
	})
}

func TestValidateReader(t *testing.T) {
	ctx := context.Background()

	t.Run("labels stream as stdin", func(t *testing.T) {
		result, err := ValidateReader(ctx, "toon", strings.NewReader("name: alice\n"))
		require.NoError(t, err)
		assert.Equal(t, "<stdin>", result.File)
		assert.Empty(t, result.Issues)
	})

	t.Run("issues surface", func(t *testing.T) {
		result, err := ValidateReader(ctx, "toon", strings.NewReader("\tname: alice\n"))
		require.NoError(t, err)
		assert.True(t, result.HasErrors())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := ValidateReader(ctx, "yaml", strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestWriteText(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteText(&buf, []Result{{File: "a.md"}, {File: "b.md"}}))
		assert.Equal(t, "2 file(s) checked, no issues found\n", buf.String())
	})

	t.Run("issues listed one per line", func(t *testing.T) {
		results := []Result{{
			File: "a.md",
			Issues: []Issue{
				{Line: 3, Severity: SeverityError, Code: "fence-unclosed", Message: "code fence is never closed"},
				{Line: 5, Column: 4, Severity: SeverityWarning, Code: "heading-empty", Message: "heading has no text"},
			},
		}}
		var buf bytes.Buffer
		require.NoError(t, WriteText(&buf, results))
		out := buf.String()
		assert.Contains(t, out, "a.md:3 error fence-unclosed: code fence is never closed\n")
		assert.Contains(t, out, "a.md:5:4 warning heading-empty: heading has no text\n")
		assert.Contains(t, out, "1 file(s) checked, 2 issue(s) found\n")
	})
}

func TestWriteJSON(t *testing.T) {
	results := []Result{{
		File:   "a.toon",
		Issues: []Issue{{Line: 2, Severity: SeverityError, Code: "array-count", Message: "declared 3 values, found 2"}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, results))

	var decoded []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, results, decoded)
}
