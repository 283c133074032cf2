package globgrep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func candidatePaths(cs []Candidate) []string {
	var paths []string
	for _, c := range cs {
		paths = append(paths, c.Path)
	}
	return paths
}

func TestExpandGlobLiteral(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "hello\n"})

	files, err := ExpandGlob(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "a.txt")), files[0].Path)
	assert.NoError(t, files[0].Err)
}

func TestExpandGlobLiteralMissing(t *testing.T) {
	dir := t.TempDir()

	files, err := ExpandGlob(filepath.Join(dir, "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExpandGlobLiteralDirectory(t *testing.T) {
	dir := t.TempDir()

	// A literal path naming a directory selects nothing.
	files, err := ExpandGlob(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExpandGlobStar(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.go":     "package a\n",
		"b.go":     "package b\n",
		"c.txt":    "text\n",
		"sub/d.go": "package d\n",
	})

	files, err := ExpandGlob(dir + "/*.go")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.go"),
		filepath.Join(dir, "b.go"),
	}, candidatePaths(files))
}

func TestExpandGlobRecursive(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.go":          "package a\n",
		"c.txt":         "text\n",
		"sub/d.go":      "package d\n",
		"sub/deep/e.go": "package e\n",
	})

	// ** crosses path separators, so **.go picks up every depth.
	files, err := ExpandGlob(dir + "/**.go")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.go"),
		filepath.Join(dir, "sub", "d.go"),
		filepath.Join(dir, "sub", "deep", "e.go"),
	}, candidatePaths(files))

	// **/ requires at least one directory component.
	files, err = ExpandGlob(dir + "/**/*.go")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "sub", "d.go"),
		filepath.Join(dir, "sub", "deep", "e.go"),
	}, candidatePaths(files))
}

func TestExpandGlobBareNames(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.go":   "package main\n",
		"sub/x.go":  "package sub\n",
		"sub/y.txt": "text\n",
	})
	t.Chdir(dir)

	// A leading **/ still matches files sitting at the walk root.
	files, err := ExpandGlob("**/*.go")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"main.go",
		filepath.Join("sub", "x.go"),
	}, candidatePaths(files))

	files, err = ExpandGlob("*.go")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go"}, candidatePaths(files))
}

func TestExpandGlobAlternatives(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.go":  "package a\n",
		"b.rs":  "fn main() {}\n",
		"c.txt": "text\n",
	})

	files, err := ExpandGlob(dir + "/*.{go,rs}")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.go"),
		filepath.Join(dir, "b.rs"),
	}, candidatePaths(files))
}

func TestExpandGlobNoMatches(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "hello\n"})

	files, err := ExpandGlob(dir + "/*.go")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExpandGlobMissingRoot(t *testing.T) {
	dir := t.TempDir()

	files, err := ExpandGlob(dir + "/nope/**.go")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExpandGlobBadPattern(t *testing.T) {
	for _, pattern := range []string{"[", "src/[a-.go"} {
		_, err := ExpandGlob(pattern)
		require.Error(t, err, "pattern %q", pattern)
		var gerr *GlobError
		require.ErrorAs(t, err, &gerr, "pattern %q", pattern)
	}
}

func TestExpandGlobSkipsDirectories(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"file.txt":     "hello\n",
		"adir/sub.txt": "nested\n",
	})

	files, err := ExpandGlob(dir + "/*")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{filepath.Join(dir, "file.txt")}, candidatePaths(files))
}
