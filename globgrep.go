// Package globgrep searches files selected by a glob pattern for lines
// matching a regular expression, printing the matches grouped by file.
package globgrep

import "io"

// DefaultMaxOpen caps the number of files a bounded run keeps in flight.
const DefaultMaxOpen = 8

// Searcher greps a single file: it reads r, finds matching lines and
// writes the file's formatted block to w. It reports the number of
// matched lines. A file without matches must write nothing.
type Searcher interface {
	Search(path string, r io.Reader, pat *Pattern, w io.Writer) (int, error)
}

// Search compiles expr, expands pattern and runs a bounded concurrent
// search with default settings, writing match blocks to w.
func Search(expr, pattern string, w io.Writer) (int, error) {
	pat, err := CompilePattern(expr)
	if err != nil {
		return 0, err
	}
	files, err := ExpandGlob(pattern)
	if err != nil {
		return 0, err
	}
	eng := &Engine{Pattern: pat, Output: w}
	return eng.RunBounded(files)
}
