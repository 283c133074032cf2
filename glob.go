package globgrep

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/karrick/godirwalk"
)

// Candidate is a file selected by glob expansion. A candidate with a
// non-nil Err marks an entry that could not be resolved; it is reported
// instead of searched.
type Candidate struct {
	Path string
	Err  error
}

const globMeta = `*?[]{}\`

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, globMeta)
}

// globRoot returns the longest directory prefix of pattern without
// metacharacters. The walk starts there.
func globRoot(pattern string) string {
	dir := pattern
	for hasGlobMeta(dir) {
		dir = path.Dir(dir)
	}
	return dir
}

// ExpandGlob resolves pattern into the list of regular files it matches.
//
// Matching uses slash-separated paths with *, **, ?, [...] and {...}
// metacharacters; * never crosses a path separator, ** does. A pattern
// without metacharacters names a single file. A malformed pattern
// yields a *GlobError; a pattern that matches nothing yields an empty
// list and no error. Symbolic links are not followed.
func ExpandGlob(pattern string) ([]Candidate, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, &GlobError{Pattern: pattern, Err: err}
	}

	// A leading **/ is commonly expected to also match files that have
	// no directory component at all, which the compiled form alone
	// does not cover.
	var bare glob.Glob
	if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
		bare, err = glob.Compile(rest, '/')
		if err != nil {
			return nil, &GlobError{Pattern: pattern, Err: err}
		}
	}

	if !hasGlobMeta(pattern) {
		info, err := os.Stat(pattern)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, nil
			}
			return []Candidate{{Path: pattern, Err: &FileError{Path: pattern, Op: "resolve", Err: err}}}, nil
		}
		if !info.Mode().IsRegular() {
			return nil, nil
		}
		return []Candidate{{Path: pattern}}, nil
	}

	root := globRoot(pattern)
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []Candidate
	walkErr := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if !de.IsRegular() {
				return nil
			}
			p := filepath.ToSlash(osPathname)
			if g.Match(p) || (bare != nil && !strings.Contains(p, "/") && bare.Match(p)) {
				files = append(files, Candidate{Path: osPathname})
			}
			return nil
		},
		ErrorCallback: func(osPathname string, err error) godirwalk.ErrorAction {
			files = append(files, Candidate{
				Path: osPathname,
				Err:  &FileError{Path: osPathname, Op: "resolve", Err: err},
			})
			return godirwalk.SkipNode
		},
		Unsorted: true,
	})
	if walkErr != nil {
		return nil, &GlobError{Pattern: pattern, Err: walkErr}
	}
	return files, nil
}
