package globgrep

import "fmt"

// PatternError reports a regular expression that failed to compile.
// It is a configuration error: the run aborts before any file is opened.
type PatternError struct {
	Expr string
	Err  error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// GlobError reports a glob pattern that failed to compile.
// Like PatternError, it aborts the run before any file is opened.
type GlobError struct {
	Pattern string
	Err     error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("invalid glob %q: %v", e.Pattern, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }

// FileError reports a failure scoped to one candidate file.
// Op is one of "resolve", "open", "read" or "write".
// File errors never abort a run; the file is reported and skipped.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
