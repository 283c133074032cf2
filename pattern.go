package globgrep

import "regexp"

// Range is a half-open [Start, End) byte span inside a line.
type Range struct {
	Start int
	End   int
}

// Pattern is a compiled regular expression that can be shared between
// concurrent search tasks via Clone.
type Pattern struct {
	re   *regexp.Regexp
	expr string
}

// CompilePattern compiles expr into a pattern.
// A malformed expression yields a *PatternError.
func CompilePattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Expr: expr, Err: err}
	}
	return &Pattern{re: re, expr: expr}, nil
}

// Clone returns a copy of p for use by another task.
// The compiled program is shared, nothing is recompiled.
func (p *Pattern) Clone() *Pattern {
	return &Pattern{re: p.re, expr: p.expr}
}

// FindFirst locates the leftmost match of p inside line.
// Later matches on the same line are ignored.
func (p *Pattern) FindFirst(line []byte) (Range, bool) {
	loc := p.re.FindIndex(line)
	if loc == nil {
		return Range{}, false
	}
	return Range{Start: loc[0], End: loc[1]}, true
}

func (p *Pattern) String() string { return p.expr }
