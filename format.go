package globgrep

import (
	"fmt"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Formatter renders file headers and matched lines.
type Formatter struct {
	Path   *color.Color
	LineNo *color.Color
	Column *color.Color
	Match  *color.Color
}

// DefaultFormatter returns the standard style set: green paths,
// blue line numbers, cyan columns, red matches.
func DefaultFormatter() *Formatter {
	return &Formatter{
		Path:   color.New(color.FgGreen),
		LineNo: color.New(color.FgBlue),
		Column: color.New(color.FgCyan),
		Match:  color.New(color.FgRed),
	}
}

// FormatLine renders one matched line: a right-aligned line number, a
// colon, a left-aligned 1-based column, a space, then the line itself
// with the matched span styled. The column counts the characters before
// the match, not its byte offset.
// The caller guarantees that m lies within line.
func (f *Formatter) FormatLine(line string, lineno int, m Range) string {
	prefix := line[:m.Start]
	matched := line[m.Start:m.End]
	suffix := line[m.End:]
	col := utf8.RuneCountInString(prefix) + 1
	return fmt.Sprintf("%s:%s %s%s%s",
		f.LineNo.Sprintf("%6d", lineno),
		f.Column.Sprintf("%-3d", col),
		prefix,
		f.Match.Sprint(matched),
		suffix)
}

// FormatPath renders the header that precedes a file's match block.
func (f *Formatter) FormatPath(path string) string {
	return f.Path.Sprint(path)
}
