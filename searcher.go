package globgrep

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// maxLineSize bounds a single scanned line. A file with a longer line
// is reported as a read error and skipped.
const maxLineSize = 1024 * 1024

// ScanSearcher greps line by line, keeping only the formatted matches
// in memory. The reader stays busy for the whole scan, so this variant
// suits the worker pool mode where each worker owns its file.
type ScanSearcher struct {
	Formatter *Formatter
}

func (s *ScanSearcher) Search(path string, r io.Reader, pat *Pattern, w io.Writer) (int, error) {
	f := s.Formatter
	if f == nil {
		f = DefaultFormatter()
	}

	var matches []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineno := 0
	for sc.Scan() {
		lineno++
		m, ok := pat.FindFirst(sc.Bytes())
		if !ok {
			continue
		}
		matches = append(matches, f.FormatLine(sc.Text(), lineno, m))
	}
	if err := sc.Err(); err != nil {
		return 0, &FileError{Path: path, Op: "read", Err: err}
	}
	if len(matches) == 0 {
		return 0, nil
	}

	block := f.FormatPath(path) + "\n" + strings.Join(matches, "\n") + "\n"
	if _, err := io.WriteString(w, block); err != nil {
		return 0, &FileError{Path: path, Op: "write", Err: err}
	}
	return len(matches), nil
}

// BatchSearcher slurps the whole reader up front and hands the finished
// block to w as a single write. Suits the bounded mode, where blocks are
// collected on one goroutine and a task should not sit on its reader
// longer than the read itself takes.
type BatchSearcher struct {
	Formatter *Formatter
}

func (s *BatchSearcher) Search(path string, r io.Reader, pat *Pattern, w io.Writer) (int, error) {
	f := s.Formatter
	if f == nil {
		f = DefaultFormatter()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, &FileError{Path: path, Op: "read", Err: err}
	}

	var buf bytes.Buffer
	n := 0
	lineno := 0
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line = data[:i]
			data = data[i+1:]
		} else {
			data = nil
		}
		line = bytes.TrimSuffix(line, []byte("\r"))
		lineno++
		m, ok := pat.FindFirst(line)
		if !ok {
			continue
		}
		if n == 0 {
			buf.WriteString(f.FormatPath(path))
			buf.WriteByte('\n')
		}
		buf.WriteString(f.FormatLine(string(line), lineno, m))
		buf.WriteByte('\n')
		n++
	}
	if n == 0 {
		return 0, nil
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return 0, &FileError{Path: path, Op: "write", Err: err}
	}
	return n, nil
}
