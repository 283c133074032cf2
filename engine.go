package globgrep

import (
	"bytes"
	"errors"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
)

// Engine runs a compiled pattern over a candidate list.
//
// Output receives one block per matched file; every block lands as a
// single write, so blocks from different files never interleave.
// OnFile is called once per processed candidate, OnError once per
// failed one; a nil OnError drops the failures silently. In the
// parallel mode both callbacks may fire concurrently.
type Engine struct {
	Pattern  *Pattern
	Searcher Searcher // nil selects the mode's default
	Output   io.Writer

	Workers int // parallel pool size, defaults to the CPU count
	MaxOpen int // bounded mode in-flight ceiling, defaults to DefaultMaxOpen

	OnFile  func(path string)
	OnError func(path string, err error)
}

// RunParallel greps files with a fixed pool of workers draining a
// shared queue. Each worker owns a clone of the pattern and streams
// its file with the scanning searcher. Files finish in no particular
// order. The returned count is the total number of matched lines.
func (e *Engine) RunParallel(files []Candidate) (int, error) {
	if err := e.check(); err != nil {
		return 0, err
	}
	searcher := e.Searcher
	if searcher == nil {
		searcher = &ScanSearcher{}
	}
	workers := e.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	out := NewSerialWriter(e.Output)
	queue := make(chan Candidate)
	var total int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			pat := e.Pattern.Clone()
			for c := range queue {
				n, err := e.searchFile(searcher, pat, c, out)
				if err != nil {
					e.reportError(c.Path, err)
				} else {
					atomic.AddInt64(&total, int64(n))
				}
				if e.OnFile != nil {
					e.OnFile(c.Path)
				}
			}
		}()
	}

	for _, c := range files {
		queue <- c
	}
	close(queue)
	wg.Wait()
	return int(atomic.LoadInt64(&total)), nil
}

type fileBlock struct {
	path    string
	data    []byte
	matches int
	err     error
}

// RunBounded greps files with one short-lived task per candidate,
// admitting at most MaxOpen of them at a time. Each task slurps its
// file into a private buffer; the caller's goroutine collects the
// finished blocks and performs every write to Output itself, one block
// per file. Only the ceiling is guaranteed, not the admission order.
func (e *Engine) RunBounded(files []Candidate) (int, error) {
	if err := e.check(); err != nil {
		return 0, err
	}
	searcher := e.Searcher
	if searcher == nil {
		searcher = &BatchSearcher{}
	}
	maxOpen := e.MaxOpen
	if maxOpen < 1 {
		maxOpen = DefaultMaxOpen
	}

	results := make(chan fileBlock)
	sem := make(chan struct{}, maxOpen)
	var wg sync.WaitGroup

	go func() {
		for _, c := range files {
			sem <- struct{}{}
			wg.Add(1)
			go func(c Candidate) {
				defer wg.Done()
				defer func() { <-sem }()
				var buf bytes.Buffer
				n, err := e.searchFile(searcher, e.Pattern.Clone(), c, &buf)
				results <- fileBlock{path: c.Path, data: buf.Bytes(), matches: n, err: err}
			}(c)
		}
		wg.Wait()
		close(results)
	}()

	total := 0
	for res := range results {
		if res.err != nil {
			e.reportError(res.path, res.err)
		} else {
			total += res.matches
			if len(res.data) != 0 {
				if _, err := e.Output.Write(res.data); err != nil {
					e.reportError(res.path, &FileError{Path: res.path, Op: "write", Err: err})
				}
			}
		}
		if e.OnFile != nil {
			e.OnFile(res.path)
		}
	}
	return total, nil
}

func (e *Engine) searchFile(s Searcher, pat *Pattern, c Candidate, w io.Writer) (int, error) {
	if c.Err != nil {
		return 0, c.Err
	}
	f, err := os.Open(c.Path)
	if err != nil {
		return 0, &FileError{Path: c.Path, Op: "open", Err: err}
	}
	defer f.Close()
	return s.Search(c.Path, f, pat, w)
}

func (e *Engine) reportError(path string, err error) {
	if e.OnError != nil {
		e.OnError(path, err)
	}
}

func (e *Engine) check() error {
	if e.Pattern == nil {
		return errors.New("run: pattern can't be nil")
	}
	if e.Output == nil {
		return errors.New("run: output can't be nil")
	}
	return nil
}

// SerialWriter makes an io.Writer safe for concurrent block writes:
// each Write lands whole, writes from different goroutines never
// interleave.
type SerialWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSerialWriter wraps w. An already wrapped writer is returned as is.
func NewSerialWriter(w io.Writer) *SerialWriter {
	if sw, ok := w.(*SerialWriter); ok {
		return sw
	}
	return &SerialWriter{w: w}
}

func (sw *SerialWriter) Write(p []byte) (int, error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.w.Write(p)
}
