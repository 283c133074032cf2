package globgrep

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/globgrep/globgrep"
)

type program struct {
	args arguments

	out io.Writer

	pat     *globgrep.Pattern
	files   []globgrep.Candidate
	matches int
}

func (p *program) run() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"validate flags", p.validateFlags},
		{"compile pattern", p.compilePattern},
		{"expand glob", p.expandGlob},
		{"execute search", p.executeSearch},
		{"print summary", p.printSummary},
	}

	for _, step := range steps {
		if p.args.verbose {
			log.Printf("debug: starting %q step", step.name)
		}
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %v", step.name, err)
		}
	}
	return nil
}

func (p *program) validateFlags() error {
	if p.args.workers < 1 {
		return fmt.Errorf("workers value can't be less than 1")
	}
	if p.args.workers > 512 {
		// Users won't notice.
		p.args.workers = 512
	}
	if p.args.maxOpen < 1 {
		return fmt.Errorf("max-open value can't be less than 1")
	}
	if p.args.pattern == "" {
		return fmt.Errorf("pattern can't be empty")
	}
	if p.args.glob == "" {
		return fmt.Errorf("glob can't be empty")
	}
	for flagName, colorName := range map[string]string{
		"color-path":   p.args.pathColor,
		"color-line":   p.args.lineColor,
		"color-column": p.args.columnColor,
		"color-match":  p.args.matchColor,
	} {
		if _, err := colorByName(colorName); err != nil {
			return fmt.Errorf("%s: %v", flagName, err)
		}
	}
	return nil
}

func (p *program) compilePattern() error {
	pat, err := globgrep.CompilePattern(p.args.pattern)
	if err != nil {
		return err
	}
	p.pat = pat
	return nil
}

func (p *program) expandGlob() error {
	files, err := globgrep.ExpandGlob(p.args.glob)
	if err != nil {
		return err
	}
	p.files = files
	if p.args.verbose {
		log.Printf("debug: glob matched %d candidate files", len(files))
	}
	return nil
}

func (p *program) executeSearch() error {
	eng := &globgrep.Engine{
		Pattern: p.pat,
		Output:  p.out,
		Workers: p.args.workers,
		MaxOpen: p.args.maxOpen,
		OnError: func(_ string, err error) {
			log.Printf("error: %v", err)
		},
	}

	var bar *progressbar.ProgressBar
	if p.args.progress && len(p.files) > 0 {
		bar = newProgressBar(len(p.files))
		eng.OnFile = func(string) { bar.Add(1) }
	} else if p.args.verbose {
		eng.OnFile = func(path string) { log.Printf("debug: processed %q file", path) }
	}

	formatter := p.buildFormatter()
	var n int
	var err error
	if p.args.parallel {
		eng.Searcher = &globgrep.ScanSearcher{Formatter: formatter}
		n, err = eng.RunParallel(p.files)
	} else {
		eng.Searcher = &globgrep.BatchSearcher{Formatter: formatter}
		n, err = eng.RunBounded(p.files)
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	p.matches = n
	return nil
}

func (p *program) printSummary() error {
	if p.args.verbose {
		log.Printf("found %d matching lines", p.matches)
	}
	return nil
}

// buildFormatter resolves the configured color names. The names were
// checked during flag validation, so resolution can't fail here.
func (p *program) buildFormatter() *globgrep.Formatter {
	if p.args.noColor || os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &globgrep.Formatter{
		Path:   mustColorByName(p.args.pathColor),
		LineNo: mustColorByName(p.args.lineColor),
		Column: mustColorByName(p.args.columnColor),
		Match:  mustColorByName(p.args.matchColor),
	}
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("searching"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
