package globgrep

import (
	"log"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/globgrep/globgrep"
)

const (
	exitOK    = 0
	exitError = 2
)

// Version is injected at build time via -ldflags.
var Version = "dev"

type arguments struct {
	pattern string
	glob    string

	parallel bool
	workers  int
	maxOpen  int

	verbose  bool
	noColor  bool
	progress bool

	pathColor   string
	lineColor   string
	columnColor string
	matchColor  string
}

func Main() (int, error) {
	log.SetFlags(0)

	if err := NewRootCommand().Execute(); err != nil {
		return exitError, err
	}
	return exitOK, nil
}

// NewRootCommand builds the globgrep command.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "globgrep [flags] pattern glob",
		Short: "Search files matching a glob for lines matching a regexp",
		Long: `Search files matching a glob pattern for lines matching a regular expression.

Matched lines are grouped by file: a path header followed by one line per
match, carrying the line number and the 1-based column of the first match
on that line. Files without matches print nothing.

Examples:
  # Find TODO markers in every Go file of the tree.
  globgrep 'TODO' '**.go'

  # Search a single file.
  globgrep 'fn [a-z_]+' src/main.rs

  # Use the worker pool mode with 4 workers.
  globgrep --parallel -j4 'needle' 'testdata/*.txt'

The default mode reads whole files with a bounded number of them in
flight; --parallel switches to a line-streaming worker pool.

The output colors can be configured with the "--color-<name>" flags.
Use --no-color to disable the output coloring.

Every flag is also read from a GLOBGREP_* environment variable
(GLOBGREP_WORKERS, GLOBGREP_COLOR_MATCH, ...); command-line flags win.

Exit status:
  0 if the search completed, even when nothing matched
  2 if an error occurred`,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			v, err := newViper(cmd.Flags())
			if err != nil {
				return err
			}
			args := argsFromViper(v)
			args.pattern = argv[0]
			args.glob = argv[1]

			if args.verbose {
				log.Printf("debug: pattern: %s", args.pattern)
				log.Printf("debug: glob: %s", args.glob)
			}

			p := &program{args: args, out: cmd.OutOrStdout()}
			return p.run()
		},
	}

	flags := cmd.Flags()
	flags.BoolP("verbose", "v", false,
		`verbose mode: turn on additional debug logging`)
	flags.Bool("parallel", false,
		`grep with a worker pool instead of the bounded concurrent mode`)
	flags.IntP("workers", "j", runtime.NumCPU(),
		`set the number of concurrent workers for --parallel`)
	flags.Int("max-open", globgrep.DefaultMaxOpen,
		`set the max number of files in flight in the bounded mode`)
	flags.Bool("no-color", false,
		`disable the colored output`)
	flags.Bool("progress", false,
		`show a progress bar on stderr`)
	flags.String("color-path", "green",
		`file path text color`)
	flags.String("color-line", "blue",
		`line number text color`)
	flags.String("color-column", "cyan",
		`column number text color`)
	flags.String("color-match", "red",
		`matched text color`)

	return cmd
}
