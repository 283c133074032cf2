package globgrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViperPrecedence(t *testing.T) {
	t.Setenv("GLOBGREP_WORKERS", "3")
	t.Setenv("GLOBGREP_MAX_OPEN", "16")
	t.Setenv("GLOBGREP_COLOR_MATCH", "magenta")

	cmd := NewRootCommand()
	v, err := newViper(cmd.Flags())
	require.NoError(t, err)

	args := argsFromViper(v)
	assert.Equal(t, 3, args.workers, "environment beats the flag default")
	assert.Equal(t, 16, args.maxOpen)
	assert.Equal(t, "magenta", args.matchColor)
	assert.Equal(t, "blue", args.lineColor, "untouched settings keep their defaults")
	assert.False(t, args.parallel)

	require.NoError(t, cmd.Flags().Set("workers", "5"))
	v, err = newViper(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, 5, argsFromViper(v).workers, "a flag set on the command line beats the environment")
}

func TestEnvColorValidation(t *testing.T) {
	t.Setenv("GLOBGREP_COLOR_MATCH", "sparkly")

	_, err := runCommand(t, "x", "*.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported color: sparkly")
}

func TestColorByName(t *testing.T) {
	for _, name := range []string{"red", "green", "blue", "cyan", "hi-magenta", "white"} {
		c, err := colorByName(name)
		require.NoError(t, err, "color %q", name)
		require.NotNil(t, c)
	}

	_, err := colorByName("sparkly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported color")
}

func TestValidateFlags(t *testing.T) {
	valid := arguments{
		pattern:     "x",
		glob:        "*.txt",
		workers:     4,
		maxOpen:     8,
		pathColor:   "green",
		lineColor:   "blue",
		columnColor: "cyan",
		matchColor:  "red",
	}

	tests := []struct {
		name   string
		mutate func(*arguments)
		errHas string
	}{
		{"all valid", func(a *arguments) {}, ""},
		{"zero workers", func(a *arguments) { a.workers = 0 }, "workers"},
		{"zero max-open", func(a *arguments) { a.maxOpen = 0 }, "max-open"},
		{"empty pattern", func(a *arguments) { a.pattern = "" }, "pattern can't be empty"},
		{"empty glob", func(a *arguments) { a.glob = "" }, "glob can't be empty"},
		{"unknown color", func(a *arguments) { a.columnColor = "sparkly" }, "unsupported color"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := valid
			test.mutate(&args)
			p := &program{args: args}
			err := p.validateFlags()
			if test.errHas == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), test.errHas)
			}
		})
	}
}

func TestValidateFlagsCapsWorkers(t *testing.T) {
	p := &program{args: arguments{
		pattern:     "x",
		glob:        "*",
		workers:     100000,
		maxOpen:     8,
		pathColor:   "green",
		lineColor:   "blue",
		columnColor: "cyan",
		matchColor:  "red",
	}}

	require.NoError(t, p.validateFlags())
	assert.Equal(t, 512, p.args.workers)
}
