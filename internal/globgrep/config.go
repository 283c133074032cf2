package globgrep

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix names the environment namespace: GLOBGREP_WORKERS,
// GLOBGREP_COLOR_MATCH and so on.
const envPrefix = "GLOBGREP"

// newViper merges the three setting sources. Flags that were set on the
// command line win over environment variables, which win over the flag
// defaults.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}
	return v, nil
}

func argsFromViper(v *viper.Viper) arguments {
	return arguments{
		parallel:    v.GetBool("parallel"),
		workers:     v.GetInt("workers"),
		maxOpen:     v.GetInt("max-open"),
		verbose:     v.GetBool("verbose"),
		noColor:     v.GetBool("no-color"),
		progress:    v.GetBool("progress"),
		pathColor:   v.GetString("color-path"),
		lineColor:   v.GetString("color-line"),
		columnColor: v.GetString("color-column"),
		matchColor:  v.GetString("color-match"),
	}
}

var colorNames = map[string]color.Attribute{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,

	"hi-red":     color.FgHiRed,
	"hi-green":   color.FgHiGreen,
	"hi-yellow":  color.FgHiYellow,
	"hi-blue":    color.FgHiBlue,
	"hi-magenta": color.FgHiMagenta,
	"hi-cyan":    color.FgHiCyan,
	"hi-white":   color.FgHiWhite,
}

func colorByName(name string) (*color.Color, error) {
	attr, ok := colorNames[name]
	if !ok {
		return nil, fmt.Errorf("unsupported color: %s", name)
	}
	return color.New(attr), nil
}

func mustColorByName(name string) *color.Color {
	c, err := colorByName(name)
	if err != nil {
		panic(err)
	}
	return c
}
