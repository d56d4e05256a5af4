// Package logger configures the hclog logger shared by swatch commands.
package logger

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Options selects the logger's verbosity and destination.
type Options struct {
	Verbose bool
	Quiet   bool
	Color   bool
	Output  io.Writer
}

// Level maps the verbosity flags to an hclog level. Quiet wins over verbose.
func (o Options) Level() hclog.Level {
	switch {
	case o.Quiet:
		return hclog.Error
	case o.Verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}

// New creates a logger named "swatch" writing to stderr unless Output is set.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	colorOpt := hclog.ColorOff
	if opts.Color {
		colorOpt = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "swatch",
		Output:     out,
		Level:      opts.Level(),
		Color:      colorOpt,
		TimeFormat: "15:04:05",
	})
}

// Discard returns a logger that drops everything.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}
