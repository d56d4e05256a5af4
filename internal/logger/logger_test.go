package logger

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want hclog.Level
	}{
		{name: "default", opts: Options{}, want: hclog.Info},
		{name: "verbose", opts: Options{Verbose: true}, want: hclog.Debug},
		{name: "quiet", opts: Options{Quiet: true}, want: hclog.Error},
		{name: "quiet wins", opts: Options{Verbose: true, Quiet: true}, want: hclog.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Level())
		})
	}
}

func TestNewWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Verbose: true, Output: &buf})

	log.Debug("generating palette", "type", "triadic", "count", 3)

	out := buf.String()
	assert.Contains(t, out, "swatch: generating palette")
	assert.Contains(t, out, "type=triadic")
	assert.Contains(t, out, "count=3")
}

func TestQuietSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Quiet: true, Output: &buf})

	log.Info("hidden")
	log.Error("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().IsError())
}
