package security

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateArchivePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain file", "sunset.json", false},
		{"nested file", "themes/sunset.css", false},
		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"nested traversal", "a/../../b", true},
		{"absolute", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArchivePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArchivePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestSafeUint8(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{-5, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := SafeUint8(tt.in); got != tt.want {
			t.Errorf("SafeUint8(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLimitedReader(t *testing.T) {
	t.Run("WithinLimit", func(t *testing.T) {
		data, err := io.ReadAll(NewLimitedReader(strings.NewReader("hello"), 10))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("ExactlyAtLimit", func(t *testing.T) {
		data, err := io.ReadAll(NewLimitedReader(strings.NewReader("hello"), 5))
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("OverLimit", func(t *testing.T) {
		_, err := io.ReadAll(NewLimitedReader(strings.NewReader("hello world"), 5))
		assert.ErrorIs(t, err, ErrSizeLimit)
	})
}
