// Package security guards reads of user-supplied archives and images.
package security

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrSizeLimit is returned once a LimitedReader has used up its budget.
var ErrSizeLimit = errors.New("decompression size limit exceeded")

// ValidateArchivePath rejects archive entry names that are empty, absolute
// or contain directory traversal.
func ValidateArchivePath(name string) error {
	if name == "" {
		return fmt.Errorf("empty file path")
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("file path contains directory traversal (..) - not allowed: %s", name)
	}
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return fmt.Errorf("absolute paths in archives are not allowed: %s", name)
	}
	return nil
}

// SafeUint8 clamps val into 0-255.
func SafeUint8(val int) uint8 {
	if val < 0 {
		return 0
	}
	if val > 255 {
		return 255
	}
	return uint8(val)
}

// LimitedReader wraps an io.Reader and fails once more than Remaining bytes
// have been read.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Read one byte past the limit so exact-size inputs still end cleanly.
		var extra [1]byte
		if n, err := l.R.Read(extra[:]); n == 0 && err != nil {
			return 0, err
		}
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
