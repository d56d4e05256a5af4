// Package compression reads single files back out of palette bundles
// (.tar.xz, .tar.gz, .zip) and standalone .xz or .gz files.
package compression

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatch/internal/security"
)

// MaxFileSize bounds the decompressed size of any file read from an archive.
const MaxFileSize = 16 * 1024 * 1024

// ErrNotFound is returned when no archive entry matches.
var ErrNotFound = errors.New("file not found in archive")

// Kind identifies a container format.
type Kind int

const (
	KindNone Kind = iota
	KindTarXz
	KindTarGz
	KindZip
	KindXz
	KindGz
)

// String returns the usual file extension for the kind.
func (k Kind) String() string {
	switch k {
	case KindTarXz:
		return ".tar.xz"
	case KindTarGz:
		return ".tar.gz"
	case KindZip:
		return ".zip"
	case KindXz:
		return ".xz"
	case KindGz:
		return ".gz"
	default:
		return ""
	}
}

// DetectKind picks the container format from a file name.
func DetectKind(filename string) Kind {
	name := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(name, ".tar.xz"), strings.HasSuffix(name, ".txz"):
		return KindTarXz
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return KindTarGz
	case strings.HasSuffix(name, ".zip"):
		return KindZip
	case strings.HasSuffix(name, ".xz"):
		return KindXz
	case strings.HasSuffix(name, ".gz"):
		return KindGz
	default:
		return KindNone
	}
}

// Entry is one file read from an archive.
type Entry struct {
	Name    string
	Content []byte
}

// FindFile returns the first entry in data whose name satisfies match.
// filename selects the container format; a plain file is returned as is
// when its own name matches. For .xz and .gz files the entry name is
// filename with the compression suffix removed.
func FindFile(data []byte, filename string, match func(name string) bool) (*Entry, error) {
	kind := DetectKind(filename)
	switch kind {
	case KindTarXz:
		r, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return findInTar(r, match)
	case KindTarGz:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer r.Close()
		return findInTar(r, match)
	case KindZip:
		return findInZip(data, match)
	case KindXz, KindGz:
		name := path.Base(filename[:len(filename)-len(kind.String())])
		if !match(name) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		content, err := decompress(data, kind)
		if err != nil {
			return nil, err
		}
		return &Entry{Name: name, Content: content}, nil
	default:
		name := path.Base(filename)
		if !match(name) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		if len(data) > MaxFileSize {
			return nil, security.ErrSizeLimit
		}
		return &Entry{Name: name, Content: data}, nil
	}
}

func findInTar(r io.Reader, match func(string) bool) (*Entry, error) {
	tr := tar.NewReader(r)
	var found []string

	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w (found: %v)", ErrNotFound, found)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := security.ValidateArchivePath(header.Name); err != nil {
			return nil, err
		}

		found = append(found, header.Name)
		if !match(header.Name) {
			continue
		}

		content, err := io.ReadAll(security.NewLimitedReader(tr, MaxFileSize))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Name, err)
		}
		return &Entry{Name: header.Name, Content: content}, nil
	}
}

func findInZip(data []byte, match func(string) bool) (*Entry, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to create zip reader: %w", err)
	}

	var found []string
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if err := security.ValidateArchivePath(f.Name); err != nil {
			return nil, err
		}

		found = append(found, f.Name)
		if !match(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
		}
		content, readErr := io.ReadAll(security.NewLimitedReader(rc, MaxFileSize))
		closeErr := rc.Close()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.Name, readErr)
		}
		if closeErr != nil {
			return nil, fmt.Errorf("failed to close %s: %w", f.Name, closeErr)
		}
		return &Entry{Name: f.Name, Content: content}, nil
	}
	return nil, fmt.Errorf("%w (found: %v)", ErrNotFound, found)
}

// decompress expands a standalone .xz or .gz stream.
func decompress(data []byte, kind Kind) ([]byte, error) {
	var r io.Reader
	switch kind {
	case KindXz:
		xzr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		r = xzr
	case KindGz:
		gzr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzr.Close()
		r = gzr
	default:
		return nil, fmt.Errorf("unsupported compression %q", kind)
	}

	content, err := io.ReadAll(security.NewLimitedReader(r, MaxFileSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return content, nil
}

// HasSuffix returns a matcher for entries whose base name ends in suffix.
func HasSuffix(suffix string) func(string) bool {
	return func(name string) bool {
		return strings.HasSuffix(strings.ToLower(path.Base(name)), strings.ToLower(suffix))
	}
}
