package export

import (
	"archive/tar"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatch/internal/palette"
)

// Bundle writes a .tar.xz archive to w holding p rendered in every format
// given. With no formats, every supported format is included.
func Bundle(w io.Writer, p *palette.Palette, formats ...Format) error {
	if len(formats) == 0 {
		formats = AllFormats()
	}

	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}

	tw := tar.NewWriter(xzw)
	modTime := time.Now().UTC().Truncate(time.Second)
	seen := make(map[string]bool, len(formats))

	for _, f := range formats {
		file, err := Export(p, f)
		if err != nil {
			return fmt.Errorf("failed to export %s: %w", f, err)
		}

		// hex, rgb and hsl share a .txt extension.
		name := file.Name
		if seen[name] {
			name = string(f) + "-" + name
		}
		seen[name] = true

		header := &tar.Header{
			Name:    name,
			Mode:    0o644,
			Size:    int64(len(file.Content)),
			ModTime: modTime,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", name, err)
		}
		if _, err := tw.Write(file.Content); err != nil {
			return fmt.Errorf("failed to write %s to archive: %w", name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to close tar writer: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to close xz writer: %w", err)
	}
	return nil
}

// BundleName returns the archive file name for p.
func BundleName(p *palette.Palette) string {
	return SanitizeFilename(p.Name) + ".tar.xz"
}
