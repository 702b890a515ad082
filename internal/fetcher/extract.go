package fetcher

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	modErrors "github.com/hytalemodding/modinit/internal/errors"
)

// ErrUnsafeEntry is returned for archive entries whose path is absolute or
// escapes the destination directory.
var ErrUnsafeEntry = errors.New("archive entry escapes destination directory")

// Extract unpacks every entry of the zip at archivePath into destDir,
// creating intermediate directories. Entries ending in "/" only create a
// directory. Any entry that would resolve outside destDir aborts extraction.
func Extract(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if errors.Is(err, zip.ErrInsecurePath) {
		r.Close()
		return modErrors.Mark(modErrors.ErrArchive, fmt.Errorf("%w: %v", ErrUnsafeEntry, err))
	}
	if err != nil {
		return modErrors.Mark(modErrors.ErrArchive, fmt.Errorf("opening zip archive: %w", err))
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return modErrors.Mark(modErrors.ErrArchive, fmt.Errorf("creating extraction directory: %w", err))
	}

	for _, f := range r.File {
		target, err := entryPath(destDir, f.Name)
		if err != nil {
			return modErrors.Mark(modErrors.ErrArchive, err)
		}

		if strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return modErrors.Mark(modErrors.ErrArchive, fmt.Errorf("creating directory %s: %w", target, err))
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return modErrors.Mark(modErrors.ErrArchive, err)
		}
	}
	return nil
}

// entryPath maps an archive entry name to a path under destDir, rejecting
// absolute names and names with parent-directory segments that escape it.
func entryPath(destDir, name string) (string, error) {
	clean := filepath.FromSlash(name)
	if filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafeEntry)
	}

	target := filepath.Join(destDir, clean)
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafeEntry)
	}
	return target, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("opening zip entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	mode := f.Mode().Perm() | 0644
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}
	return out.Close()
}

// Extract unpacks archivePath into destDir. It lets a Fetcher serve as the
// single download-and-unpack dependency of the initializer.
func (f *Fetcher) Extract(archivePath, destDir string) error {
	f.logger.Debug("extracting template", "archive", archivePath, "dest", destDir)
	return Extract(archivePath, destDir)
}
