package fetcher

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"

	modErrors "github.com/hytalemodding/modinit/internal/errors"
)

// DefaultRef is the branch fetched when no ref is configured.
const DefaultRef = "main"

// Source identifies a template archive and the directory it unpacks into.
type Source struct {
	URL     string // archive download URL
	RootDir string // top-level directory inside the archive; may be empty
}

// ResolveSource builds the archive URL for a repository and ref. A ref that
// parses as a semantic version selects the tag "v<version>"; anything else is
// treated as a branch name.
//
//	ResolveSource("https://github.com/o/plugin-template", "main")
//	  → .../archive/refs/heads/main.zip, root "plugin-template-main"
//	ResolveSource("https://github.com/o/plugin-template", "1.2.0")
//	  → .../archive/refs/tags/v1.2.0.zip, root "plugin-template-1.2.0"
func ResolveSource(repoURL, ref string) (Source, error) {
	repoURL = strings.TrimSuffix(strings.TrimRight(repoURL, "/"), ".git")
	if repoURL == "" {
		return Source{}, fmt.Errorf("template repository URL is empty")
	}
	if ref == "" {
		ref = DefaultRef
	}
	repoName := path.Base(repoURL)

	if v, err := semver.NewVersion(strings.TrimPrefix(ref, "v")); err == nil && looksLikeVersion(ref) {
		return Source{
			URL:     fmt.Sprintf("%s/archive/refs/tags/v%s.zip", repoURL, v.String()),
			RootDir: fmt.Sprintf("%s-%s", repoName, v.String()),
		}, nil
	}

	return Source{
		URL:     fmt.Sprintf("%s/archive/refs/heads/%s.zip", repoURL, ref),
		RootDir: fmt.Sprintf("%s-%s", repoName, strings.ReplaceAll(ref, "/", "-")),
	}, nil
}

// looksLikeVersion keeps branch names such as "2024" or "dev" from being
// read as versions; semver's lenient parser accepts bare integers.
func looksLikeVersion(ref string) bool {
	return strings.Contains(strings.TrimPrefix(ref, "v"), ".")
}

// TemplateRoot locates the unpacked template inside extractedDir: the
// source's RootDir when present, otherwise the only top-level directory.
func TemplateRoot(extractedDir string, src Source) (string, error) {
	if src.RootDir != "" {
		candidate := filepath.Join(extractedDir, src.RootDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
	}

	entries, err := os.ReadDir(extractedDir)
	if err != nil {
		return "", modErrors.Mark(modErrors.ErrArchive, fmt.Errorf("reading extracted template: %w", err))
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	if len(dirs) != 1 {
		return "", modErrors.Wrap(modErrors.ErrArchive,
			fmt.Sprintf("expected one top-level directory in template archive, found %d", len(dirs)))
	}
	return filepath.Join(extractedDir, dirs[0]), nil
}
