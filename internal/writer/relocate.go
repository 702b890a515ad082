package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// tempMoveDir is the intermediate name used when a package directory has to
// move into (or out of) its own subtree.
const tempMoveDir = "__package_tmp_move"

// RelocatePackage moves the directory oldPath to newPath, both under
// sourceRoot, then removes directories left empty above oldPath.
//
// A directory can't be renamed into its own descendant (dev/hytalemodding →
// dev/hytalemodding/foo) nor onto its non-empty ancestor (dev/hytalemodding
// → dev), so those moves go through sourceRoot/__package_tmp_move first.
func RelocatePackage(sourceRoot, oldPath, newPath string) error {
	sourceRoot = filepath.Clean(sourceRoot)
	oldPath = filepath.Clean(oldPath)
	newPath = filepath.Clean(newPath)

	if oldPath == newPath {
		return nil
	}
	if !isWithin(oldPath, sourceRoot) || !isWithin(newPath, sourceRoot) {
		return fmt.Errorf("package paths must be inside %s", sourceRoot)
	}
	if _, err := os.Stat(oldPath); err != nil {
		return fmt.Errorf("template package directory not found: %w", err)
	}

	if isWithin(newPath, oldPath) || isWithin(oldPath, newPath) {
		tmp := filepath.Join(sourceRoot, tempMoveDir)
		if err := os.RemoveAll(tmp); err != nil {
			return fmt.Errorf("clearing %s: %w", tmp, err)
		}
		if err := os.Rename(oldPath, tmp); err != nil {
			return fmt.Errorf("moving %s aside: %w", oldPath, err)
		}
		cleanupEmptyParents(oldPath, sourceRoot)
		if err := os.MkdirAll(filepath.Dir(newPath), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(newPath), err)
		}
		if err := os.Rename(tmp, newPath); err != nil {
			return fmt.Errorf("moving package to %s: %w", newPath, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(newPath), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(newPath), err)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("moving package to %s: %w", newPath, err)
	}
	cleanupEmptyParents(oldPath, sourceRoot)
	return nil
}

// cleanupEmptyParents removes empty directories walking up from the parent
// of fromPath. It stops at the first non-empty directory and never removes
// stopAt itself. Errors end the walk silently.
func cleanupEmptyParents(fromPath, stopAt string) {
	stop := filepath.Clean(stopAt)
	current := filepath.Dir(filepath.Clean(fromPath))

	for current != stop && isWithin(current, stop) {
		entries, err := os.ReadDir(current)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(current); err != nil {
			return
		}
		current = filepath.Dir(current)
	}
}

// isWithin reports whether path is strictly inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
