package writer

import (
	"os"
	"path/filepath"
	"testing"
)

// seedPackage creates root/dev/hytalemodding with a class and a subpackage.
func seedPackage(t *testing.T) (root, oldPkg string) {
	t.Helper()
	root = filepath.Join(t.TempDir(), "java")
	oldPkg = filepath.Join(root, "dev", "hytalemodding")
	mustWrite(t, filepath.Join(oldPkg, "ExamplePlugin.java"), "plugin")
	mustWrite(t, filepath.Join(oldPkg, "commands", "ExampleCommand.java"), "command")
	return root, oldPkg
}

func TestRelocatePackage(t *testing.T) {
	tests := []struct {
		name     string
		newPkg   []string
		gone     []string // relative to root
		wantKeep []string // relative to root, must still exist
	}{
		{
			name:   "sibling namespace",
			newPkg: []string{"dev", "example", "coolmod"},
			gone:   []string{filepath.Join("dev", "hytalemodding")},
		},
		{
			name:   "unrelated namespace",
			newPkg: []string{"org", "acme", "mod"},
			gone:   []string{"dev"},
		},
		{
			name:   "descendant of template package",
			newPkg: []string{"dev", "hytalemodding", "foo"},
			gone:   []string{tempMoveDir, filepath.Join("dev", "hytalemodding", "ExamplePlugin.java")},
		},
		{
			name:   "ancestor of template package",
			newPkg: []string{"dev"},
			gone:   []string{tempMoveDir, "hytalemodding", filepath.Join("dev", "hytalemodding")},
		},
		{
			name:   "unchanged",
			newPkg: []string{"dev", "hytalemodding"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, oldPkg := seedPackage(t)
			newPkg := filepath.Join(append([]string{root}, tt.newPkg...)...)

			if err := RelocatePackage(root, oldPkg, newPkg); err != nil {
				t.Fatalf("RelocatePackage error: %v", err)
			}

			if got := readFile(t, filepath.Join(newPkg, "ExamplePlugin.java")); got != "plugin" {
				t.Errorf("ExamplePlugin.java = %q", got)
			}
			if got := readFile(t, filepath.Join(newPkg, "commands", "ExampleCommand.java")); got != "command" {
				t.Errorf("commands/ExampleCommand.java = %q", got)
			}
			for _, rel := range tt.gone {
				assertNotExists(t, filepath.Join(root, rel))
			}
			if _, err := os.Stat(root); err != nil {
				t.Errorf("source root must survive: %v", err)
			}
		})
	}
}

func TestRelocatePackage_KeepsNonEmptyParents(t *testing.T) {
	root, oldPkg := seedPackage(t)
	mustWrite(t, filepath.Join(root, "dev", "other", "Keep.java"), "keep")

	newPkg := filepath.Join(root, "org", "acme")
	if err := RelocatePackage(root, oldPkg, newPkg); err != nil {
		t.Fatalf("RelocatePackage error: %v", err)
	}
	if got := readFile(t, filepath.Join(root, "dev", "other", "Keep.java")); got != "keep" {
		t.Errorf("unrelated package was disturbed: %q", got)
	}
	assertNotExists(t, oldPkg)
}

func TestRelocatePackage_Errors(t *testing.T) {
	root, oldPkg := seedPackage(t)

	if err := RelocatePackage(root, filepath.Join(root, "missing"), filepath.Join(root, "x")); err == nil {
		t.Error("expected error for missing template package")
	}
	if err := RelocatePackage(root, oldPkg, filepath.Join(filepath.Dir(root), "escape")); err == nil {
		t.Error("expected error for destination outside the source root")
	}
}

func TestCleanupEmptyParents(t *testing.T) {
	root := t.TempDir()
	leaf := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(leaf, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(leaf); err != nil {
		t.Fatal(err)
	}

	cleanupEmptyParents(leaf, root)

	assertNotExists(t, filepath.Join(root, "a"))
	if _, err := os.Stat(root); err != nil {
		t.Errorf("stop directory must not be removed: %v", err)
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		path, dir string
		want      bool
	}{
		{"/a/b/c", "/a/b", true},
		{"/a/b", "/a/b", false},
		{"/a/bc", "/a/b", false},
		{"/a", "/a/b", false},
	}
	for _, tt := range tests {
		if got := isWithin(filepath.FromSlash(tt.path), filepath.FromSlash(tt.dir)); got != tt.want {
			t.Errorf("isWithin(%q, %q) = %v, want %v", tt.path, tt.dir, got, tt.want)
		}
	}
}
