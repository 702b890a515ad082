package writer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	mustWrite(t, filepath.Join(src, "a.txt"), "a")
	mustWrite(t, filepath.Join(src, "nested", "deep", "b.txt"), "b")
	mustWrite(t, filepath.Join(src, ".idea", "workspace.xml"), "<project/>")
	mustWrite(t, filepath.Join(src, "nested", ".idea", "inner.xml"), "<inner/>")

	dst := filepath.Join(t.TempDir(), "out")
	if err := CopyTree(src, dst, excludeSet(DefaultExclude)); err != nil {
		t.Fatalf("CopyTree error: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "a.txt")); got != "a" {
		t.Errorf("a.txt = %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "nested", "deep", "b.txt")); got != "b" {
		t.Errorf("nested/deep/b.txt = %q", got)
	}
	assertNotExists(t, filepath.Join(dst, ".idea"))
	assertNotExists(t, filepath.Join(dst, "nested", ".idea"))
}

func TestCopyTree_OverwritesExisting(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	mustWrite(t, filepath.Join(src, "file.txt"), "new")
	mustWrite(t, filepath.Join(dst, "file.txt"), "old")
	mustWrite(t, filepath.Join(dst, "keep.txt"), "keep")

	if err := CopyTree(src, dst, nil); err != nil {
		t.Fatalf("CopyTree error: %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "file.txt")); got != "new" {
		t.Errorf("file.txt = %q, want new", got)
	}
	if got := readFile(t, filepath.Join(dst, "keep.txt")); got != "keep" {
		t.Errorf("unrelated file should be left alone, got %q", got)
	}
}

func TestCopyTree_PreservesMode(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	script := filepath.Join(src, "mvnw")
	mustWrite(t, script, "#!/bin/sh\n")
	if err := os.Chmod(script, 0755); err != nil {
		t.Fatal(err)
	}

	if err := CopyTree(src, dst, nil); err != nil {
		t.Fatalf("CopyTree error: %v", err)
	}
	info, err := os.Stat(filepath.Join(dst, "mvnw"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestCopyTree_SourceErrors(t *testing.T) {
	dir := t.TempDir()
	if err := CopyTree(filepath.Join(dir, "missing"), t.TempDir(), nil); err == nil {
		t.Error("expected error for missing source")
	}

	file := filepath.Join(dir, "plain.txt")
	mustWrite(t, file, "x")
	if err := CopyTree(file, t.TempDir(), nil); err == nil {
		t.Error("expected error when source is a file")
	}
}

func TestExcludeSet(t *testing.T) {
	set := excludeSet([]string{".idea", "", ".git"})
	if len(set) != 2 || !set[".idea"] || !set[".git"] {
		t.Errorf("excludeSet = %v", set)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
