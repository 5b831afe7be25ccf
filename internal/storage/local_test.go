package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalDiskSaveAndRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	disk, err := NewLocalDisk(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	relPath, err := disk.Save("a.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(relPath, "/a.png") {
		t.Errorf("relPath = %q", relPath)
	}

	onDisk := filepath.Join(dir, "a.png")
	b, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "png-bytes" {
		t.Errorf("content = %q", b)
	}

	if err := disk.Remove(relPath); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Errorf("file still exists after remove")
	}
}

func TestLocalDiskSaveStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	disk, err := NewLocalDisk(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	// path traversal in the name must not escape the upload dir
	if _, err := disk.Save("../evil.png", strings.NewReader("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "evil.png")); err != nil {
		t.Errorf("expected file inside upload dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "..", "evil.png")); err == nil {
		t.Errorf("file escaped upload dir")
	}
}

func TestLocalDiskRemoveRejectsEmpty(t *testing.T) {
	disk, err := NewLocalDisk(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := disk.Remove("  "); err == nil {
		t.Error("expected error for empty path")
	}
}
