package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalDisk stores files under a directory that the HTTP server exposes
// statically at /uploads.
type LocalDisk struct {
	dir    string // filesystem directory, ex: "uploads/images"
	prefix string // public path prefix for stored files
}

func NewLocalDisk(dir string) (*LocalDisk, error) {
	if dir == "" {
		dir = "uploads/images"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalDisk{
		dir:    dir,
		prefix: "/" + filepath.ToSlash(dir),
	}, nil
}

// Dir returns the filesystem directory files are written to.
func (l *LocalDisk) Dir() string { return l.dir }

func (l *LocalDisk) Save(name string, r io.Reader) (string, error) {
	name = filepath.Base(name)

	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return path.Join(l.prefix, name), nil
}

func (l *LocalDisk) Remove(relPath string) error {
	name := path.Base(strings.TrimSpace(relPath))
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("invalid stored path %q", relPath)
	}
	return os.Remove(filepath.Join(l.dir, name))
}
