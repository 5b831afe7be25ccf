package storage

import "io"

// Storage persists uploaded files and serves them back by relative path.
type Storage interface {
	// Save writes r under the given file name and returns the public
	// relative path, ex: "/uploads/images/3f2a....jpg".
	Save(name string, r io.Reader) (relPath string, err error)

	// Remove deletes a previously stored file by its public relative path.
	Remove(relPath string) error
}
