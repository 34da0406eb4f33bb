package ports

import (
	"context"
	"io"
	"io/fs"
)

// File is an open document with random access, as needed to stream it back
// with range support.
type File interface {
	io.ReadSeekCloser
	Stat() (fs.FileInfo, error)
}

// DocumentStore defines the interface for the directory holding notebooks and
// generated artifacts.
type DocumentStore interface {
	// List returns the names of regular files ending in ext, in directory order.
	List(ctx context.Context, ext string) ([]string, error)

	// Open opens a stored file for reading.
	// Returns domain.ErrNotFound if the file does not exist or the name is not
	// a plain file name.
	Open(ctx context.Context, name string) (File, error)

	// Write replaces the named file atomically.
	Write(ctx context.Context, name string, data []byte) error

	// Path resolves a plain file name to its location on disk.
	Path(name string) (string, error)
}
