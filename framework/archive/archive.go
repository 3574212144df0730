// Package archive implements the read-only resource model used for test input
// data such as shader sources and reference images. An Archive is addressed by
// slash-separated relative paths and never mutates the underlying storage.
package archive

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/exp/slices"
)

// Archive provides read-only, path-addressed access to test input data.
type Archive interface {
	// Open returns a reader for the resource at the given relative path.
	// The caller is responsible for closing it.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the entire resource at the given relative path.
	ReadFile(path string) ([]byte, error)

	// List returns the names of the regular files directly under dir, in
	// lexical order. The order is stable across runs so that anything built
	// from archive contents enumerates deterministically.
	List(dir string) ([]string, error)
}

type fsArchive struct {
	fsys fs.FS
	desc string
}

// Dir returns an Archive rooted at a filesystem directory.
func Dir(root string) Archive {
	return &fsArchive{fsys: os.DirFS(root), desc: root}
}

// FromFS returns an Archive backed by an arbitrary fs.FS, such as an embedded
// filesystem holding builtin test data.
func FromFS(fsys fs.FS, description string) Archive {
	return &fsArchive{fsys: fsys, desc: description}
}

func (a *fsArchive) Open(path string) (io.ReadCloser, error) {
	f, err := a.fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", a.desc, err)
	}
	return f, nil
}

func (a *fsArchive) ReadFile(path string) ([]byte, error) {
	data, err := fs.ReadFile(a.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", a.desc, err)
	}
	return data, nil
}

func (a *fsArchive) List(dir string) ([]string, error) {
	entries, err := fs.ReadDir(a.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("archive %s: %w", a.desc, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}
