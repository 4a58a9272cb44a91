package eglob

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Glob compiles pattern and enumerates the matching files under the process
// working directory. Results are in directory-listing order.
func Glob(pattern string) ([]string, error) {
	return GlobFrom(pattern, "")
}

// GlobFrom is Glob rooted at the given directory. An empty root means the
// process working directory.
func GlobFrom(pattern, root string) ([]string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Glob(root)
}

// IterGlob compiles pattern and calls fn with each matching file path as
// the walk finds it. Returning an error from fn stops the walk; that error
// is returned unchanged, so a sentinel lets callers terminate early without
// draining the tree.
func IterGlob(pattern string, fn func(path string) error) error {
	p, err := Compile(pattern)
	if err != nil {
		return err
	}
	return p.IterGlob("", fn)
}

// Glob enumerates the files under root that match the pattern. An empty
// root means the process working directory. Enumeration is eager; use
// IterGlob to stop early.
func (p *Pattern) Glob(root string) ([]string, error) {
	var matches []string
	err := p.IterGlob(root, func(path string) error {
		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// IterGlob walks the OS filesystem from root, calling fn with each matching
// file path in directory-listing order. A directory that cannot be listed
// aborts the walk with a *FilesystemAccessError.
func (p *Pattern) IterGlob(root string, fn func(path string) error) error {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return &FilesystemAccessError{
				Path: ".",
				Err:  errors.Wrap(err, "resolve working directory"),
			}
		}
		root = wd
	}
	return p.GlobFs(afero.NewOsFs(), root, fn)
}

// GlobFs is IterGlob against an arbitrary afero filesystem. root must be
// non-empty; working-directory defaulting only applies to the OS
// filesystem.
func (p *Pattern) GlobFs(fsys afero.Fs, root string, fn func(path string) error) error {
	w := &walker{fsys: fsys}
	return w.walk(root, p.segments, fn)
}
