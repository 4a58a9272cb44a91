package eglob

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// walker carries the filesystem a walk runs against. Production walks use
// the OS filesystem; tests substitute an in-memory afero.Fs.
type walker struct {
	fsys afero.Fs
}

// walk recurses depth-first from dir, consuming the segment sequence one
// directory level at a time and calling fn with the full path of every
// matching file. Entries are visited in directory-listing order.
//
// While more than one segment remains, the head segment matches directories
// only. A "**" head is re-offered unchanged when descending, which realizes
// "zero or more levels"; files at the current level are then checked against
// the segment after it, the zero-levels case. When a single segment remains
// it matches files only, so a trailing segment never descends.
//
// An error from fn aborts the walk and is returned as-is, which is how
// IterGlob consumers stop early.
func (w *walker) walk(dir string, segments []*SegmentPattern, fn func(path string) error) error {
	entries, err := afero.ReadDir(w.fsys, dir)
	if err != nil {
		return &FilesystemAccessError{Path: dir, Err: err}
	}

	nested := len(segments) > 1
	head := segments[0]

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		if entry.IsDir() {
			if !nested || !head.Match(name) {
				continue
			}
			next := segments[1:]
			if head.matchesAnyLevels() {
				next = segments
			}
			if err := w.walk(full, next, fn); err != nil {
				return err
			}
			continue
		}

		fileSegment := head
		if nested {
			if !head.matchesAnyLevels() {
				continue
			}
			fileSegment = segments[1]
		}
		if fileSegment.Match(name) {
			if err := fn(full); err != nil {
				return err
			}
		}
	}
	return nil
}
