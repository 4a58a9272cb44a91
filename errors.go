package eglob

import (
	"errors"
	"fmt"
)

// ErrEmptyPattern is returned by Compile and the Glob helpers when the
// pattern is empty or whitespace-only. It is reported before any segment is
// compiled and before any filesystem access.
var ErrEmptyPattern = errors.New("eglob: pattern empty")

// PatternSyntaxError reports malformed glob grammar: "**" combined with
// other characters in one segment, an unterminated "{" group, an
// unterminated "[" range, or a stray control character. It is always
// produced at compile time; matching never fails.
type PatternSyntaxError struct {
	// Pattern is the segment text that failed to compile.
	Pattern string
	// Reason describes the violation, including the offending remainder
	// of the segment where that helps.
	Reason string
	// Err is the underlying cause, if any (e.g. the host regexp engine
	// rejecting a character-class body).
	Err error
}

func (e *PatternSyntaxError) Error() string {
	return fmt.Sprintf("eglob: invalid pattern %q: %s", e.Pattern, e.Reason)
}

func (e *PatternSyntaxError) Unwrap() error { return e.Err }

// FilesystemAccessError reports a failed directory listing or working
// directory lookup during a walk. The walk is aborted; no partial result is
// returned alongside it.
type FilesystemAccessError struct {
	// Path is the directory that could not be accessed.
	Path string
	// Err is the underlying filesystem error.
	Err error
}

func (e *FilesystemAccessError) Error() string {
	return fmt.Sprintf("eglob: cannot access %q: %v", e.Path, e.Err)
}

func (e *FilesystemAccessError) Unwrap() error { return e.Err }
