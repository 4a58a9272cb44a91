// Package eglob matches file paths against extended glob patterns and
// enumerates the files under a directory tree that match them.
//
// Patterns are split on "/" into per-segment sub-patterns. Each segment is
// compiled once into an anchored matcher; compiled segments are shared
// through a bounded package-level cache, so repeating segment text across
// patterns or directory levels costs a single compilation.
//
// # Quick Start
//
//	matches, err := eglob.Glob("src/**/*.{ts,js}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range matches {
//	    fmt.Println(m)
//	}
//
//	p, err := eglob.Compile("*.{py,pyc}")
//	fmt.Println(p.Match("app.py"))    // true
//	fmt.Println(p.Match("cache.pyo")) // false
//
//	kept := p.Filter([]string{"app.py", "cache.pyc", "readme.md"})
//	// kept == []string{"app.py", "cache.pyc"}
//
// # Pattern Syntax
//
// A pattern is a "/"-separated sequence of segments ("\" separators are
// normalized to "/" first). Within one segment:
//
//   - "*" matches one or more characters (a bare "*" never matches an
//     empty name)
//   - "?" matches exactly one character
//   - "**" matches any number of directory levels, including none; it must
//     be the entire segment ("a**b" is a syntax error)
//   - "{a,b}" groups sub-patterns into an OR expression, e.g. "*.{ts,js}";
//     groups nest, and an empty alternative such as "{,pyc}" matches the
//     empty string at that position
//   - "[1-5]" matches one character from the range; "[!1-5]" matches one
//     character outside it
//
// The glob control characters "* ? { } [ ] ! , / \" are never matched
// implicitly: "*", "?" and literal runs all exclude them. Matching is
// case-sensitive and a segment always matches the entire entry name.
//
// An empty segment (from "//" or a trailing "/") compiles to a matcher for
// the empty name only. No real directory entry has an empty name, so such a
// pattern enumerates nothing; this is the documented behavior, not an error.
//
// # Enumeration
//
// Glob walks depth-first from the root. All segments except the last are
// matched against directories only; the last segment is matched against
// files only, so a trailing segment never descends further. Results appear
// in directory-listing order, not sorted. A directory that cannot be listed
// aborts the walk with a *FilesystemAccessError; partial results are never
// returned silently.
//
// # Concurrency
//
// Compiled patterns are immutable and safe for concurrent use. Walks are
// single-threaded; FilterParallel fans path-string matching out across
// runtime.NumCPU() goroutines sharing one compiled pattern.
package eglob
