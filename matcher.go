package eglob

import (
	"runtime"
	"strings"
	"sync"
)

// Pattern holds a compiled extended glob pattern: one compiled matcher per
// "/"-delimited segment. The last segment matches files, the preceding ones
// match directories, and a "**" directory segment matches any number of
// levels.
//
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	pattern  string
	segments []*SegmentPattern
}

// Compile compiles a glob pattern. "\" separators are normalized to "/"
// before the pattern is split into segments; each segment is compiled
// through the package-level cache.
//
// Compile returns ErrEmptyPattern when the trimmed pattern is empty and a
// *PatternSyntaxError when a segment violates the grammar.
func Compile(pattern string) (*Pattern, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, ErrEmptyPattern
	}

	normalized := strings.ReplaceAll(pattern, `\`, "/")

	parts := strings.Split(normalized, "/")
	segments := make([]*SegmentPattern, len(parts))
	for i, part := range parts {
		seg, err := compileCached(part)
		if err != nil {
			return nil, err
		}
		segments[i] = seg
	}

	return &Pattern{pattern: normalized, segments: segments}, nil
}

// MustCompile is like Compile but panics on error. It simplifies package
// variable initialization with patterns known to be valid.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the normalized pattern text.
func (p *Pattern) String() string { return p.pattern }

// Match reports whether the given path string matches the pattern,
// component-wise against the segment sequence. "\" separators in the path
// are normalized to "/". A "**" segment consumes zero or more components.
//
// Match inspects only the path string; it never touches the filesystem. Use
// Glob to enumerate real files.
func (p *Pattern) Match(path string) bool {
	path = strings.ReplaceAll(path, `\`, "/")
	return matchComponents(p.segments, strings.Split(path, "/"))
}

func matchComponents(segments []*SegmentPattern, components []string) bool {
	if len(segments) == 0 {
		return len(components) == 0
	}
	head := segments[0]
	if head.matchesAnyLevels() {
		if matchComponents(segments[1:], components) {
			return true
		}
		return len(components) > 0 && matchComponents(segments, components[1:])
	}
	if len(components) == 0 || !head.Match(components[0]) {
		return false
	}
	return matchComponents(segments[1:], components[1:])
}

// Filter returns the paths from the input slice that match the pattern,
// preserving input order. It returns nil when the input is empty.
func (p *Pattern) Filter(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	kept := make([]string, 0, len(paths))
	for _, path := range paths {
		if p.Match(path) {
			kept = append(kept, path)
		}
	}
	return kept
}

// FilterParallel is Filter spread across runtime.NumCPU() goroutines. The
// input is split into chunks, each chunk is filtered against the shared
// compiled pattern, and the per-chunk results are merged in input order.
//
// For small path lists the goroutine overhead may exceed the savings; use
// Filter for those.
func (p *Pattern) FilterParallel(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers < 1 {
		numWorkers = 1
	}
	if numWorkers > len(paths) {
		numWorkers = len(paths)
	}
	if numWorkers <= 1 {
		return p.Filter(paths)
	}

	chunkSize := (len(paths) + numWorkers - 1) / numWorkers
	var chunks [][]string
	for i := 0; i < len(paths); i += chunkSize {
		end := i + chunkSize
		if end > len(paths) {
			end = len(paths)
		}
		chunks = append(chunks, paths[i:end])
	}

	// One result slot per chunk so the merge preserves input order.
	results := make([][]string, len(chunks))
	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for i, chunk := range chunks {
		go func(idx int, chunk []string) {
			defer wg.Done()
			results[idx] = p.Filter(chunk)
		}(i, chunk)
	}
	wg.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	merged := make([]string, 0, total)
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}
