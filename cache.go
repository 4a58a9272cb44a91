package eglob

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// segmentCacheSize bounds the package-level compile cache. A walk re-offers
// the same segment text at every directory level, and real pattern sets
// repeat extensions heavily, so a small cache absorbs nearly all compiles.
const segmentCacheSize = 128

var (
	segmentCache     *lru.Cache[string, *SegmentPattern]
	segmentCacheOnce sync.Once
)

// getSegmentCache returns the package-level cache, creating it on first use.
func getSegmentCache() *lru.Cache[string, *SegmentPattern] {
	segmentCacheOnce.Do(func() {
		// lru.New errors only on a non-positive size.
		segmentCache, _ = lru.New[string, *SegmentPattern](segmentCacheSize)
	})
	return segmentCache
}

// compileCached is the memoizing front end to CompileSegment. Compilation is
// a pure function of the segment text and compiled segments are immutable,
// so a cache hit returns the identical *SegmentPattern to every caller and
// eviction is safe at any time. Syntax errors are not cached; retrying a
// bad segment is cheap and rare.
func compileCached(text string) (*SegmentPattern, error) {
	cache := getSegmentCache()
	if p, ok := cache.Get(text); ok {
		return p, nil
	}
	p, err := CompileSegment(text)
	if err != nil {
		return nil, err
	}
	cache.Add(text, p)
	return p, nil
}
