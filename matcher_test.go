package eglob

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Compile
// ---------------------------------------------------------------------------

func TestCompileEmptyPattern(t *testing.T) {
	for _, pattern := range []string{"", "   ", "\t\n"} {
		_, err := Compile(pattern)
		if !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("Compile(%q) = %v, want ErrEmptyPattern", pattern, err)
		}
	}
}

func TestCompileSyntaxErrorPropagates(t *testing.T) {
	_, err := Compile("src/a**b/x.py")
	var syntaxErr *PatternSyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("Compile returned %v, want *PatternSyntaxError", err)
	}
	if syntaxErr.Pattern != "a**b" {
		t.Errorf("error carries segment %q, want %q", syntaxErr.Pattern, "a**b")
	}
}

func TestCompileNormalizesBackslashes(t *testing.T) {
	p, err := Compile(`src\*.py`)
	require.NoError(t, err)

	assert.Equal(t, "src/*.py", p.String())
	assert.True(t, p.Match("src/app.py"))
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic from MustCompile on invalid pattern")
		}
	}()
	MustCompile("a**b")
}

// ---------------------------------------------------------------------------
// Pattern.Match — path strings
// ---------------------------------------------------------------------------

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.py", "app.py", true},
		{"*.py", "src/app.py", false},
		{"src/*.py", "src/app.py", true},
		{"src/*.py", "app.py", false},
		{"src/*.py", "src/sub/app.py", false},
		{"**/*.{ts,js}", "src/a.ts", true},
		{"**/*.{ts,js}", "src/nested/b.js", true},
		{"**/*.{ts,js}", "a.ts", true}, // ** consumes zero components
		{"**/*.{ts,js}", "src/c.txt", false},
		{"src/**/*.py", "src/app.py", true},
		{"src/**/*.py", "src/a/b/app.py", true},
		{"src/**/*.py", "lib/app.py", false},
		{"tmp?/app.py", "tmp1/app.py", true},
		{"tmp?/app.py", "tmp12/app.py", false},
	}
	for _, tc := range tests {
		p, err := Compile(tc.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", tc.pattern, err)
		}
		if got := p.Match(tc.path); got != tc.want {
			t.Errorf("%q.Match(%q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestPatternMatchNormalizesPathSeparators(t *testing.T) {
	p := MustCompile("src/*.py")
	if !p.Match(`src\app.py`) {
		t.Error("backslash-separated path should match after normalization")
	}
}

// ---------------------------------------------------------------------------
// Filter / FilterParallel
// ---------------------------------------------------------------------------

func TestFilter(t *testing.T) {
	p := MustCompile("*.{py,pyc}")

	kept := p.Filter([]string{"app.py", "cache.pyc", "cache.pyo", "readme.md"})
	assert.Equal(t, []string{"app.py", "cache.pyc"}, kept)
}

func TestFilterEmptyInput(t *testing.T) {
	p := MustCompile("*.py")
	if got := p.Filter(nil); got != nil {
		t.Errorf("Filter(nil) = %v, want nil", got)
	}
	if got := p.FilterParallel(nil); got != nil {
		t.Errorf("FilterParallel(nil) = %v, want nil", got)
	}
}

func TestFilterParallelAgreesWithFilter(t *testing.T) {
	p := MustCompile("**/*.py")

	var paths []string
	for i := 0; i < 1000; i++ {
		switch i % 3 {
		case 0:
			paths = append(paths, "src/app.py")
		case 1:
			paths = append(paths, "src/readme.md")
		default:
			paths = append(paths, "a/b/c/deep.py")
		}
	}

	assert.Equal(t, p.Filter(paths), p.FilterParallel(paths))
}
