package eglob

import (
	"regexp"
	"strconv"
	"strings"
)

// globChars are the glob control characters. "*", "?" and literal runs
// never match any of them.
const globChars = `*?{}[]!,/\`

// nonGlobClass is a regexp character class matching one rune that is not a
// glob control character.
const nonGlobClass = `[^*?{}\[\]!,/\\]`

// anyLevels is the segment that matches any number of directory levels.
const anyLevels = "**"

// SegmentPattern is one "/"-delimited component of a glob pattern, compiled
// into an anchored matcher for a single entry name. It is immutable and safe
// for concurrent use.
type SegmentPattern struct {
	text string
	re   *regexp.Regexp
}

// CompileSegment compiles a single segment of glob text. It returns a
// *PatternSyntaxError when the text violates the segment grammar (see the
// package documentation for the syntax).
//
// Compilation is deterministic: the same text always yields a matcher with
// identical behavior. Compile memoizes this function; call it directly only
// when the cache is unwanted.
func CompileSegment(text string) (*SegmentPattern, error) {
	expr, err := translateSegment(text)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		// Reachable only through a range body the host engine rejects,
		// e.g. "[z-a]".
		return nil, &PatternSyntaxError{
			Pattern: text,
			Reason:  "invalid character range",
			Err:     err,
		}
	}
	return &SegmentPattern{text: text, re: re}, nil
}

// Match reports whether name matches the compiled segment. The match is
// anchored: the whole name must match, never a prefix or substring.
func (p *SegmentPattern) Match(name string) bool {
	return p.re.MatchString(name)
}

// Text returns the original segment text the matcher was compiled from.
func (p *SegmentPattern) Text() string { return p.text }

func (p *SegmentPattern) String() string {
	return "SegmentPattern(" + p.text + ")"
}

// matchesAnyLevels reports whether the segment is the literal "**", which
// the walker treats as zero or more directory levels rather than as a
// per-name match.
func (p *SegmentPattern) matchesAnyLevels() bool {
	return p.text == anyLevels
}

// translateSegment converts segment glob text into an unanchored regexp
// fragment.
func translateSegment(text string) (string, error) {
	if text == anyLevels {
		return ".*", nil
	}
	frag, _, err := parseSequence(text, text, false)
	if err != nil {
		return "", err
	}
	return frag, nil
}

// parseSequence consumes a run of segment terms starting at s and returns
// the regexp fragment plus the number of bytes consumed. Inside a brace
// group it stops, without consuming, at the first top-level "," or "}".
// whole is the full segment text, used for error reporting only.
func parseSequence(s, whole string, inGroup bool) (string, int, error) {
	var b strings.Builder
	n := 0
	for n < len(s) {
		c := s[n]
		switch {
		case inGroup && (c == ',' || c == '}'):
			return b.String(), n, nil

		case c == '*':
			if n+1 < len(s) && s[n+1] == '*' {
				// "**" is handled before parsing when it is the whole
				// segment; anywhere else it is illegal.
				return "", 0, &PatternSyntaxError{
					Pattern: whole,
					Reason:  "\"**\" cannot be combined with other characters in a segment",
				}
			}
			b.WriteString(nonGlobClass + "+")
			n++

		case c == '?':
			b.WriteString(nonGlobClass)
			n++

		case c == '{':
			frag, m, err := parseGroup(s[n:], whole)
			if err != nil {
				return "", 0, err
			}
			b.WriteString(frag)
			n += m

		case c == '[':
			frag, m, err := parseRange(s[n:], whole)
			if err != nil {
				return "", 0, err
			}
			b.WriteString(frag)
			n += m

		case strings.IndexByte(globChars, c) >= 0:
			// A control character with no construct to open: stray "}",
			// ",", "!", "/" or "\".
			return "", 0, &PatternSyntaxError{
				Pattern: whole,
				Reason:  "invalid segment characters: " + strconv.Quote(s[n:]),
			}

		default:
			j := n + 1
			for j < len(s) && strings.IndexByte(globChars, s[j]) < 0 {
				j++
			}
			b.WriteString(regexp.QuoteMeta(s[n:j]))
			n = j
		}
	}
	return b.String(), n, nil
}

// parseGroup parses a "{a,b,...}" group starting at the opening brace and
// returns a non-capturing alternation fragment. Alternatives are parsed
// recursively with the full segment grammar, so groups nest. Consecutive
// commas produce empty alternatives, which match the empty string.
func parseGroup(s, whole string) (string, int, error) {
	n := 1 // opening "{"
	var alts []string
	for {
		frag, m, err := parseSequence(s[n:], whole, true)
		if err != nil {
			return "", 0, err
		}
		n += m
		alts = append(alts, frag)
		if n >= len(s) {
			return "", 0, &PatternSyntaxError{
				Pattern: whole,
				Reason:  "unterminated group: " + strconv.Quote(s),
			}
		}
		if s[n] == ',' {
			n++
			continue
		}
		// parseSequence stops only at "," or "}".
		n++
		return "(?:" + strings.Join(alts, "|") + ")", n, nil
	}
}

// parseRange parses a "[set]" or "[!set]" character range starting at the
// opening bracket. The set body is passed through to the host regexp
// engine's native class syntax, so ranges like "1-5" work as written.
func parseRange(s, whole string) (string, int, error) {
	n := 1 // opening "["
	negate := false
	if n < len(s) && s[n] == '!' {
		negate = true
		n++
	}
	end := strings.IndexByte(s[n:], ']')
	if end < 0 {
		return "", 0, &PatternSyntaxError{
			Pattern: whole,
			Reason:  "unterminated range: " + strconv.Quote(s),
		}
	}
	body := s[n : n+end]
	n += end + 1
	if body == "" {
		return "", 0, &PatternSyntaxError{
			Pattern: whole,
			Reason:  "empty range: " + strconv.Quote(s),
		}
	}
	if negate {
		return "[^" + body + "]", n, nil
	}
	return "[" + body + "]", n, nil
}
