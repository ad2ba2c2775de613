package manifest

import (
	"regexp"
	"unicode/utf8"
)

// configAnchor matches the player script assignment that precedes the embedded config object.
var configAnchor = regexp.MustCompile(`var\s+config\s*=\s*\{`)

// configTrailer matches the guard statement the player script places right after the object.
var configTrailer = regexp.MustCompile(`^\s*;\s*if\b`)

// objectStart returns the index of the first '{' at or after the anchor match, or -1.
func objectStart(b []byte, anchor *regexp.Regexp) int {
	loc := anchor.FindIndex(b)
	if loc == nil {
		return -1
	}
	for p := loc[0]; p < len(b); p++ {
		if b[p] == '{' {
			return p
		}
	}
	return -1
}

// objectEnd scans from the opening brace at start to its matching closing brace,
// ignoring braces inside quoted strings. It returns the index just past the closing
// brace, or -1 when the object is not terminated.
func objectEnd(b []byte, start int) int {
	if start < 0 || start >= len(b) || b[start] != '{' {
		return -1
	}

	var (
		depth   int
		quote   rune
		escaped bool
	)

	for p := start; p < len(b); {
		r, size := utf8.DecodeRune(b[p:])
		p += size

		if quote != 0 {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}

		switch r {
		case '"', '\'':
			quote = r
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return p
			}
		}
	}
	return -1
}

// locate returns the object literal following anchor in b, or nil if there is none.
// A non-nil trailer must match the text directly after the closing brace.
func locate(b []byte, anchor, trailer *regexp.Regexp) []byte {
	start := objectStart(b, anchor)
	if start < 0 {
		return nil
	}
	end := objectEnd(b, start)
	if end < 0 {
		return nil
	}
	if trailer != nil && !trailer.Match(b[end:]) {
		return nil
	}
	return b[start:end]
}
