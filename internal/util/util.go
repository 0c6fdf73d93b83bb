// Package util holds small string-matching helpers shared by completion
// and rendering code: case-insensitive rune matching and ANSI-sequence
// stripping.
package util

import (
	"regexp"
	"unicode"
)

// CaseInsensitiveIndexFunc returns a function that matches runes equal to r, ignoring case.
func CaseInsensitiveIndexFunc(r rune) func(rune) bool {
	lr := unicode.ToUpper(r)
	return func(v rune) bool {
		return lr == unicode.ToUpper(v)
	}
}

// CaseInsensitiveIndex returns the byte index of the first rune in s that
// is case-insensitively equal to r. Returns -1 if not found. This avoids
// the closure allocation of CaseInsensitiveIndexFunc + strings.IndexFunc.
func CaseInsensitiveIndex(s string, r rune) int {
	upper := unicode.ToUpper(r)
	for i, c := range s {
		if unicode.ToUpper(c) == upper {
			return i
		}
	}
	return -1
}

// ContainsUpper reports whether the string contains any uppercase letter.
func ContainsUpper(query string) bool {
	for _, c := range query {
		if unicode.IsUpper(c) {
			return true
		}
	}
	return false
}

// Global var used to strips ansi sequences
var reANSIEscapeChars = regexp.MustCompile("\x1B\\[(?:[0-9]{1,2}(?:;[0-9]{1,2})?)*[a-zA-Z]")

// StripANSISequence strips ANSI escape sequences from the given string
func StripANSISequence(s string) string {
	return reANSIEscapeChars.ReplaceAllString(s, "")
}
