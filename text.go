package orgscrape

import (
	"strings"
	"unicode/utf8"
)

// Normalize collapses every run of whitespace in s into a single space and
// trims the result.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most n runes. A cut never splits a UTF-8
// sequence, and whitespace left dangling at the cut is trimmed.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return strings.TrimRight(s[:pos], " \t\n\r")
		}
		i++
	}
	return s
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
