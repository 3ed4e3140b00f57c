package goquery

import (
	"strings"

	"github.com/fwojciec/orgscrape"
)

// Candidate is one step of a first-match chain. Resolve reports whether
// the step produced a value for the document.
type Candidate struct {
	Name    string
	Resolve func(doc *Document) (string, bool)
}

// Chain returns the value of the first candidate that resolves, along
// with that candidate's name. ok is false when no candidate resolves.
func Chain(doc *Document, candidates []Candidate) (value, name string, ok bool) {
	for _, c := range candidates {
		if v, ok := c.Resolve(doc); ok {
			return v, c.Name, true
		}
	}
	return "", "", false
}

// TextCandidate resolves to the text of the first element matching
// selector when accept approves it.
func TextCandidate(selector string, accept func(string) bool) Candidate {
	return Candidate{
		Name: selector,
		Resolve: func(doc *Document) (string, bool) {
			el := doc.SelectFirst(selector)
			if el == nil {
				return "", false
			}
			text := el.Text()
			if text == "" || !accept(text) {
				return "", false
			}
			return text, true
		},
	}
}

// AttrCandidate resolves to the trimmed attribute of the first element
// matching selector when that attribute is non-blank. Inner whitespace is
// kept as authored.
func AttrCandidate(selector, attr string) Candidate {
	return Candidate{
		Name: selector + "@" + attr,
		Resolve: func(doc *Document) (string, bool) {
			el := doc.SelectFirst(selector)
			if el == nil {
				return "", false
			}
			v, _ := el.Attr(attr)
			v = strings.TrimSpace(v)
			return v, v != ""
		},
	}
}

// Fixed always resolves to value.
func Fixed(name, value string) Candidate {
	return Candidate{
		Name:    name,
		Resolve: func(*Document) (string, bool) { return value, true },
	}
}

// longerThan accepts text of more than n runes.
func longerThan(n int) func(string) bool {
	return func(s string) bool { return orgscrape.RuneLen(s) > n }
}
