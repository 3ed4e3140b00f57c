package goquery

import "github.com/fwojciec/orgscrape"

// nameSelectors are tried in order for the organization name.
var nameSelectors = []string{
	"h1",
	".company-name",
	".brand-name",
	"title",
	".site-title",
	".logo-text",
	`[class*="company"]`,
	`[class*="brand"]`,
}

// plausibleName accepts names of 6 to 99 runes.
func plausibleName(s string) bool {
	n := orgscrape.RuneLen(s)
	return n > 5 && n < 100
}

// NameCandidates returns the name chain for a page served at sourceURL.
// The title element is read with its boilerplate suffix removed. When no
// selector yields a plausible name, the stripped title is used whatever
// its length, and finally a name derived from the URL host.
func NameCandidates(sourceURL string, title *orgscrape.TitleSuffix, hostSuffixes []string) []Candidate {
	candidates := make([]Candidate, 0, len(nameSelectors)+2)
	for _, selector := range nameSelectors {
		if selector == "title" {
			candidates = append(candidates, titleCandidate("title", title, plausibleName))
			continue
		}
		candidates = append(candidates, TextCandidate(selector, plausibleName))
	}
	candidates = append(candidates,
		titleCandidate("title fallback", title, func(string) bool { return true }),
		Candidate{
			Name: "url host",
			Resolve: func(*Document) (string, bool) {
				name := orgscrape.NameFromURL(sourceURL, hostSuffixes)
				return name, name != ""
			},
		},
	)
	return candidates
}

func titleCandidate(name string, title *orgscrape.TitleSuffix, accept func(string) bool) Candidate {
	return Candidate{
		Name: name,
		Resolve: func(doc *Document) (string, bool) {
			el := doc.SelectFirst("title")
			if el == nil {
				return "", false
			}
			text := orgscrape.Normalize(title.Strip(el.Text()))
			if text == "" || !accept(text) {
				return "", false
			}
			return text, true
		},
	}
}

// ExtractName returns the organization name, or "" when neither the page
// nor its URL yields one.
func ExtractName(doc *Document, sourceURL string, title *orgscrape.TitleSuffix, hostSuffixes []string) string {
	name, _, _ := Chain(doc, NameCandidates(sourceURL, title, hostSuffixes))
	return name
}
