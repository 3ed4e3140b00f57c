package goquery

import "github.com/fwojciec/orgscrape"

// aboutSelectors locate about or mission sections.
var aboutSelectors = []string{
	".about",
	".description",
	".company-description",
	".mission",
	".overview",
	"#about",
	`[class*="about"]`,
	`[class*="description"]`,
}

// DescriptionCandidates returns the description chain in priority order:
// meta description, Open Graph description, the first about section with
// more than 50 runes, the first paragraph with more than 100 runes, and
// the placeholder.
func DescriptionCandidates() []Candidate {
	candidates := []Candidate{
		AttrCandidate(`meta[name="description"]`, "content"),
		AttrCandidate(`meta[property="og:description"]`, "content"),
	}
	for _, selector := range aboutSelectors {
		candidates = append(candidates, TextCandidate(selector, longerThan(50)))
	}
	candidates = append(candidates,
		Candidate{
			Name: "paragraph",
			Resolve: func(doc *Document) (string, bool) {
				for _, p := range doc.SelectAll("p") {
					if text := p.Text(); orgscrape.RuneLen(text) > 100 {
						return text, true
					}
				}
				return "", false
			},
		},
		Fixed("placeholder", orgscrape.DescriptionPlaceholder),
	)
	return candidates
}

// ExtractDescription returns the page description, at most
// MaxDescriptionLen runes long. It is never empty.
func ExtractDescription(doc *Document) string {
	desc, _, _ := Chain(doc, DescriptionCandidates())
	return orgscrape.Truncate(desc, orgscrape.MaxDescriptionLen)
}
