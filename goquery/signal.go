package goquery

import (
	"strings"

	"github.com/fwojciec/orgscrape"
)

// newsSelectors locate news, updates and awards.
var newsSelectors = []string{
	".news",
	".updates",
	".latest",
	".achievements",
	".awards",
	`[class*="news"]`,
	`[class*="update"]`,
}

// programSelectors locate programs, services and initiatives.
var programSelectors = []string{
	".programs",
	".services",
	".initiatives",
	".projects",
	`[class*="program"]`,
	`[class*="service"]`,
}

// maxSignalElements bounds how many elements feed one signal.
const maxSignalElements = 3

// ExtractNews returns the news signal of the page.
func ExtractNews(doc *Document) string {
	return extractSignal(doc, newsSelectors)
}

// ExtractPrograms returns the program participation signal of the page.
func ExtractPrograms(doc *Document) string {
	return extractSignal(doc, programSelectors)
}

// extractSignal joins the texts of the first three elements matched by the
// first selector that matches anything. Document order, no ranking.
func extractSignal(doc *Document, selectors []string) string {
	for _, selector := range selectors {
		elems := doc.SelectAll(selector)
		if len(elems) == 0 {
			continue
		}
		if len(elems) > maxSignalElements {
			elems = elems[:maxSignalElements]
		}
		texts := make([]string, len(elems))
		for i, el := range elems {
			texts[i] = el.Text()
		}
		return orgscrape.Truncate(orgscrape.Normalize(strings.Join(texts, " ")), orgscrape.MaxSignalLen)
	}
	return ""
}
