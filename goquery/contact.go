package goquery

import (
	"strings"

	"github.com/fwojciec/orgscrape"
)

// contactSelectors locate a dedicated contact section.
var contactSelectors = []string{
	".contact",
	".contact-info",
	".contact-details",
	"#contact",
	`[class*="contact"]`,
}

// addressSelectors locate a postal address.
var addressSelectors = []string{
	"address",
	`[itemprop="address"]`,
	".address",
}

// Contact holds the contact details found on a page.
type Contact struct {
	Email   string
	Phone   string
	Address string
	Summary string
}

// ExtractContact scans the page for an email address, a phone number and
// a postal address, and builds the contact summary.
//
// The summary is the text of the first non-empty contact section. Pages
// without one get a summary synthesized from the details found, e.g.
// "Email: hello@acme.my; Phone: 03-12345678". Summaries are at most
// MaxContactLen runes long.
func ExtractContact(doc *Document, emails *orgscrape.EmailMatcher, phones *orgscrape.PhoneMatcher) Contact {
	text := doc.FullText()

	var c Contact
	c.Email = emails.First(append([]string{text}, mailtoAddresses(doc)...)...)
	c.Phone = phones.First(text)
	for _, selector := range addressSelectors {
		if el := doc.SelectFirst(selector); el != nil {
			if c.Address = el.Text(); c.Address != "" {
				break
			}
		}
	}

	for _, selector := range contactSelectors {
		if el := doc.SelectFirst(selector); el != nil {
			if summary := el.Text(); summary != "" {
				c.Summary = orgscrape.Truncate(summary, orgscrape.MaxContactLen)
				return c
			}
		}
	}

	var parts []string
	if c.Email != "" {
		parts = append(parts, "Email: "+c.Email)
	}
	if c.Phone != "" {
		parts = append(parts, "Phone: "+c.Phone)
	}
	if c.Address != "" {
		parts = append(parts, "Address: "+c.Address)
	}
	c.Summary = orgscrape.Truncate(strings.Join(parts, "; "), orgscrape.MaxContactLen)
	return c
}

// mailtoAddresses returns the addresses of mailto links, without the
// scheme or query.
func mailtoAddresses(doc *Document) []string {
	var addrs []string
	for _, a := range doc.SelectAll(`a[href^="mailto:"]`) {
		href, _ := a.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if i := strings.IndexByte(addr, '?'); i >= 0 {
			addr = addr[:i]
		}
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}
