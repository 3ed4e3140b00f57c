package orgscrape

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultEmailBlocklist lists substrings marking addresses that never
// reach a person.
var DefaultEmailBlocklist = []string{"noreply", "no-reply", "donotreply", "example.com"}

// DefaultHostSuffixes are stripped from a host name when a name has to be
// derived from the URL.
var DefaultHostSuffixes = []string{".com", ".org", ".net", ".co", ".my"}

// EmailMatcher finds business email addresses in text.
type EmailMatcher struct {
	pattern   *regexp.Regexp
	blocklist []string
}

// NewEmailMatcher returns an EmailMatcher rejecting any address that
// contains one of blocklist, case-insensitively.
func NewEmailMatcher(blocklist []string) *EmailMatcher {
	lowered := make([]string, len(blocklist))
	for i, b := range blocklist {
		lowered[i] = strings.ToLower(b)
	}
	return &EmailMatcher{
		pattern:   regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		blocklist: lowered,
	}
}

// FindAll returns every address-shaped match in text, in order.
func (m *EmailMatcher) FindAll(text string) []string {
	return m.pattern.FindAllString(text, -1)
}

// Allowed reports whether email contains none of the blocklisted substrings.
func (m *EmailMatcher) Allowed(email string) bool {
	lower := strings.ToLower(email)
	for _, b := range m.blocklist {
		if strings.Contains(lower, b) {
			return false
		}
	}
	return true
}

// First scans texts in order and returns the first allowed address,
// or "" if there is none.
func (m *EmailMatcher) First(texts ...string) string {
	for _, text := range texts {
		for _, email := range m.FindAll(text) {
			if m.Allowed(email) {
				return email
			}
		}
	}
	return ""
}

// PhoneMatcher finds Malaysian phone numbers: mobile numbers starting
// with 01x followed by 7 or 8 digits, and Klang Valley landlines of 03
// followed by 8 digits. Both accept a +60 style prefix and a single dash
// after the area code.
type PhoneMatcher struct {
	pattern *regexp.Regexp
}

// NewPhoneMatcher returns a PhoneMatcher.
func NewPhoneMatcher() *PhoneMatcher {
	return &PhoneMatcher{
		pattern: regexp.MustCompile(`\+?6?0?1[0-9]-?[0-9]{7,8}|\+?6?03-?[0-9]{8}`),
	}
}

// FindAll returns every phone-shaped match in text, in order.
func (m *PhoneMatcher) FindAll(text string) []string {
	return m.pattern.FindAllString(text, -1)
}

// First returns the first match in text, or "".
func (m *PhoneMatcher) First(text string) string {
	return m.pattern.FindString(text)
}

// TitleSuffix strips trailing boilerplate such as " - Home" from page titles.
type TitleSuffix struct {
	pattern *regexp.Regexp
}

// NewTitleSuffix returns a TitleSuffix for " - Home", " - Welcome" and
// " - Official Website", matched case-insensitively along with anything
// that follows them.
func NewTitleSuffix() *TitleSuffix {
	return &TitleSuffix{
		pattern: regexp.MustCompile(`(?i)\s*-\s*(Home|Welcome|Official Website).*$`),
	}
}

// Strip removes the suffix from title, if present.
func (t *TitleSuffix) Strip(title string) string {
	return t.pattern.ReplaceAllString(title, "")
}

// NameFromURL derives an organization name from the host of rawURL: the
// host is lowercased, a leading "www." is removed, then suffixes are
// stripped in order until none applies. Returns "" if rawURL has no host.
func NameFromURL(rawURL string, suffixes []string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	for {
		stripped := host
		for _, suffix := range suffixes {
			stripped = strings.TrimSuffix(stripped, suffix)
		}
		if stripped == host || stripped == "" {
			break
		}
		host = stripped
	}
	return host
}
