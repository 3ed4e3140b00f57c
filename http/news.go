package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/orgscrape"
)

// DefaultNewsURL is the Google News RSS search endpoint.
const DefaultNewsURL = "https://news.google.com/rss/search"

// Ensure NewsService implements orgscrape.NewsService.
var _ orgscrape.NewsService = (*NewsService)(nil)

// NewsService searches Google News RSS for coverage of an organization.
type NewsService struct {
	client  *http.Client
	baseURL string
}

// NewNewsService creates a new NewsService with the given HTTP client.
// If client is nil, http.DefaultClient is used. If baseURL is empty,
// DefaultNewsURL is used.
func NewNewsService(client *http.Client, baseURL string) *NewsService {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultNewsURL
	}
	return &NewsService{client: client, baseURL: baseURL}
}

// newsQuery builds the search terms for an organization.
func newsQuery(name string) string {
	return fmt.Sprintf("%q Malaysia social enterprise", name)
}

// SearchNews returns at most limit items from the feed for name.
func (s *NewsService) SearchNews(ctx context.Context, name string, limit int) ([]orgscrape.NewsItem, error) {
	name = orgscrape.Normalize(name)
	if name == "" {
		return nil, orgscrape.Errorf(orgscrape.EINVALID, "organization name required")
	}
	if limit <= 0 {
		return []orgscrape.NewsItem{}, nil
	}

	q := url.Values{}
	q.Set("q", newsQuery(name))
	q.Set("hl", "en-MY")
	q.Set("gl", "MY")
	q.Set("ceid", "MY:en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for news search", resp.StatusCode)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, orgscrape.Errorf(orgscrape.EPARSE, "parsing news feed: %v", err)
	}

	return parseFeed(doc, limit), nil
}

// parseFeed extracts up to limit items from an RSS document.
// Returns an empty slice (not nil) when the feed has no items.
func parseFeed(doc *etree.Document, limit int) []orgscrape.NewsItem {
	items := []orgscrape.NewsItem{}

	for _, el := range doc.FindElements("//item") {
		if len(items) == limit {
			break
		}

		item := orgscrape.NewsItem{
			Title: childText(el, "title"),
			Link:  childText(el, "link"),
		}
		if item.Title == "" {
			continue
		}
		if src := el.SelectElement("source"); src != nil {
			item.Source = strings.TrimSpace(src.Text())
		}
		if pub := childText(el, "pubDate"); pub != "" {
			if t, err := time.Parse(time.RFC1123, pub); err == nil {
				item.PublishedAt = t.UTC()
			} else if t, err := time.Parse(time.RFC1123Z, pub); err == nil {
				item.PublishedAt = t.UTC()
			}
		}
		items = append(items, item)
	}

	return items
}

func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}
