package orgscrape

import (
	"context"
	"strings"
	"time"
)

// NewsItem is one news article mentioning an organization.
type NewsItem struct {
	Title       string
	Link        string
	Source      string
	PublishedAt time.Time
}

// NewsService looks up recent news about an organization.
type NewsService interface {
	// SearchNews returns at most limit articles mentioning name.
	// An organization without coverage yields an empty slice, not an error.
	SearchNews(ctx context.Context, name string, limit int) ([]NewsItem, error)
}

// FormatNews renders items as a news signal: titles with their source,
// separated by "; " and truncated to MaxSignalLen.
func FormatNews(items []NewsItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		title := Normalize(item.Title)
		if title == "" {
			continue
		}
		if src := Normalize(item.Source); src != "" && !strings.HasSuffix(title, src) {
			title += " (" + src + ")"
		}
		parts = append(parts, title)
	}
	return Truncate(strings.Join(parts, "; "), MaxSignalLen)
}
