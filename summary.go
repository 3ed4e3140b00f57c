package orgscrape

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Summarizer produces a written analysis of a set of records.
type Summarizer interface {
	// Summarize returns a markdown report on records. focus narrows the
	// analysis to a search term and may be empty.
	Summarize(ctx context.Context, records []*Record, focus string) (string, error)
}

// SectorCount is the number of records in one sector.
type SectorCount struct {
	Sector string
	Count  int
}

// CountSectors tallies records per sector, largest first, ties by name.
func CountSectors(records []*Record) []SectorCount {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Sector]++
	}

	out := make([]SectorCount, 0, len(counts))
	for sector, n := range counts {
		out = append(out, SectorCount{Sector: sector, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}

// BasicSummary renders a markdown report of the sector distribution and
// the first ten organizations without calling any model.
func BasicSummary(records []*Record, focus string) string {
	var b strings.Builder
	b.WriteString("# Social Enterprise Landscape\n\n")
	if focus != "" {
		fmt.Fprintf(&b, "Search term: %q\n\n", focus)
	}
	fmt.Fprintf(&b, "Total organizations: %d\n\n", len(records))
	if len(records) == 0 {
		return b.String()
	}

	b.WriteString("## Sectors\n\n")
	for _, sc := range CountSectors(records) {
		fmt.Fprintf(&b, "- %s: %d\n", sc.Sector, sc.Count)
	}

	b.WriteString("\n## Organizations\n\n")
	for i, r := range records {
		if i == 10 {
			fmt.Fprintf(&b, "- and %d more\n", len(records)-10)
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %s\n", r.Name, r.Sector, Truncate(r.Description, 100))
	}
	return b.String()
}

// Search returns the records whose name, sector or description contains
// term, ignoring case. An empty term matches every record.
func Search(records []*Record, term string) []*Record {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	var out []*Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Sector), term) ||
			strings.Contains(strings.ToLower(r.Description), term) {
			out = append(out, r)
		}
	}
	return out
}
