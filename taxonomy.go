package orgscrape

import "strings"

// FallbackSector is assigned when no sector keyword occurs on a page.
const FallbackSector = "Other"

// Sector is a named category with the keywords that vote for it.
type Sector struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Taxonomy assigns one sector to a page by keyword counting.
//
// Sector order is significant: when two sectors share the highest score,
// the one listed first wins.
type Taxonomy struct {
	Sectors  []Sector `json:"sectors" yaml:"sectors"`
	Fallback string   `json:"fallback" yaml:"fallback"`
}

// DefaultTaxonomy returns the built-in social enterprise taxonomy.
// Each call returns a fresh value.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		Sectors: []Sector{
			{Name: "Environment", Keywords: []string{"environment", "sustainability", "green", "eco", "conservation", "climate", "renewable"}},
			{Name: "Technology", Keywords: []string{"technology", "tech", "software", "digital", "app", "platform", "innovation"}},
			{Name: "Food", Keywords: []string{"food", "culinary", "restaurant", "cooking", "nutrition", "agriculture", "farming"}},
			{Name: "Education", Keywords: []string{"education", "learning", "school", "training", "knowledge", "skill", "academic"}},
			{Name: "Healthcare", Keywords: []string{"health", "medical", "wellness", "care", "therapy", "treatment"}},
			{Name: "Community", Keywords: []string{"community", "social", "empowerment", "development", "support", "help"}},
			{Name: "Water", Keywords: []string{"water", "clean water", "sanitation", "hygiene"}},
			{Name: "Finance", Keywords: []string{"finance", "financial", "microfinance", "banking", "funding"}},
			{Name: "Arts", Keywords: []string{"arts", "culture", "creative", "craft", "design"}},
			{Name: "Energy", Keywords: []string{"energy", "solar", "renewable", "power"}},
		},
		Fallback: FallbackSector,
	}
}

// Validate returns an error if the taxonomy cannot classify.
func (t Taxonomy) Validate() error {
	if len(t.Sectors) == 0 {
		return Errorf(EINVALID, "taxonomy requires at least one sector")
	}
	if strings.TrimSpace(t.Fallback) == "" {
		return Errorf(EINVALID, "taxonomy fallback sector required")
	}
	seen := make(map[string]bool, len(t.Sectors))
	for i, s := range t.Sectors {
		if strings.TrimSpace(s.Name) == "" {
			return Errorf(EINVALID, "sector %d: name required", i)
		}
		if seen[s.Name] {
			return Errorf(EINVALID, "sector %q listed twice", s.Name)
		}
		seen[s.Name] = true
		if len(s.Keywords) == 0 {
			return Errorf(EINVALID, "sector %q: at least one keyword required", s.Name)
		}
		for _, kw := range s.Keywords {
			if kw == "" {
				return Errorf(EINVALID, "sector %q: empty keyword", s.Name)
			}
		}
	}
	return nil
}

// SectorScore is the keyword count of one sector.
type SectorScore struct {
	Sector string
	Score  int
}

// Scores counts keyword occurrences per sector, in taxonomy order.
// Matching is case-insensitive substring counting; a keyword found inside
// a longer word still counts, and each keyword is counted on its own even
// where its hits overlap those of another keyword.
func (t Taxonomy) Scores(fullText, description string) []SectorScore {
	corpus := strings.ToLower(fullText) + " " + strings.ToLower(description)

	scores := make([]SectorScore, len(t.Sectors))
	for i, s := range t.Sectors {
		scores[i].Sector = s.Name
		for _, kw := range s.Keywords {
			scores[i].Score += strings.Count(corpus, strings.ToLower(kw))
		}
	}
	return scores
}

// Classify returns the sector with the strictly highest score. Ties go to
// the sector listed first; when every score is zero the fallback is
// returned.
func (t Taxonomy) Classify(fullText, description string) string {
	best, bestScore := t.Fallback, 0
	for _, s := range t.Scores(fullText, description) {
		if s.Score > bestScore {
			best, bestScore = s.Sector, s.Score
		}
	}
	return best
}
