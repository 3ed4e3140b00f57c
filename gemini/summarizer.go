// Package gemini provides a landscape Summarizer backed by Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/orgscrape"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// promptRecords is the number of organizations listed in the prompt.
const promptRecords = 10

// Ensure Summarizer implements orgscrape.Summarizer at compile time.
var _ orgscrape.Summarizer = (*Summarizer)(nil)

// Summarizer implements orgscrape.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer for model, or DefaultModel if empty.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// NewClient creates a Gemini API client for apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, orgscrape.Errorf(orgscrape.EINVALID, "gemini API key required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// Summarize asks Gemini for a markdown analysis of records.
func (s *Summarizer) Summarize(ctx context.Context, records []*orgscrape.Record, focus string) (string, error) {
	if len(records) == 0 {
		return "", orgscrape.Errorf(orgscrape.ENOTFOUND, "no records to summarize")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(records, focus)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", orgscrape.Errorf(orgscrape.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an analyst of the Malaysian social enterprise landscape. Base your analysis only on the organizations provided.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the analysis prompt: sector distribution, the
// first organizations with short descriptions, and the report outline.
func BuildUserPrompt(records []*orgscrape.Record, focus string) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following social enterprises data and provide insights.\n\n")
	if focus != "" {
		fmt.Fprintf(&sb, "Search term: %q\n", focus)
	}
	fmt.Fprintf(&sb, "Total organizations: %d\n\n", len(records))

	sb.WriteString("<sectors>\n")
	for _, sc := range orgscrape.CountSectors(records) {
		fmt.Fprintf(&sb, "<sector name=%q count=\"%d\"/>\n", sc.Sector, sc.Count)
	}
	sb.WriteString("</sectors>\n\n")

	sb.WriteString("<organizations>\n")
	for i, r := range records {
		if i == promptRecords {
			break
		}
		sb.WriteString("<organization>\n")
		fmt.Fprintf(&sb, "<name>%s</name>\n", r.Name)
		fmt.Fprintf(&sb, "<sector>%s</sector>\n", r.Sector)
		fmt.Fprintf(&sb, "<description>%s</description>\n", orgscrape.Truncate(r.Description, 100))
		if r.Programs != "" {
			fmt.Fprintf(&sb, "<programs>%s</programs>\n", r.Programs)
		}
		if r.News != "" {
			fmt.Fprintf(&sb, "<news>%s</news>\n", r.News)
		}
		sb.WriteString("</organization>\n")
	}
	sb.WriteString("</organizations>\n\n")

	sb.WriteString(`Write a markdown report with these sections:
1. Executive Summary: key findings and overview
2. Sector Analysis: distribution and trends
3. Innovation Highlights: notable organizations and approaches
4. Market Opportunities: potential collaboration areas
5. Recommendations: strategic suggestions
`)
	return sb.String()
}
