package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/orgscrape"
	"github.com/fwojciec/orgscrape/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Taxonomy   orgscrape.Taxonomy
	Extractor  orgscrape.Extractor
	Records    orgscrape.RecordService
	Runner     *batch.Runner
	News       orgscrape.NewsService
	Summarizer orgscrape.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" env:"ORGSCRAPE_DB" help:"Directory database path"`
	LogLevel string `name:"log-level" env:"ORGSCRAPE_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	Taxonomy string `name:"taxonomy" env:"ORGSCRAPE_TAXONOMY" help:"YAML sector taxonomy file (default: built-in)"`

	Scrape   ScrapeCmd   `cmd:"" help:"Scrape organization websites into the directory"`
	List     ListCmd     `cmd:"" help:"List organizations in the directory"`
	Export   ExportCmd   `cmd:"" help:"Export the directory as JSON"`
	Enrich   EnrichCmd   `cmd:"" help:"Refresh news signals from Google News"`
	Report   ReportCmd   `cmd:"" help:"Write a landscape report"`
	Classify ClassifyCmd `cmd:"" help:"Extract a record from a saved HTML page"`
	Tax      TaxonomyCmd `cmd:"" name:"taxonomy" help:"Print the sector taxonomy as YAML"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" optional:"" help:"Organization website URLs"`
	File        string   `short:"f" help:"File with one URL per line ('-' for stdin)"`
	Render      bool     `short:"r" help:"Render pages with headless Chrome"`
	Concurrency int      `short:"c" default:"5" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1" help:"Requests per second per domain (0 disables)"`
	BatchSize   int      `default:"10" help:"Records saved per batch"`
	Out         string   `short:"o" help:"Also write the scraped records to this JSON file"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Sector string `short:"s" help:"Only list this sector"`
	Name   string `short:"n" help:"Only list names containing this text"`
	Limit  int    `default:"50" help:"Maximum organizations to list (0 for all)"`
	Offset int    `help:"Organizations to skip"`
	Counts bool   `help:"Show organization counts per sector instead"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path   string `arg:"" help:"Output JSON file ('-' for stdout)"`
	Sector string `short:"s" help:"Only export this sector"`
}

// EnrichCmd is the "enrich" subcommand.
type EnrichCmd struct {
	Max    int    `default:"3" help:"News items per organization"`
	Sector string `short:"s" help:"Only enrich this sector"`
	Limit  int    `help:"Maximum organizations to enrich (0 for all)"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Focus  string `short:"q" help:"Only report organizations matching this search term"`
	AI     bool   `name:"ai" help:"Ask Gemini for an analysis"`
	APIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model  string `help:"Gemini model (default: gemini-2.5-flash)"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	Path string `arg:"" type:"existingfile" help:"Saved HTML page"`
	URL  string `required:"" help:"URL the page was saved from"`
}

// TaxonomyCmd is the "taxonomy" subcommand.
type TaxonomyCmd struct{}
