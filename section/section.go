package section

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/use-agent/uncyclo/cleaner"
	"github.com/use-agent/uncyclo/models"
)

// Outcome tags how a section request ended.
type Outcome int

const (
	Found Outcome = iota
	NotFound
	FetchFailed
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not_found"
	case FetchFailed:
		return "fetch_failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the tagged outcome of one section extraction. Fields is set
// only when Outcome is Found; Reason only otherwise.
type Result struct {
	Outcome Outcome
	Fields  any
	Reason  string
}

// Body is the JSON response body: the section fields, or the error sentinel.
func (r Result) Body() any {
	if r.Outcome == Found {
		return r.Fields
	}
	return models.ErrorBody{Error: r.Reason}
}

// Transform turns a located content block into section fields. It must not
// modify the block.
type Transform func(block *goquery.Selection, site Site) (any, error)

// Section is the extraction policy for one main-page panel.
type Section struct {
	// Slug is the route path segment, e.g. "featured-article".
	Slug string

	Site         Site
	Heading      string
	ContentClass string

	// Missing is the error sentinel text when the block cannot be located
	// or its markup does not have the expected shape.
	Missing string

	// FetchFailure is the error sentinel text when the page is unavailable.
	FetchFailure string

	// Fallback, when set, is tried if the heading lookup finds nothing.
	Fallback cascadia.Selector

	Transform Transform
}

// Fetcher retrieves a parsed page, or nil when it is unavailable.
type Fetcher interface {
	Fetch(ctx context.Context, url string) *goquery.Document
}

// Block locates the section's content block in doc, or returns nil.
func (s Section) Block(doc *goquery.Document) *goquery.Selection {
	if block := Locate(doc.Selection, s.Heading, s.ContentClass); block != nil {
		return block
	}
	if s.Fallback != nil {
		if block := doc.FindMatcher(s.Fallback).First(); block.Length() > 0 {
			slog.Debug("section located by fallback selector", "section", s.Slug)
			return block
		}
	}
	return nil
}

// Extract locates the block and applies the transform. Malformed markup,
// whether reported by the transform or surfacing as a panic, yields the
// same NotFound result as a missing block.
func (s Section) Extract(doc *goquery.Document) (res Result) {
	block := s.Block(doc)
	if block == nil {
		return Result{Outcome: NotFound, Reason: s.Missing}
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("section transform panicked", "section", s.Slug, "panic", r)
			res = Result{Outcome: NotFound, Reason: s.Missing}
		}
	}()

	fields, err := s.Transform(block, s.Site)
	if err != nil {
		slog.Error("section markup malformed", "section", s.Slug, "error", err)
		return Result{Outcome: NotFound, Reason: s.Missing}
	}
	return Result{Outcome: Found, Fields: fields}
}

// Run fetches the section's page and extracts it.
func (s Section) Run(ctx context.Context, f Fetcher) Result {
	doc := f.Fetch(ctx, s.Site.MainPage)
	if doc == nil {
		return Result{Outcome: FetchFailed, Reason: s.FetchFailure}
	}
	return s.Extract(doc)
}

// Markdown renders the section's content block as Markdown.
func (s Section) Markdown(doc *goquery.Document) (string, error) {
	block := s.Block(doc)
	if block == nil {
		return "", fmt.Errorf("section %s: %s", s.Slug, s.Missing)
	}
	raw, err := goquery.OuterHtml(block)
	if err != nil {
		return "", fmt.Errorf("section %s: render block: %w", s.Slug, err)
	}
	raw, err = cleaner.Strip(raw, cleaner.Noise)
	if err != nil {
		return "", fmt.Errorf("section %s: strip block: %w", s.Slug, err)
	}
	return cleaner.ToMarkdown(raw, s.Site.BaseURL)
}

// Catalog returns every section of both sites, English first.
func Catalog(en, pl Site) []Section {
	return append(English(en), Polish(pl)...)
}

// Lookup finds a section by slug.
func Lookup(sections []Section, slug string) (Section, bool) {
	for _, s := range sections {
		if s.Slug == slug {
			return s, true
		}
	}
	return Section{}, false
}
