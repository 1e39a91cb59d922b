package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/uncyclo/engine"
	"github.com/use-agent/uncyclo/models"
)

// Scraper is the page fetcher: one timed GET, one parse, no state kept
// between calls. It is safe for concurrent use.
type Scraper struct {
	engine  engine.Engine
	timeout time.Duration
}

// New creates a Scraper that fetches through eng and bounds every fetch by
// timeout. A non-positive timeout falls back to 10s.
func New(eng engine.Engine, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Scraper{engine: eng, timeout: timeout}
}

// Fetch retrieves url and parses it into a queryable document.
//
// Any failure (network error, timeout, non-2xx status, parse error) is
// logged and reported as nil; callers treat nil as "page unavailable".
func (s *Scraper) Fetch(ctx context.Context, url string) *goquery.Document {
	doc, err := s.FetchDocument(ctx, url)
	if err != nil {
		code := models.ErrCodeFetch
		var fe *models.FetchError
		if errors.As(err, &fe) {
			code = fe.Code
		}
		slog.Warn("error fetching page", "url", url, "code", code, "error", err)
		return nil
	}
	return doc
}

// FetchDocument is Fetch with the error returned instead of logged.
func (s *Scraper) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	res, err := s.engine.Fetch(ctx, &engine.FetchRequest{URL: url})
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(res.HTML))
	if err != nil {
		return nil, models.NewFetchError(models.ErrCodeParse, url, fmt.Errorf("scraper: parse: %w", err))
	}

	slog.Debug("page fetched",
		"url", url,
		"final_url", res.FinalURL,
		"engine", res.EngineName,
		"bytes", len(res.HTML),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}
