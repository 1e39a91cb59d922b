package scraper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/use-agent/uncyclo/engine"
	"github.com/use-agent/uncyclo/models"
)

type stubEngine struct {
	html  string
	err   error
	delay time.Duration
}

func (e *stubEngine) Name() string { return "stub" }

func (e *stubEngine) Fetch(ctx context.Context, req *engine.FetchRequest) (*engine.FetchResult, error) {
	if e.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, models.NewFetchError(models.ErrCodeTimeout, req.URL, ctx.Err())
		case <-time.After(e.delay):
		}
	}
	if e.err != nil {
		return nil, e.err
	}
	return &engine.FetchResult{HTML: e.html, StatusCode: 200, FinalURL: req.URL, EngineName: e.Name()}, nil
}

func TestFetch_ParsesDocument(t *testing.T) {
	sc := New(&stubEngine{html: `<html><body><h2 id="x">Did you know...</h2></body></html>`}, time.Second)

	doc := sc.Fetch(context.Background(), "http://wiki.test/Main_Page")
	if doc == nil {
		t.Fatal("expected a document")
	}
	if got := doc.Find("h2#x").Text(); got != "Did you know..." {
		t.Errorf("heading text = %q", got)
	}
}

func TestFetch_EngineErrorYieldsNil(t *testing.T) {
	sc := New(&stubEngine{err: models.NewFetchError(models.ErrCodeUpstreamStatus, "u", errors.New("HTTP 500"))}, time.Second)

	if doc := sc.Fetch(context.Background(), "http://wiki.test/Main_Page"); doc != nil {
		t.Error("expected nil document on engine failure")
	}
}

func TestFetch_TimeoutYieldsNil(t *testing.T) {
	sc := New(&stubEngine{html: "<html></html>", delay: time.Second}, 20*time.Millisecond)

	start := time.Now()
	doc := sc.Fetch(context.Background(), "http://wiki.test/Main_Page")
	if doc != nil {
		t.Error("expected nil document on timeout")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("fetch was not bounded by the timeout: %v", elapsed)
	}
}

func TestFetchDocument_ReturnsCode(t *testing.T) {
	sc := New(&stubEngine{html: "<html></html>", delay: time.Second}, 10*time.Millisecond)

	_, err := sc.FetchDocument(context.Background(), "http://wiki.test/Main_Page")
	var fe *models.FetchError
	if !errors.As(err, &fe) || fe.Code != models.ErrCodeTimeout {
		t.Fatalf("expected timeout FetchError, got %v", err)
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	sc := New(&stubEngine{}, 0)
	if sc.timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", sc.timeout)
	}
}
