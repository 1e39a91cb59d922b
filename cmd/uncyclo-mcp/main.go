package main

import (
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/use-agent/uncyclo/config"
	"github.com/use-agent/uncyclo/engine"
	"github.com/use-agent/uncyclo/scraper"
	"github.com/use-agent/uncyclo/section"
)

func main() {
	cfg := config.Load()

	// stdout carries the MCP protocol; logs go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	sc := scraper.New(engine.NewHTTPEngine(cfg.Fetch), cfg.Fetch.Timeout)
	sections := section.Catalog(
		section.EnglishSite(cfg.Sites.EnglishURL),
		section.PolishSite(cfg.Sites.PolishURL),
	)

	s := server.NewMCPServer(
		"uncyclo",
		"0.1.0",
		server.WithToolCapabilities(false),
	)
	registerTools(s, sc, sections)

	if err := server.ServeStdio(s); err != nil {
		slog.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
