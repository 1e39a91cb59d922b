package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/use-agent/uncyclo/section"
)

// documentFetcher is section.Fetcher plus the error-returning variant the
// markdown tool uses to report why a page was unavailable.
type documentFetcher interface {
	section.Fetcher
	FetchDocument(ctx context.Context, url string) (*goquery.Document, error)
}

// toolName maps a route slug to an MCP tool name: "on-this-day" → "on_this_day".
func toolName(slug string) string {
	return strings.ReplaceAll(slug, "-", "_")
}

// registerTools adds one tool per section plus section_markdown.
func registerTools(s *server.MCPServer, f documentFetcher, sections []section.Section) {
	slugs := make([]string, 0, len(sections))
	for _, sec := range sections {
		slugs = append(slugs, sec.Slug)

		tool := mcp.NewTool(toolName(sec.Slug),
			mcp.WithDescription(fmt.Sprintf("Return the %q section of the %s main page as JSON.", sec.Heading, sec.Site.Name)),
		)
		s.AddTool(tool, handleSection(f, sec))
	}

	markdownTool := mcp.NewTool("section_markdown",
		mcp.WithDescription("Return one main-page section rendered as Markdown instead of structured fields."),
		mcp.WithString("section",
			mcp.Required(),
			mcp.Description("Section slug, as listed by GET /sections"),
			mcp.Enum(slugs...),
		),
	)
	s.AddTool(markdownTool, handleMarkdown(f, sections))
}

func handleSection(f section.Fetcher, sec section.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res := sec.Run(ctx, f)
		if res.Outcome != section.Found {
			return mcp.NewToolResultError(res.Reason), nil
		}

		out, err := json.MarshalIndent(res.Fields, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode section: %v", err)), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

func handleMarkdown(f documentFetcher, sections []section.Section) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		slug, err := request.RequireString("section")
		if err != nil {
			return mcp.NewToolResultError("section is required"), nil
		}

		sec, ok := section.Lookup(sections, slug)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown section %q", slug)), nil
		}

		doc, err := f.FetchDocument(ctx, sec.Site.MainPage)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s (%v)", sec.FetchFailure, err)), nil
		}

		md, err := sec.Markdown(doc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(md), nil
	}
}
