package section

import (
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/use-agent/uncyclo/cleaner"
)

var headingSel = cascadia.MustCompile("h2")

// Locate finds the first h2 under root, in document order, whose text
// contains headingFragment (case-sensitive), and returns the first following
// sibling that is a div carrying contentClass. Siblings in between are
// skipped.
//
// MediaWiki 1.43+ wraps headings in div.mw-heading; when the heading itself
// has no such sibling the wrapper's following siblings are searched.
//
// A nil return means the section is absent. It is not an error.
func Locate(root *goquery.Selection, headingFragment, contentClass string) *goquery.Selection {
	var heading *goquery.Selection
	root.FindMatcher(headingSel).EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Contains(cleaner.Text(h), headingFragment) {
			heading = h
			return false
		}
		return true
	})
	if heading == nil {
		slog.Warn("section heading not found", "heading", headingFragment)
		return nil
	}

	block := nextBlock(heading, contentClass)
	if block == nil {
		if wrapper := heading.Parent(); wrapper.HasClass("mw-heading") {
			block = nextBlock(wrapper, contentClass)
		}
	}
	if block == nil {
		slog.Warn("section content block not found",
			"heading", headingFragment,
			"class", contentClass,
		)
	}
	return block
}

// nextBlock returns the first following sibling of sel that is a div with
// class, or nil.
func nextBlock(sel *goquery.Selection, class string) *goquery.Selection {
	var block *goquery.Selection
	sel.NextAll().EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if goquery.NodeName(s) == "div" && s.HasClass(class) {
			block = s
			return false
		}
		return true
	})
	return block
}
