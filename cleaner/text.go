package cleaner

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// spacingFixups undo the spaces that separator-joined text extraction leaves
// before punctuation and inside parentheses. Applied in order; each pass
// sees the output of the previous one.
var spacingFixups = [][2]string{
	{" .", "."},
	{" ,", ","},
	{" !", "!"},
	{" ?", "?"},
	{"( ", "("},
	{" )", ")"},
}

// Tidy applies the spacing fixups to s.
func Tidy(s string) string {
	for _, f := range spacingFixups {
		s = strings.ReplaceAll(s, f[0], f[1])
	}
	return s
}

// TrimMarker strips marker from the end of s and trims surrounding
// whitespace. s is returned untouched when it does not end with marker.
func TrimMarker(s, marker string) string {
	if !strings.HasSuffix(s, marker) {
		return s
	}
	return strings.TrimSpace(strings.TrimSuffix(s, marker))
}

// Text returns the concatenated text of every node in sel, verbatim.
func Text(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n, nil)
	}
	return b.String()
}

// Join collects every text node under sel, trims each, drops the empty ones
// and joins the rest with sep.
func Join(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		parts = appendStrings(parts, n)
	}
	return strings.Join(parts, sep)
}

// JoinRaw joins every text node under sel with sep, untrimmed, keeping
// whitespace-only nodes.
func JoinRaw(sel *goquery.Selection, sep string) string {
	var parts []string
	for _, n := range sel.Nodes {
		parts = appendRaw(parts, n)
	}
	return strings.Join(parts, sep)
}

// NodeText returns the verbatim text of n, skipping the subtrees in skip.
func NodeText(n *html.Node, skip ...*html.Node) string {
	var b strings.Builder
	writeText(&b, n, skip)
	return b.String()
}

// NodeJoin is Join for a single node.
func NodeJoin(n *html.Node, sep string) string {
	return strings.Join(appendStrings(nil, n), sep)
}

func writeText(b *strings.Builder, n *html.Node, skip []*html.Node) {
	for _, s := range skip {
		if n == s {
			return
		}
	}
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, skip)
	}
}

func appendStrings(parts []string, n *html.Node) []string {
	switch n.Type {
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			parts = append(parts, t)
		}
		return parts
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return parts
		}
	case html.CommentNode:
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendStrings(parts, c)
	}
	return parts
}

func appendRaw(parts []string, n *html.Node) []string {
	switch n.Type {
	case html.TextNode:
		return append(parts, n.Data)
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return parts
		}
	case html.CommentNode:
		return parts
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = appendRaw(parts, c)
	}
	return parts
}
