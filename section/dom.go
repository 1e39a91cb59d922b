package section

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/use-agent/uncyclo/cleaner"
	"golang.org/x/net/html"
)

// walkUntil visits the siblings following start, in order, and stops at the
// first element named stop, which it returns. It returns nil when the
// siblings run out first. visit may be nil.
func walkUntil(start *html.Node, stop string, visit func(*html.Node)) *html.Node {
	for n := start.NextSibling; n != nil; n = n.NextSibling {
		if isElement(n, stop) {
			return n
		}
		if visit != nil {
			visit(n)
		}
	}
	return nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func wrap(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// firstImage returns the src of the first <img> under block, or "".
func firstImage(block *goquery.Selection) string {
	src, _ := block.Find("img").First().Attr("src")
	return src
}

// listItems returns the text of every <li> under sel, in document order.
// With strip set, each item is joined from its trimmed text nodes using sep;
// otherwise the text is kept verbatim. The result is never nil.
func listItems(sel *goquery.Selection, strip bool, sep string) []string {
	items := make([]string, 0)
	sel.Find("li").Each(func(_ int, li *goquery.Selection) {
		if strip {
			items = append(items, cleaner.Join(li, sep))
		} else {
			items = append(items, cleaner.Text(li))
		}
	})
	return items
}

// paragraphs joins the text of each <p> under sel with newlines and applies
// the spacing fixups.
func paragraphs(sel *goquery.Selection) string {
	var parts []string
	sel.Find("p").Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, cleaner.Join(p, " "))
	})
	return cleaner.Tidy(strings.Join(parts, "\n"))
}

// appendLoose appends the text of container's direct children that are not
// one of the skipped elements, one line each, skipping text already present
// in s. Each child's text is trimmed when strip is set.
func appendLoose(s string, container *goquery.Selection, strip bool, skip ...string) string {
	for _, c := range container.Contents().Nodes {
		if c.Type == html.CommentNode || skipped(c, skip) {
			continue
		}
		var text string
		switch {
		case c.Type == html.TextNode && strip:
			text = strings.TrimSpace(c.Data)
		case strip:
			text = cleaner.NodeJoin(c, "")
		default:
			text = cleaner.NodeText(c)
		}
		if text == "" || strings.Contains(s, text) {
			continue
		}
		if strings.TrimSpace(s) != "" {
			s += "\n" + text
		} else {
			s += text
		}
	}
	return s
}

func skipped(n *html.Node, tags []string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, t := range tags {
		if n.Data == t {
			return true
		}
	}
	return false
}

// splitRecord splits line at the first sep into a date and an event. The
// rest of the line is concatenated without sep; a line with no sep yields
// an empty event.
func splitRecord(line, sep string) (date, event string) {
	parts := strings.Split(line, sep)
	return parts[0], strings.Join(parts[1:], "")
}

// findText returns the first text node under root containing marker.
func findText(root *html.Node, marker string) *html.Node {
	if root.Type == html.TextNode && strings.Contains(root.Data, marker) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := findText(c, marker); n != nil {
			return n
		}
	}
	return nil
}

// listAfter finds the first <ul> after n in document order: inside the
// siblings following n, then inside the siblings following each enclosing
// element, up to (not including) stopAt.
func listAfter(n, stopAt *html.Node) *html.Node {
	for ; n != nil && n != stopAt; n = n.Parent {
		for s := n.NextSibling; s != nil; s = s.NextSibling {
			if ul := firstElement(s, "ul"); ul != nil {
				return ul
			}
		}
	}
	return nil
}

// firstElement returns n or its first descendant named tag, in document order.
func firstElement(n *html.Node, tag string) *html.Node {
	if isElement(n, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }
