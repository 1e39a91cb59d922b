package simhash

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Markup fingerprints the element structure under root. Text and attributes
// other than class are ignored, so a block fingerprints the same day to day
// while its markup is unchanged.
func Markup(root *html.Node) uint64 {
	tokens := structure(root, 0, nil)
	if len(tokens) == 0 {
		return 0
	}
	if sh := shingles(tokens, 3); len(sh) > 0 {
		return Sum(sh)
	}
	return Sum([]string{strings.Join(tokens, " ")})
}

// structure lists one token per element in document order:
// depth, tag name and sorted classes, e.g. "2:div.floatright".
func structure(n *html.Node, depth int, out []string) []string {
	if n.Type == html.ElementNode {
		var b strings.Builder
		b.WriteString(strconv.Itoa(depth))
		b.WriteByte(':')
		b.WriteString(n.Data)
		for _, c := range classes(n) {
			b.WriteByte('.')
			b.WriteString(c)
		}
		out = append(out, b.String())
		depth++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = structure(c, depth, out)
	}
	return out
}

func classes(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			cs := strings.Fields(a.Val)
			sort.Strings(cs)
			return cs
		}
	}
	return nil
}

// shingles returns the k-token windows of tokens, or nil when there are
// fewer than k tokens.
func shingles(tokens []string, k int) []string {
	if len(tokens) < k {
		return nil
	}
	out := make([]string, 0, len(tokens)-k+1)
	for i := 0; i+k <= len(tokens); i++ {
		out = append(out, strings.Join(tokens[i:i+k], "|"))
	}
	return out
}
