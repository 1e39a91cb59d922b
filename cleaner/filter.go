package cleaner

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Noise matches panel furniture that carries no content: edit links,
// reference markers, print-hidden navigation and inline scripts or styles.
var Noise = cascadia.MustCompile("script, style, span.mw-editsection, sup.reference, .noprint, .navbox")

// Strip parses rawHTML as a body fragment, removes every element matching
// sel together with its subtree, and renders what is left.
func Strip(rawHTML string, sel cascadia.Selector) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(rawHTML), body)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if n.Type == html.ElementNode && sel.Match(n) {
			continue
		}
		for _, m := range sel.MatchAll(n) {
			if m.Parent != nil {
				m.Parent.RemoveChild(m)
			}
		}
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
