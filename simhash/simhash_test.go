package simhash

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseBody(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><body>" + s + "</body></html>"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// html > body
	return doc.FirstChild.LastChild
}

func TestSum_Deterministic(t *testing.T) {
	f := []string{"0:div.mp-content", "1:p", "2:a"}
	if Sum(f) != Sum(f) {
		t.Error("same features produced different fingerprints")
	}
}

func TestSum_Empty(t *testing.T) {
	if fp := Sum(nil); fp != 0 {
		t.Errorf("no features should produce 0, got %064b", fp)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b uint64
		want int
	}{
		{"identical", 0xFF, 0xFF, 0},
		{"all different", 0, ^uint64(0), 64},
		{"one bit", 0, 1, 1},
		{"two bits", 0, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0xabc); got != "0000000000000abc" {
		t.Errorf("Hex = %q", got)
	}
}

func TestMarkup_IgnoresText(t *testing.T) {
	a := parseBody(t, `<div class="mp-content"><p>Potatoes <a href="/a">rule</a></p><ul><li>x</li></ul></div>`)
	b := parseBody(t, `<div class="mp-content"><p>Turnips <a href="/b">drool</a></p><ul><li>y</li></ul></div>`)

	if Markup(a) != Markup(b) {
		t.Errorf("same structure, different text: distance %d", Distance(Markup(a), Markup(b)))
	}
}

func TestMarkup_ClassOrderIrrelevant(t *testing.T) {
	a := parseBody(t, `<div class="mp-panel mp-green"><p></p><p></p></div>`)
	b := parseBody(t, `<div class="mp-green  mp-panel"><p></p><p></p></div>`)

	if Markup(a) != Markup(b) {
		t.Error("class order should not change the fingerprint")
	}
}

func TestMarkup_DetectsLayoutChange(t *testing.T) {
	before := parseBody(t, `<div class="mp-content"><p>a</p><p>b</p><p>c</p><ul><li>1</li><li>2</li></ul></div>`)
	after := parseBody(t, `<div class="mp-content"><table><tr><td>a</td><td>b</td></tr><tr><td>c</td></tr></table></div>`)

	if d := Distance(Markup(before), Markup(after)); d < 3 {
		t.Errorf("layout change should move the fingerprint, distance %d", d)
	}
}

func TestMarkup_NoElements(t *testing.T) {
	n := &html.Node{Type: html.TextNode, Data: "plain"}
	if fp := Markup(n); fp != 0 {
		t.Errorf("text-only tree should produce 0, got %064b", fp)
	}
}

func TestStructure(t *testing.T) {
	root := parseBody(t, `<div class="b a"><p><i>x</i></p></div>`)
	got := structure(root, 0, nil)
	want := []string{"0:body", "1:div.a.b", "2:p", "3:i"}

	if len(got) != len(want) {
		t.Fatalf("structure = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestShingles(t *testing.T) {
	got := shingles([]string{"a", "b", "c", "d"}, 3)
	want := []string{"a|b|c", "b|c|d"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("shingles = %v, want %v", got, want)
	}
	if shingles([]string{"a", "b"}, 3) != nil {
		t.Error("expected nil for fewer tokens than k")
	}
}
