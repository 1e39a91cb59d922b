package cleaner

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, s string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestTidy_JoinedParagraphs(t *testing.T) {
	got := Tidy(strings.Join([]string{"Hello ,", "World ."}, "\n"))
	if got != "Hello,\nWorld." {
		t.Errorf("Tidy = %q, want %q", got, "Hello,\nWorld.")
	}
}

func TestTidy_Parentheses(t *testing.T) {
	got := Tidy("Bob ( the builder ) said hi !")
	if got != "Bob (the builder) said hi!" {
		t.Errorf("Tidy = %q", got)
	}
}

func TestTidy_Ordered(t *testing.T) {
	// Once " ." has collapsed there is no "( " left for the paren fixup.
	got := Tidy("a ( .b")
	if got != "a (.b" {
		t.Errorf("Tidy = %q, want %q", got, "a (.b")
	}
}

func TestTrimMarker(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"suffix removed", "Potatoes are people too. (Full article...)", "Potatoes are people too."},
		{"no suffix", "Nothing to see (here)", "Nothing to see (here)"},
		{"marker mid-text", "(Full article...) then more", "(Full article...) then more"},
		{"only marker", " (Full article...)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimMarker(tt.in, " (Full article...)"); got != tt.want {
				t.Errorf("TrimMarker(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoin_StripsAndSeparates(t *testing.T) {
	doc := mustDoc(t, `<p id="p">  Oscar <a href="/w">Wilde</a> , <b> author </b><script>x()</script><!-- c --></p>`)
	got := Join(doc.Find("#p"), " ")
	if got != "Oscar Wilde , author" {
		t.Errorf("Join = %q", got)
	}
	if got := Join(doc.Find("#p"), ""); got != "OscarWilde,author" {
		t.Errorf("Join empty sep = %q", got)
	}
}

func TestText_Verbatim(t *testing.T) {
	doc := mustDoc(t, `<ul><li id="a"> one <i>two</i>
</li></ul>`)
	got := Text(doc.Find("#a"))
	if got != " one two\n" {
		t.Errorf("Text = %q", got)
	}
}

func TestNodeText_Skip(t *testing.T) {
	doc := mustDoc(t, `<table><tr><td id="c">Caption text <p>by <a>Someone</a></p></td></tr></table>`)
	td := doc.Find("#c").Get(0)
	p := doc.Find("#c p").Get(0)
	if got := NodeText(td, p); got != "Caption text " {
		t.Errorf("NodeText = %q", got)
	}
	if got := NodeJoin(td, " "); got != "Caption text by Someone" {
		t.Errorf("NodeJoin = %q", got)
	}
}

func TestJoinRaw_KeepsWhitespace(t *testing.T) {
	doc := mustDoc(t, `<p id="p">Ryby <a>głosu</a> nie mają .</p>`)
	got := JoinRaw(doc.Find("#p"), " ")
	if got != "Ryby  głosu  nie mają ." {
		t.Errorf("JoinRaw = %q", got)
	}
	if Tidy(got) != "Ryby  głosu  nie mają." {
		t.Errorf("Tidy(JoinRaw) = %q", Tidy(got))
	}
}
