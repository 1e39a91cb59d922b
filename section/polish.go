package section

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/use-agent/uncyclo/cleaner"
	"golang.org/x/net/html"
)

const (
	polishContentClass = "panelcss-content"
	eventSeparator     = " – "
	authorUnknown      = "Autor unknown"
	newestMarker       = "Z najnowszych artykułów:"
	archiveMarker      = "…i z naszych przepastnych archiwów:"
)

var (
	authorDivSel  = cascadia.MustCompile(`div[style*="margin-top"]`)
	authorLinkSel = cascadia.MustCompile(`a[title*="User:"], a[title*="commons:User"], a[title*="Użytkownik:"]`)
)

// Wisdom is "Mądrość ze słownika": a dictionary headword and its definition.
type Wisdom struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// RandomImage is "Losowa grafika".
type RandomImage struct {
	ImageURL *string `json:"image_url"`
	ImageAlt *string `json:"image_alt"`
	Author   string  `json:"author"`
}

// Trivia is "Czy nie wiesz": facts from new articles and from the archive.
type Trivia struct {
	Newest  []string `json:"newest"`
	Archive []string `json:"archive"`
}

// Holiday is "Święto na dziś".
type Holiday struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Events   Events  `json:"events"`
	ImageURL *string `json:"image_url"`
}

// NonNews is the NonNews panel, grouped by date.
type NonNews struct {
	Newest  []DatedNews `json:"newest"`
	Archive []DatedNews `json:"archive"`
}

// DatedNews is the headlines listed under one date.
type DatedNews struct {
	Date    string   `json:"date"`
	Content []string `json:"content"`
}

// MedalArticle is "Artykuł na medal", the Polish featured article.
type MedalArticle struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url"`
}

var errMalformed = errors.New("unexpected markup")

// Polish returns the sections of the Nonsensopedia main page.
func Polish(site Site) []Section {
	mk := func(slug, heading string, t Transform) Section {
		return Section{
			Slug:         slug,
			Site:         site,
			Heading:      heading,
			ContentClass: polishContentClass,
			Missing:      fmt.Sprintf("Could not find the content div for '%s' section.", heading),
			FetchFailure: fmt.Sprintf("Could not retrieve '%s' data.", heading),
			Transform:    t,
		}
	}
	return []Section{
		mk("madrosc", "Mądrość ze słownika", wisdom),
		mk("losowa-grafika", "Losowa grafika", randomImage),
		mk("czy-nie-wiesz", "Czy nie wiesz", trivia),
		mk("swieto", "Święto na dziś", holiday),
		mk("non-news", "NonNews", nonNews),
		mk("artykul-na-medal", "Artykuł na medal", medalArticle),
	}
}

func wisdom(block *goquery.Selection, _ Site) (any, error) {
	b := block.Find("b").First()
	if b.Length() == 0 {
		return nil, fmt.Errorf("madrosc: no headword: %w", errMalformed)
	}
	word := cleaner.Join(b, "")

	def := appendLoose("", block, false, "p", "div", "ul")
	def = strings.ReplaceAll(def, "Zobacz inne hasła", "")
	def = strings.ReplaceAll(def, word+eventSeparator, "")

	return Wisdom{Word: word, Definition: strings.TrimSpace(def)}, nil
}

func randomImage(block *goquery.Selection, site Site) (any, error) {
	var out RandomImage

	if img := block.Find("img").First(); img.Length() > 0 {
		src, _ := img.Attr("src")
		out.ImageURL = site.ImageURL(src)
		if alt, ok := img.Attr("alt"); ok {
			out.ImageAlt = &alt
		}
	}

	out.Author = authorUnknown
	if div := block.FindMatcher(authorDivSel).First(); div.Length() > 0 {
		if link := div.FindMatcher(authorLinkSel).First(); link.Length() > 0 {
			out.Author = cleaner.Join(link, "")
		} else if i := div.Find("i").First(); i.Length() > 0 {
			out.Author = strings.TrimSpace(strings.TrimPrefix(cleaner.Join(i, ""), "Autor:"))
		}
	}
	return out, nil
}

func trivia(block *goquery.Selection, _ Site) (any, error) {
	root := block.Get(0)
	return Trivia{
		Newest:  listUnder(root, newestMarker),
		Archive: listUnder(root, archiveMarker),
	}, nil
}

// listUnder returns the verbatim items of the list following marker.
func listUnder(root *html.Node, marker string) []string {
	header := findText(root, marker)
	if header == nil {
		return make([]string, 0)
	}
	ul := listAfter(header, root)
	if ul == nil {
		return make([]string, 0)
	}
	return listItems(wrap(ul), false, "")
}

func holiday(block *goquery.Selection, site Site) (any, error) {
	ps := block.Find("p")
	if ps.Length() == 0 {
		return nil, fmt.Errorf("swieto: no title paragraph: %w", errMalformed)
	}

	out := Holiday{
		Title:    cleaner.Text(ps.Eq(0)),
		ImageURL: site.ImageURL(firstImage(block)),
	}
	if ps.Length() > 1 {
		out.Subtitle = cleaner.Text(ps.Eq(1))
	}

	out.Events = make(Events, 0)
	block.Find("li").Each(func(_ int, li *goquery.Selection) {
		out.Events = out.Events.Set(splitRecord(cleaner.Text(li), eventSeparator))
	})
	return out, nil
}

// nonNews groups headlines under the date link of the paragraph preceding
// them. A bold paragraph switches between the newest and archive groups.
func nonNews(block *goquery.Selection, _ Site) (any, error) {
	out := NonNews{
		Newest:  make([]DatedNews, 0),
		Archive: make([]DatedNews, 0),
	}
	current := &out.Newest

	for _, n := range block.Contents().Nodes {
		if !isElement(n, "p") {
			continue
		}
		p := wrap(n)
		if b := p.Find("b").First(); b.Length() > 0 {
			if strings.Contains(cleaner.Text(b), "Najnowsze") {
				current = &out.Newest
			} else {
				current = &out.Archive
			}
		}

		a := p.Find("a").First()
		if a.Length() == 0 {
			continue
		}
		date := cleaner.Text(a)

		var headlines []string
		walkUntil(n, "p", func(s *html.Node) {
			if !isElement(s, "ul") {
				return
			}
			wrap(s).Find("li").Each(func(_ int, li *goquery.Selection) {
				if t := cleaner.Text(li.Find("a").First()); t != "" {
					headlines = append(headlines, t)
				}
			})
		})
		if len(headlines) == 0 {
			continue
		}

		group := *current
		if last := len(group) - 1; last >= 0 && group[last].Date == date {
			group[last].Content = append(group[last].Content, headlines...)
		} else {
			group = append(group, DatedNews{Date: date, Content: headlines})
		}
		*current = group
	}
	return out, nil
}

func medalArticle(block *goquery.Selection, site Site) (any, error) {
	b := block.Find("p").First().Find("b").First()
	if b.Length() == 0 {
		return nil, fmt.Errorf("artykul-na-medal: no bold title: %w", errMalformed)
	}

	var parts []string
	block.Find("p").Each(func(_ int, p *goquery.Selection) {
		parts = append(parts, cleaner.Tidy(cleaner.JoinRaw(p, " ")))
	})

	return MedalArticle{
		Title:       cleaner.Join(b, ""),
		Description: strings.TrimRightFunc(strings.Join(parts, "\n"), unicode.IsSpace),
		ImageURL:    site.ImageURL(firstImage(block)),
	}, nil
}
