package section

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/use-agent/uncyclo/cleaner"
	"golang.org/x/net/html"
)

const (
	englishContentClass = "mp-content"
	fullArticleMarker   = " (Full article...)"
	titleNotFound       = "Title not found"
	creditNotFound      = "Credit not found"
)

var (
	featuredPanelSel = cascadia.MustCompile(".mp-panel.mp-green .mp-content")
	newsCaptionSel   = cascadia.MustCompile(`div[style*="font-size:94%"]`)
	userLinkSel      = cascadia.MustCompile(`a[title*="User:"]`)
	bodyDivSel       = cascadia.MustCompile("div.mw-body")
)

// FeaturedArticle is the featured-article panel.
type FeaturedArticle struct {
	Title       string  `json:"title"`
	ImageURL    *string `json:"image_url"`
	Description string  `json:"description"`
}

// DidYouKnow is the English trivia list.
type DidYouKnow struct {
	Content  []string `json:"content"`
	ImageURL *string  `json:"image_url"`
}

// News is the "In the news" panel. The three ticker lists are null when the
// panel has no matching paragraph.
type News struct {
	Content          []string `json:"content"`
	Ongoing          []string `json:"ongoing"`
	RecentDeaths     []string `json:"recent_deaths"`
	UpcomingDeaths   []string `json:"upcoming_deaths"`
	ImageURL         *string  `json:"image_url"`
	ImageDescription *string  `json:"image_description"`
}

// Picture is the picture of the day. Title and ImageCredit are omitted when
// the panel has no caption cell.
type Picture struct {
	Title       *string `json:"title,omitempty"`
	ImageCredit *string `json:"image_credit,omitempty"`
	ImageURL    *string `json:"image_url"`
}

// OnThisDay is the anniversaries panel.
type OnThisDay struct {
	DateInfo      *string  `json:"date_info"`
	Description   string   `json:"description"`
	Anniversaries []string `json:"anniversaries"`
	ImageURL      *string  `json:"image_url"`
}

// English returns the sections of the English main page.
func English(site Site) []Section {
	return []Section{
		{
			Slug:         "featured-article",
			Site:         site,
			Heading:      "featured article",
			ContentClass: englishContentClass,
			Missing:      "Could not find the featured article content.",
			FetchFailure: "Could not retrieve featured article data.",
			Fallback:     featuredPanelSel,
			Transform:    featuredArticle,
		},
		{
			Slug:         "did-you-know",
			Site:         site,
			Heading:      "Did you know",
			ContentClass: englishContentClass,
			Missing:      "Could not find the 'Did you know...' section.",
			FetchFailure: "Could not retrieve 'Did you know...' facts.",
			Transform:    didYouKnow,
		},
		{
			Slug:         "news",
			Site:         site,
			Heading:      "In the news",
			ContentClass: englishContentClass,
			Missing:      "Could not find the 'In the news' section.",
			FetchFailure: "Could not retrieve news data.",
			Transform:    news,
		},
		{
			Slug:         "picture",
			Site:         site,
			Heading:      "Picture of the day",
			ContentClass: englishContentClass,
			Missing:      "Could not find the content div for 'Picture of the day' section.",
			FetchFailure: "Could not retrieve picture of the day data.",
			Transform:    picture,
		},
		{
			Slug:         "on-this-day",
			Site:         site,
			Heading:      "On this day",
			ContentClass: englishContentClass,
			Missing:      "Could not find the content div for 'On this day' section.",
			FetchFailure: "Could not retrieve 'On this day' data.",
			Transform:    onThisDay,
		},
	}
}

func featuredArticle(block *goquery.Selection, site Site) (any, error) {
	title := titleNotFound
	if t, ok := block.Find("a").First().Attr("title"); ok {
		title = t
	}

	desc := paragraphs(block)

	container := block.FindMatcher(bodyDivSel).First()
	if container.Length() == 0 {
		container = block
	}
	desc = appendLoose(desc, container, true, "p", "div", "ul")
	desc = cleaner.TrimMarker(desc, fullArticleMarker)
	desc = strings.ReplaceAll(desc, "\n\n", "\n")

	return FeaturedArticle{
		Title:       title,
		ImageURL:    site.ImageURL(firstImage(block)),
		Description: desc,
	}, nil
}

func didYouKnow(block *goquery.Selection, site Site) (any, error) {
	return DidYouKnow{
		Content:  listItems(block, false, ""),
		ImageURL: site.ImageURL(firstImage(block)),
	}, nil
}

func news(block *goquery.Selection, site Site) (any, error) {
	out := News{Content: make([]string, 0)}

	block.Find("li").Each(func(_ int, li *goquery.Selection) {
		headline, _, _ := strings.Cut(cleaner.Text(li), "\n")
		out.Content = append(out.Content, headline)
	})

	// Ticker paragraphs read "Ongoing: a • b", "Recent deaths: a • b" or
	// "<two words> a • b". Anything that is neither of the first two lands
	// in UpcomingDeaths, last paragraph wins.
	block.Find("p").Each(func(_ int, p *goquery.Selection) {
		words := strings.Split(cleaner.Text(p), " ")
		skip := 2
		if words[0] == "Ongoing:" {
			skip = 1
		}
		var rest []string
		if len(words) > skip {
			rest = words[skip:]
		}
		items := strings.Split(strings.Join(rest, " "), " • ")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}

		switch words[0] {
		case "Ongoing:":
			out.Ongoing = items
		case "Recent":
			out.RecentDeaths = items
		default:
			out.UpcomingDeaths = items
		}
	})

	out.ImageURL = site.ImageURL(firstImage(block))
	if caption := block.FindMatcher(newsCaptionSel).First(); caption.Length() > 0 {
		out.ImageDescription = strPtr(cleaner.Join(caption, ""))
	}
	return out, nil
}

func picture(block *goquery.Selection, site Site) (any, error) {
	var out Picture

	if cells := block.Find("td"); cells.Length() > 1 {
		caption := cells.Eq(1)
		credit := caption.Find("p").First()
		if credit.Length() > 0 {
			// The credit paragraph sits inside the caption cell; the title is
			// everything else in the cell.
			title := strings.TrimRightFunc(cleaner.NodeText(caption.Get(0), credit.Get(0)), unicode.IsSpace)
			out.Title = &title
			author := creditNotFound
			if link := credit.FindMatcher(userLinkSel).First(); link.Length() > 0 {
				author = cleaner.Join(link, "")
			}
			out.ImageCredit = &author
		} else {
			out.Title = strPtr(cleaner.Join(caption, ""))
			out.ImageCredit = strPtr(creditNotFound)
		}
	}

	out.ImageURL = site.ImageURL(firstImage(block))
	return out, nil
}

func onThisDay(block *goquery.Selection, site Site) (any, error) {
	out := OnThisDay{}

	if b := block.Find("b").First(); b.Length() > 0 {
		out.DateInfo = strPtr(strings.TrimSuffix(cleaner.Text(b), ":"))

		var parts []string
		walkUntil(b.Get(0), "ul", func(n *html.Node) {
			switch n.Type {
			case html.TextNode:
				parts = append(parts, strings.TrimSpace(n.Data))
			case html.ElementNode:
				parts = append(parts, cleaner.NodeJoin(n, ""))
			}
		})
		out.Description = strings.TrimSpace(strings.Join(parts, ""))
	}

	// "<b>May 1</b>: Some holiday" leaves ": Some holiday".
	if r := []rune(out.Description); len(r) > 0 && r[0] == ':' {
		out.Description = string(r[min(2, len(r)):])
	}

	out.Anniversaries = listItems(block, true, " ")
	out.ImageURL = site.ImageURL(firstImage(block))
	return out, nil
}
