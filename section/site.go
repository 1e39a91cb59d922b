package section

import (
	"net/url"
	"strings"
)

// Site is one upstream wiki main page.
type Site struct {
	// Name is a short label ("en", "pl") used in logs and the route catalog.
	Name string

	// MainPage is the absolute URL every section of this site is read from.
	MainPage string

	// BaseURL is scheme://host of MainPage, prepended to site-relative
	// image sources.
	BaseURL string

	// KnownDomains are substrings marking an image source as already
	// absolute. Empty means sources are never rebased.
	KnownDomains []string
}

// NewSite derives BaseURL from mainPage.
func NewSite(name, mainPage string, knownDomains ...string) Site {
	var base string
	if u, err := url.Parse(mainPage); err == nil && u.Host != "" {
		base = u.Scheme + "://" + u.Host
	}
	return Site{
		Name:         name,
		MainPage:     mainPage,
		BaseURL:      base,
		KnownDomains: knownDomains,
	}
}

// EnglishSite is the English-language Uncyclopedia main page.
func EnglishSite(mainPage string) Site {
	return NewSite("en", mainPage)
}

// PolishSite is the Nonsensopedia main page. Its images are either served
// from nonsa.pl or Wikimedia Commons, or are site-relative.
func PolishSite(mainPage string) Site {
	return NewSite("pl", mainPage, "nonsa.pl", "wikimedia")
}

// ImageURL normalizes an <img> src. A source with none of the known domains
// is rebased onto BaseURL first; a protocol-relative result then gets an
// https: scheme. Rebasing must run before the scheme fixup. Empty src
// yields nil.
func (s Site) ImageURL(src string) *string {
	if src == "" {
		return nil
	}
	if len(s.KnownDomains) > 0 && !containsAny(src, s.KnownDomains) {
		src = s.BaseURL + src
	}
	if strings.HasPrefix(src, "//") {
		src = "https:" + src
	}
	return &src
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
