package section

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const (
	testEnglishURL = "https://en.uncyclopedia.co/wiki/Main_Page"
	testPolishURL  = "https://nonsa.pl/wiki/Strona_g%C5%82%C3%B3wna"
)

const featuredPanel = `
<div class="mp-panel mp-green">
<h2>Today's featured article</h2>
<div class="mp-content">
<p><b><a href="/wiki/Potato" title="Potato">Potatoes</a></b> are the leading cause of <a href="/wiki/Couch" title="Couch">couches</a> , worldwide .</p>
<p>Scientists ( mostly ) agree ! (<a href="/wiki/Potato" title="Potato">Full article...</a>)</p>
<div class="floatleft"><a href="/wiki/File:Potato.jpg" class="image"><img src="//images.uncyc.org/en/potato.jpg" alt="Potato"></a></div>
</div>
</div>`

const didYouKnowPanel = `
<h2>Did you know... <span class="more">more</span></h2>
<div class="mp-content">
<div class="floatright"><img src="//images.uncyc.org/en/cat.png"></div>
<ul>
<li>... that <a href="/wiki/Cat">cats</a> invented the internet?</li>
<li> ... that this list is verbatim? </li>
</ul>
</div>`

const newsPanel = `
<h2>In the news</h2>
<div class="mp-content">
<div class="floatright"><img src="//images.uncyc.org/en/news.png"><div style="font-size:94%; text-align:center">Pictured: a cheese moon</div></div>
<ul>
<li><b>Local man</b> declares war on Tuesday
second line</li>
<li>Moon found to be cheese</li>
</ul>
<p>Ongoing: <a>War on Tuesday</a> • <a>Cheese crisis</a></p>
<p>Recent deaths: <a>Bob</a> • <a>Alice</a></p>
<p>Upcoming deaths: <a>Everyone</a></p>
</div>`

const picturePanel = `
<h2>Picture of the day</h2>
<div class="mp-content">
<table><tr>
<td><a class="image"><img src="//images.uncyc.org/en/potd.jpg"></a></td>
<td>A very serious <a href="/wiki/Painting">painting</a>
<p>Photo by <a href="/wiki/User:Painter" title="User:Painter">Painter</a></p></td>
</tr></table>
</div>`

const onThisDayPanel = `
<h2>On this day...</h2>
<div class="mp-content">
<p><b>October 18</b>: National Potato Day</p>
<ul>
<li><b>1066</b> – Someone lost a <a>battle</a></li>
<li>1999 – Y2K panic begins</li>
</ul>
<img src="//images.uncyc.org/en/otd.png">
</div>`

func englishPage(panels ...string) string {
	return "<html><head><title>Uncyclopedia</title></head><body>" + strings.Join(panels, "\n") + "</body></html>"
}

var fullEnglishPage = englishPage(featuredPanel, didYouKnowPanel, newsPanel, picturePanel, onThisDayPanel)

const polishPage = `<html><body>
<h2>Mądrość ze słownika</h2>
<div class="panelcss-content"><span><b>Kot</b> – zwierzę, które rządzi internetem.</span> <small>Zobacz inne hasła</small></div>

<h2>Losowa grafika</h2>
<div class="panelcss-content"><a class="image"><img src="/images/a/ab/Kot.png" alt="Kot w kapeluszu"></a>
<div style="margin-top:4px">Autor: <a href="/wiki/U%C5%BCytkownik:Jan" title="Użytkownik:Jan">Jan</a></div></div>

<h2>Czy nie wiesz…</h2>
<div class="panelcss-content">
<p><b>Z najnowszych artykułów:</b></p>
<ul><li>…że <a>koty</a> są płynne?</li><li>…że to prawda?</li></ul>
<p><b>…i z naszych przepastnych archiwów:</b></p>
<ul><li>…że archiwa są przepastne?</li></ul>
</div>

<h2>Święto na dziś</h2>
<div class="panelcss-content">
<p>Dzień Ziemniaka</p>
<p>Obchodzony przez wszystkich</p>
<img src="/images/z.png">
<ul><li>1410 – Bitwa pod Grunwaldem – remis</li><li>1920 – Cud nad Wisłą</li><li>bez daty</li><li>1410 – powtórka</li></ul>
</div>

<h2>NonNews</h2>
<div class="panelcss-content">
<p><b>Najnowsze</b></p>
<p><a>18 października</a></p>
<ul><li><a>Kot wygrał wybory</a></li><li><a>Pies protestuje</a></li></ul>
<p><a>17 października</a></p>
<ul><li><a>Nic się nie stało</a></li></ul>
<p><b>Archiwum</b></p>
<p><a>1 stycznia</a></p>
<ul><li><a>Nowy rok</a></li></ul>
</div>

<h2>Artykuł na medal</h2>
<div class="panelcss-content">
<p><b><a href="/wiki/Ziemniak" title="Ziemniak">Ziemniak</a></b> – warzywo , które ( podobno ) rządzi światem .</p>
<p>Czytaj dalej !</p>
<img src="//nonsa.pl/images/ziemniak.jpg">
</div>
</body></html>`

func mustDoc(t *testing.T, s string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func mustSection(t *testing.T, slug string) Section {
	t.Helper()
	s, ok := Lookup(Catalog(EnglishSite(testEnglishURL), PolishSite(testPolishURL)), slug)
	if !ok {
		t.Fatalf("no section %q", slug)
	}
	return s
}

func extractFound(t *testing.T, page, slug string) any {
	t.Helper()
	res := mustSection(t, slug).Extract(mustDoc(t, page))
	if res.Outcome != Found {
		t.Fatalf("%s: outcome = %v, reason = %q", slug, res.Outcome, res.Reason)
	}
	return res.Fields
}

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}
