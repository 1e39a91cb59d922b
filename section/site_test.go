package section

import "testing"

func TestSiteImageURL(t *testing.T) {
	en := EnglishSite(testEnglishURL)
	pl := PolishSite(testPolishURL)

	tests := []struct {
		name string
		site Site
		src  string
		want string // "<nil>" for a nil result
	}{
		{"en empty", en, "", "<nil>"},
		{"en protocol-relative", en, "//images.uncyc.org/en/a.png", "https://images.uncyc.org/en/a.png"},
		{"en absolute", en, "https://images.uncyc.org/en/a.png", "https://images.uncyc.org/en/a.png"},
		{"en site-relative kept", en, "/images/a.png", "/images/a.png"},
		{"pl empty", pl, "", "<nil>"},
		{"pl site-relative", pl, "/images/a/ab/Kot.png", "https://nonsa.pl/images/a/ab/Kot.png"},
		{"pl known domain protocol-relative", pl, "//nonsa.pl/images/z.jpg", "https://nonsa.pl/images/z.jpg"},
		{"pl wikimedia", pl, "https://upload.wikimedia.org/x.png", "https://upload.wikimedia.org/x.png"},
		// Rebased first, so the result no longer starts with "//".
		{"pl unknown protocol-relative", pl, "//cdn.example/x.png", "https://nonsa.pl//cdn.example/x.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deref(tt.site.ImageURL(tt.src)); got != tt.want {
				t.Errorf("ImageURL(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestNewSite_BaseURL(t *testing.T) {
	if got := PolishSite(testPolishURL).BaseURL; got != "https://nonsa.pl" {
		t.Errorf("BaseURL = %q", got)
	}
	if got := NewSite("x", "not a url").BaseURL; got != "" {
		t.Errorf("BaseURL for relative main page = %q, want empty", got)
	}
}
