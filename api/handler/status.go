package handler

import (
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/use-agent/uncyclo/models"
	"github.com/use-agent/uncyclo/section"
	"github.com/use-agent/uncyclo/simhash"
)

// Status returns a handler for GET /status/sections.
//
// Each main page is fetched once. For every section it reports whether the
// content block was located and, if so, the SimHash of its markup structure.
// Operators compare fingerprints across days to spot upstream layout drift.
func Status(f section.Fetcher, sections []section.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		docs := make(map[string]*goquery.Document)

		out := make([]models.SectionStatus, 0, len(sections))
		for _, s := range sections {
			st := models.SectionStatus{Path: "/" + s.Slug}

			doc, seen := docs[s.Site.MainPage]
			if !seen {
				doc = f.Fetch(ctx, s.Site.MainPage)
				docs[s.Site.MainPage] = doc
			}
			if doc == nil {
				st.Reason = s.FetchFailure
				out = append(out, st)
				continue
			}

			block := s.Block(doc)
			if block == nil {
				st.Reason = s.Missing
				out = append(out, st)
				continue
			}

			st.Found = true
			st.Fingerprint = simhash.Hex(simhash.Markup(block.Get(0)))
			slog.Debug("section fingerprint", "section", s.Slug, "fingerprint", st.Fingerprint)
			out = append(out, st)
		}

		c.JSON(http.StatusOK, models.StatusResponse{Sections: out})
	}
}
