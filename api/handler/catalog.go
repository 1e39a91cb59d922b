package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/uncyclo/models"
	"github.com/use-agent/uncyclo/section"
)

// Sections returns a handler for GET /sections listing every section route.
func Sections(sections []section.Section) gin.HandlerFunc {
	routes := make([]models.SectionRoute, 0, len(sections))
	for _, s := range sections {
		routes = append(routes, models.SectionRoute{
			Path:    "/" + s.Slug,
			Site:    s.Site.Name,
			Heading: s.Heading,
		})
	}
	resp := models.SectionsResponse{Sections: routes}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, resp)
	}
}
