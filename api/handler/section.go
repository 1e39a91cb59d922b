package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/uncyclo/section"
)

// Section returns a handler for GET /<slug>.
//
// Every outcome is a 200: the section fields when found, otherwise
// {"error": "<sentinel>"}. Clients tell them apart by the "error" key.
func Section(f section.Fetcher, s section.Section) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := s.Run(c.Request.Context(), f)
		c.JSON(http.StatusOK, res.Body())
	}
}
