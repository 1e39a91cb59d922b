package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/uncyclo/models"
)

// Version is reported by GET /health.
const Version = "0.1.0"

// RootMessage is the body of GET /.
const RootMessage = "Uncyclopedia API is running. Check /sections for endpoints."

// Root returns a handler for GET /.
func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.RootResponse{Message: RootMessage})
	}
}

// Health returns a handler for GET /health. It does not touch upstream.
func Health(startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Uptime:  time.Since(startTime).Round(time.Second).String(),
			Version: Version,
		})
	}
}
