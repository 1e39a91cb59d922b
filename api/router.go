package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/uncyclo/api/handler"
	"github.com/use-agent/uncyclo/api/middleware"
	"github.com/use-agent/uncyclo/config"
	"github.com/use-agent/uncyclo/section"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → RequestLog
//
// Each section gets its own GET /<slug> route.
func NewRouter(f section.Fetcher, sections []section.Section, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())

	r.GET("/", handler.Root())
	r.GET("/health", handler.Health(startTime))
	r.GET("/sections", handler.Sections(sections))
	r.GET("/status/sections", handler.Status(f, sections))

	for _, s := range sections {
		r.GET("/"+s.Slug, handler.Section(f, s))
	}

	return r
}
