// Package api exposes the extraction operations over HTTP.
package api

import (
	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterFeedRoutes(r)
	RegisterScrapeRoutes(r)
	RegisterHealthRoutes(r)
	return r
}
