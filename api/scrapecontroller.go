package api

import (
	"net/http"

	"datacenterfeed/filter"
	"datacenterfeed/scraper"
	"datacenterfeed/types"

	"github.com/gin-gonic/gin"
)

// Bounds for the per-scrape article cap.
const (
	MinMaxArticles = 25
	MaxMaxArticles = 100
)

// ScrapeRequest is the payload for the scrape extraction operation.
type ScrapeRequest struct {
	URL         string `json:"url"`
	MaxArticles int    `json:"maxArticles"`
	Keywords    string `json:"keywords"`
}

// RegisterScrapeRoutes registers the scrape extraction endpoint.
func RegisterScrapeRoutes(r *gin.Engine) {
	r.POST("/api/scrape-site", handleScrapeSite)
}

// handleScrapeSite extracts article records from an arbitrary listing
// page. A fetch-level failure is a 500; a page that yields nothing
// after filtering is a 404 with remediation guidance, since the fetch
// itself succeeded.
func handleScrapeSite(c *gin.Context) {
	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	articles, err := scraper.ScrapeSite(c.Request.Context(), req.URL, clampMaxArticles(req.MaxArticles))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to scrape site",
			"message": err.Error(),
			"details": "The scraper encountered an error. The site may be blocking scraping or the page structure is incompatible.",
		})
		return
	}

	articles = filter.ByKeywords(articles, req.Keywords)

	if len(articles) == 0 {
		noResults := &types.NoResultsError{URL: req.URL}
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "No articles found",
			"message": noResults.Guidance(),
			"url":     req.URL,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"articles": articles,
		"count":    len(articles),
	})
}

func clampMaxArticles(n int) int {
	if n == 0 {
		return scraper.DefaultMaxArticles
	}
	if n < MinMaxArticles {
		return MinMaxArticles
	}
	if n > MaxMaxArticles {
		return MaxMaxArticles
	}
	return n
}
