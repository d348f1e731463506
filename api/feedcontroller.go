package api

import (
	"net/http"

	"datacenterfeed/filter"
	"datacenterfeed/rssfeeds"

	"github.com/gin-gonic/gin"
)

// FeedRequest is the payload for the feed extraction operation.
type FeedRequest struct {
	URL      string `json:"url"`
	Keywords string `json:"keywords"`
}

// RegisterFeedRoutes registers the feed extraction endpoint.
func RegisterFeedRoutes(r *gin.Engine) {
	r.POST("/api/fetch-feed", handleFetchFeed)
}

// handleFetchFeed parses a feed URL into article records, applies the
// optional keyword filter, and returns them with the feed title.
// Stateless: every call re-fetches.
func handleFetchFeed(c *gin.Context) {
	var req FeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Feed URL is required"})
		return
	}

	articles, feedTitle, err := rssfeeds.FetchFeed(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to fetch feed",
			"message": err.Error(),
		})
		return
	}

	articles = filter.ByKeywords(articles, req.Keywords)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"articles":  articles,
		"feedTitle": feedTitle,
	})
}
