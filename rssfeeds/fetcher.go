// Package rssfeeds turns standards-format RSS/Atom feeds into
// normalized article records.
package rssfeeds

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"datacenterfeed/types"

	"github.com/mmcdole/gofeed"
)

const (
	// MaxFeedItems bounds how many items are read from one feed so
	// that keyword filtering still has enough left to work with.
	MaxFeedItems = 100

	fetchTimeout      = 10 * time.Second
	userAgent         = "DataCenterFeed/1.0"
	maxDescriptionLen = 250
)

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	imgPattern = regexp.MustCompile(`<img[^>]+src="([^">]+)"`)
)

// FetchFeed retrieves and parses a feed into article records, capped at
// MaxFeedItems. It also returns the feed's own title.
func FetchFeed(ctx context.Context, feedURL string) ([]types.Article, string, error) {
	if feedURL == "" {
		return nil, "", &types.ValidationError{Field: "Feed URL"}
	}

	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: fetchTimeout}

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, "", classifyFeedError(feedURL, err)
	}

	fetchedAt := time.Now()
	count := min(len(feed.Items), MaxFeedItems)
	articles := make([]types.Article, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		title := item.Title
		if title == "" {
			title = "Untitled Article"
		}

		pubDate := fetchedAt
		if item.PublishedParsed != nil {
			pubDate = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			pubDate = *item.UpdatedParsed
		}

		// Prefer the description over raw content; both arrive as
		// HTML more often than not.
		raw := item.Description
		if raw == "" {
			raw = item.Content
		}
		description, capped := truncate(stripTags(raw), maxDescriptionLen)
		if capped {
			description += "..."
		}

		articles = append(articles, types.Article{
			ID:          fmt.Sprintf("%s-%d-%d", feedURL, i, fetchedAt.UnixMilli()),
			Title:       title,
			Link:        item.Link,
			PubDate:     pubDate,
			Description: description,
			ImageURL:    extractImage(item),
		})
	}

	return articles, feed.Title, nil
}

// extractImage tries the enclosure URL, then the media:thumbnail
// extension, then the first inline <img> in the content HTML.
func extractImage(item *gofeed.Item) string {
	for _, enc := range item.Enclosures {
		if enc != nil && enc.URL != "" {
			return enc.URL
		}
	}
	if media, ok := item.Extensions["media"]; ok {
		if thumbs, ok := media["thumbnail"]; ok && len(thumbs) > 0 {
			if u := thumbs[0].Attrs["url"]; u != "" {
				return u
			}
		}
	}
	if m := imgPattern.FindStringSubmatch(item.Content); m != nil {
		return m[1]
	}
	return ""
}

// classifyFeedError separates fetch-stage failures from parse-stage
// failures so the boundary can report them distinctly.
func classifyFeedError(feedURL string, err error) error {
	var he gofeed.HTTPError
	if errors.As(err, &he) {
		return &types.FetchError{URL: feedURL, StatusCode: he.StatusCode, Err: err}
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return &types.FetchError{URL: feedURL, Err: err}
	}
	return &types.ParseError{URL: feedURL, Err: err}
}

func stripTags(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}

// truncate cuts s to max runes. The boolean reports whether the result
// reached the cap, which is when the caller appends the marker.
func truncate(s string, max int) (string, bool) {
	if utf8.RuneCountInString(s) < max {
		return s, false
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])), true
}
