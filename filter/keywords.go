// Package filter applies post-extraction relevance filtering, shared
// by the feed and scrape pipelines.
package filter

import (
	"strings"

	"datacenterfeed/types"
)

// ByKeywords retains articles whose title or description contains at
// least one of the comma-separated keywords, case-insensitively. An
// empty or whitespace-only keyword string is a no-op. Order is
// preserved and the input slice is never modified.
func ByKeywords(articles []types.Article, keywords string) []types.Article {
	list := parseKeywords(keywords)
	if len(list) == 0 {
		return articles
	}

	filtered := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		text := strings.ToLower(a.Title + " " + a.Description)
		for _, kw := range list {
			if strings.Contains(text, kw) {
				filtered = append(filtered, a)
				break
			}
		}
	}
	return filtered
}

func parseKeywords(keywords string) []string {
	var list []string
	for _, kw := range strings.Split(strings.ToLower(keywords), ",") {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			list = append(list, kw)
		}
	}
	return list
}
