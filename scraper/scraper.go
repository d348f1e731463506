// Package scraper extracts article records from arbitrary HTML listing
// pages. A per-publisher recipe runs when one matches the page's
// domain; otherwise, or when the recipe yields nothing usable, generic
// heuristics take over.
package scraper

import (
	"context"
	"log"
	"net/url"
	"time"

	"datacenterfeed/types"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxArticles caps how many containers one scrape inspects when
// the caller does not say otherwise.
const DefaultMaxArticles = 50

// ScrapeSite fetches a listing page and runs the extraction cascade
// over it. Every returned record has a non-empty title and an absolute
// link; containers missing either are dropped, not emitted.
func ScrapeSite(ctx context.Context, pageURL string, maxArticles int) ([]types.Article, error) {
	if pageURL == "" {
		return nil, &types.ValidationError{Field: "URL"}
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, &types.ValidationError{Field: "URL"}
	}
	if maxArticles <= 0 {
		maxArticles = DefaultMaxArticles
	}

	doc, err := FetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	return extractArticles(doc, base, Domain(pageURL), maxArticles, time.Now()), nil
}

func extractArticles(doc *goquery.Document, base *url.URL, domain string, max int, now time.Time) []types.Article {
	if rec, ok := RecipeFor(domain); ok {
		articles := extractWithRecipe(doc, base, rec, max, now)
		if len(articles) > 0 {
			log.Printf("Scraped %d articles from %s using site recipe", len(articles), domain)
			return articles
		}
		log.Printf("Recipe for %s yielded no articles, trying generic fallback", domain)
	}
	articles := extractGeneric(doc, base, max, now)
	log.Printf("Generic fallback extracted %d articles from %s", len(articles), domain)
	return articles
}
