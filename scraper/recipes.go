package scraper

import "github.com/PuerkitoBio/goquery"

// Recipe describes how to pull article fields out of one publisher's
// listing pages. Every selector is a cascade: alternatives are listed
// comma-joined and the first match wins, so a single markup revision
// does not break extraction outright.
type Recipe struct {
	Container   string
	Title       string
	Link        string
	Image       string
	Date        string
	Description string

	// ExtractLink overrides the Link selector for sites where the
	// canonical link is not a plain descendant anchor.
	ExtractLink func(s *goquery.Selection) string
}

// Per-publisher recipe table, keyed by normalized domain (hostname
// without "www."). Never mutated after init, so concurrent lookups
// from parallel extractions need no locking.
var recipes = map[string]Recipe{
	"wired.com": {
		Container:   `div[data-testid="SummaryItemWrapper"], article, li.summary-item, div.summary-item, div[class*="SummaryItem"]`,
		Title:       `h3, h2, h1, a[data-testid="SummaryItemHedLink"], [class*="hed"]`,
		Link:        "a",
		Image:       "img",
		Date:        "time",
		Description: `p[class*="dek"], div[class*="dek"], p[class*="excerpt"], div[class*="excerpt"], p[class*="summary"], div[class*="description"], p`,
		ExtractLink: func(s *goquery.Selection) string {
			href, _ := s.Find("a").First().Attr("href")
			return href
		},
	},
	"datacenterdynamics.com": {
		Container:   `article, div[class*="card"], div[class*="item"], div[class*="story"], div[class*="post"]`,
		Title:       `h2, h3, h1, a[class*="title"], a[class*="headline"]`,
		Link:        "a",
		Image:       "img",
		Date:        `time, span[class*="date"], div[class*="date"], span[class*="time"]`,
		Description: `p, div[class*="excerpt"], div[class*="summary"], div[class*="description"], span[class*="desc"]`,
	},
	"techcrunch.com": {
		Container:   `article.post-block, div.post-block, article, div[class*="post"]`,
		Title:       "h2, h3, a",
		Link:        "a",
		Image:       "img",
		Date:        "time",
		Description: "div.post-block__content, p",
	},
	"datacenterknowledge.com": {
		Container:   `article, div.article-card, div[class*="article"]`,
		Title:       `h2, h3, a[rel="bookmark"]`,
		Link:        `a[rel="bookmark"], h2 a, h3 a, a`,
		Image:       "img",
		Date:        "time, span.date",
		Description: "div.entry-content, p",
	},
	"arstechnica.com": {
		Container:   `article, div.article, div[class*="article"]`,
		Title:       "h2, h1.heading, h3",
		Link:        "a",
		Image:       "img",
		Date:        "time, p.date",
		Description: "p.excerpt, div.excerpt, p",
	},
	"bloomberg.com": {
		Container:   `article, div.story-package-module__story, div[class*="story"]`,
		Title:       `a[data-component="headline-link"], h3, h2`,
		Link:        `a[data-component="headline-link"], a`,
		Image:       "img",
		Date:        "time, div.published-at",
		Description: `div[data-component="abstract"], p`,
	},
}

// RecipeFor returns the extraction recipe for a domain, if one exists.
func RecipeFor(domain string) (Recipe, bool) {
	r, ok := recipes[domain]
	return r, ok
}
