package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"datacenterfeed/types"

	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
)

const (
	maxDescriptionLen = 250

	// A selector pattern that matches fewer than this many elements is
	// treated as noise rather than a real article list.
	minContainerMatches = 3

	// Description candidates at or below this length are discarded.
	minDescriptionLen = 20

	// Upper bound for the div scan, which otherwise swallows whole
	// page sections.
	maxDivDescriptionLen = 500
)

// Container patterns for the generic fallback, in priority order. The
// first pattern yielding at least minContainerMatches elements wins.
var containerPatterns = []string{
	"article",
	"div.post",
	"div.article",
	`div[class*="article"]`,
	`div[class*="story"]`,
	`div[class*="post"]`,
	`li[class*="item"]`,
	`div[class*="item"]`,
	`div[class*="card"]`,
}

var descriptionPatterns = []string{
	`p[class*="excerpt"]`,
	`p[class*="description"]`,
	`p[class*="summary"]`,
	`div[class*="excerpt"]`,
	`div[class*="description"]`,
	"p",
}

// extractWithRecipe runs the matched recipe's selectors over the page.
// Containers that do not produce both a title and a link are dropped.
func extractWithRecipe(doc *goquery.Document, base *url.URL, rec Recipe, max int, now time.Time) []types.Article {
	var articles []types.Article
	seen := make(map[string]struct{})

	items := doc.Find(rec.Container)
	if items.Length() > max {
		items = items.Slice(0, max)
	}

	items.Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find(rec.Title).First().Text())

		var link string
		if rec.ExtractLink != nil {
			link = rec.ExtractLink(s)
		} else {
			link, _ = s.Find(rec.Link).First().Attr("href")
		}
		link = resolveURL(base, link)

		if title == "" || link == "" {
			return
		}
		key := title + "|" + link
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}

		description := strings.TrimSpace(s.Find(rec.Description).First().Text())
		if description == "" {
			description = paragraphScan(s, title)
		}
		if description == "" {
			description = divScan(s, title)
		}
		description, _ = truncate(description, maxDescriptionLen)

		articles = append(articles, types.Article{
			ID:          fmt.Sprintf("scraped-%d-%d", now.UnixMilli(), i),
			Title:       title,
			Link:        link,
			PubDate:     extractDate(s, rec.Date, now),
			Description: description,
			ImageURL:    resolveURL(base, imageSource(s.Find(rec.Image).First())),
		})
	})

	return articles
}

// extractGeneric applies domain-agnostic heuristics when no recipe
// matched the page, or the matched recipe came up empty.
func extractGeneric(doc *goquery.Document, base *url.URL, max int, now time.Time) []types.Article {
	var articles []types.Article
	seen := make(map[string]struct{})

	items := findContainers(doc)
	if items.Length() > max {
		items = items.Slice(0, max)
	}

	items.Each(func(i int, s *goquery.Selection) {
		titleSel := s.Find("h1, h2, h3, h4").First()
		title := strings.TrimSpace(titleSel.Text())
		if title == "" {
			title = strings.TrimSpace(s.Find("a").First().Text())
		}

		link, _ := s.Find("a").First().Attr("href")
		if link == "" && titleSel.Is("a") {
			link, _ = titleSel.Attr("href")
		}
		if link == "" {
			link, _ = s.Closest("a").Attr("href")
		}
		link = resolveURL(base, link)

		if title == "" || link == "" {
			return
		}
		key := title + "|" + link
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}

		var description string
		for _, pattern := range descriptionPatterns {
			text := strings.TrimSpace(s.Find(pattern).First().Text())
			if text != "" && utf8.RuneCountInString(text) > minDescriptionLen {
				description = text
				break
			}
		}
		if description == "" {
			description = paragraphScan(s, title)
		}
		description, _ = truncate(description, maxDescriptionLen)

		// Date markup is the least standardized field on arbitrary
		// sites; the generic path does not attempt it.
		articles = append(articles, types.Article{
			ID:          fmt.Sprintf("scraped-%d-%d", now.UnixMilli(), i),
			Title:       title,
			Link:        link,
			PubDate:     now,
			Description: description,
			ImageURL:    resolveURL(base, imageSource(s.Find("img").First())),
		})
	})

	return articles
}

func findContainers(doc *goquery.Document) *goquery.Selection {
	for _, pattern := range containerPatterns {
		if sel := doc.Find(pattern); sel.Length() >= minContainerMatches {
			return sel
		}
	}
	// Last resort: any div holding both a heading and a link.
	return doc.Find("div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("h2, h3").Length() > 0 && s.Find("a").Length() > 0
	})
}

// extractDate reads the recipe's date selector, preferring a machine
// datetime attribute over display text, and parses it leniently.
// Unparseable or missing dates fall back to the fetch time.
func extractDate(s *goquery.Selection, dateSelector string, now time.Time) time.Time {
	if dateSelector == "" {
		return now
	}
	sel := s.Find(dateSelector).First()
	dateStr, ok := sel.Attr("datetime")
	if !ok || dateStr == "" {
		dateStr = strings.TrimSpace(sel.Text())
	}
	if dateStr == "" {
		return now
	}
	t, err := dateparse.ParseAny(dateStr)
	if err != nil {
		return now
	}
	return t
}

func imageSource(img *goquery.Selection) string {
	if src, ok := img.Attr("src"); ok && src != "" {
		return src
	}
	src, _ := img.Attr("data-src")
	return src
}

// paragraphScan walks paragraphs in document order and accepts the
// first one that is not the title and clears the length bar.
func paragraphScan(s *goquery.Selection, title string) string {
	var found string
	s.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.TrimSpace(p.Text())
		if text != "" && text != title && utf8.RuneCountInString(text) > minDescriptionLen {
			found = text
			return false
		}
		return true
	})
	return found
}

// divScan is the recipe path's last description resort; bounded above
// so it does not pick up entire page sections.
func divScan(s *goquery.Selection, title string) string {
	var found string
	s.Find("div").EachWithBreak(func(_ int, d *goquery.Selection) bool {
		text := strings.TrimSpace(d.Text())
		n := utf8.RuneCountInString(text)
		if text != "" && text != title && n > minDescriptionLen && n < maxDivDescriptionLen {
			found = text
			return false
		}
		return true
	})
	return found
}

// truncate cuts s to max runes. The boolean reports whether the cap
// was reached.
func truncate(s string, max int) (string, bool) {
	if utf8.RuneCountInString(s) < max {
		return s, false
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])), true
}
