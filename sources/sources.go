// Package sources holds the caller-side source configuration and the
// multi-source refresh loop that feeds the extraction engine.
package sources

// Kind selects which extraction pipeline a source goes through.
type Kind string

const (
	KindFeed   Kind = "rss"
	KindScrape Kind = "scrape"
)

// Source is one configured publisher.
type Source struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Kind        Kind   `json:"sourceType"`
	Category    string `json:"category"`
	Keywords    string `json:"keywords,omitempty"`
	MaxArticles int    `json:"maxArticles,omitempty"` // scrape only
	Enabled     bool   `json:"enabled"`
}

// DefaultCategories is the starting category set offered to new users.
var DefaultCategories = []string{"AI", "Data Centers", "Cloud", "Hybrid", "Energy", "Technology"}

// Presets maps friendly names to ready-made source configurations.
var Presets = map[string]Source{
	"dcd": {
		Name:     "Data Center Dynamics",
		URL:      "https://www.datacenterdynamics.com/en/news/",
		Kind:     KindScrape,
		Category: "Data Centers",
		Enabled:  true,
	},
	"dck": {
		Name:     "Data Center Knowledge",
		URL:      "https://www.datacenterknowledge.com",
		Kind:     KindScrape,
		Category: "Data Centers",
		Enabled:  true,
	},
	"tc": {
		Name:     "TechCrunch",
		URL:      "https://techcrunch.com/feed/",
		Kind:     KindFeed,
		Category: "Technology",
		Enabled:  true,
	},
	"ars": {
		Name:     "Ars Technica",
		URL:      "https://feeds.arstechnica.com/arstechnica/index",
		Kind:     KindFeed,
		Category: "Technology",
		Enabled:  true,
	},
	"tr": {
		Name:     "MIT Technology Review",
		URL:      "https://www.technologyreview.com/feed/",
		Kind:     KindFeed,
		Category: "AI",
		Enabled:  true,
	},
}

// Resolve returns the preset for a friendly name, or a bare feed
// source for anything else (assumed to be a direct URL).
func Resolve(input string) Source {
	if s, ok := Presets[input]; ok {
		return s
	}
	return Source{Name: input, URL: input, Kind: KindFeed, Enabled: true}
}
