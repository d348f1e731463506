package sources

import (
	"context"
	"log"
	"sync"

	"datacenterfeed/deduplication"
	"datacenterfeed/filter"
	"datacenterfeed/rssfeeds"
	"datacenterfeed/scraper"
	"datacenterfeed/types"
)

// WorkerCount bounds how many sources refresh concurrently.
const WorkerCount = 5

// Refresher fans a refresh out over the configured sources. The fetch
// functions are swappable for tests; NewRefresher wires the real ones.
type Refresher struct {
	FetchFeed func(ctx context.Context, url string) ([]types.Article, string, error)
	Scrape    func(ctx context.Context, url string, maxArticles int) ([]types.Article, error)
	Workers   int
}

// NewRefresher returns a Refresher backed by the real feed and scrape
// pipelines.
func NewRefresher() *Refresher {
	return &Refresher{
		FetchFeed: rssfeeds.FetchFeed,
		Scrape:    scraper.ScrapeSite,
		Workers:   WorkerCount,
	}
}

// RefreshAll extracts every enabled source and returns the merged,
// deduplicated article list. Sources keep their configured order in
// the output. A failing source is logged and skipped; it never aborts
// its siblings.
func (r *Refresher) RefreshAll(ctx context.Context, srcs []Source) []types.Article {
	workers := r.Workers
	if workers <= 0 {
		workers = WorkerCount
	}

	results := make([][]types.Article, len(srcs))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.refreshOne(ctx, srcs[i])
			}
		}()
	}

	for i, src := range srcs {
		if !src.Enabled {
			continue
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	var merged []types.Article
	for _, batch := range results {
		merged = append(merged, batch...)
	}
	return deduplication.DedupBatch(merged)
}

// refreshOne runs a single source through its pipeline and stamps the
// source identity onto the results. Errors are contained here.
func (r *Refresher) refreshOne(ctx context.Context, src Source) []types.Article {
	var articles []types.Article
	var err error

	switch src.Kind {
	case KindScrape:
		articles, err = r.Scrape(ctx, src.URL, src.MaxArticles)
	default:
		articles, _, err = r.FetchFeed(ctx, src.URL)
	}
	if err != nil {
		log.Printf("Error refreshing %s: %v", src.Name, err)
		return nil
	}

	articles = filter.ByKeywords(articles, src.Keywords)

	for i := range articles {
		articles[i].SourceName = src.Name
		articles[i].SourceCategory = src.Category
		articles[i].SourceURL = src.URL
	}
	return articles
}
