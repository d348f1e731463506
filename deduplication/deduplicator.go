// Package deduplication removes duplicate articles from merged
// collections. Identity is exact-key: normalized title, optionally
// scoped to the source it came from. The extraction engine itself only
// suppresses literal duplicate DOM matches within one batch; everything
// wider lives here.
package deduplication

import (
	"strings"

	"datacenterfeed/types"
)

// Key returns the stable dedup identity for an article within a
// collection: the normalized title scoped to its source URL.
func Key(title, sourceURL string) string {
	return types.GenerateID(normalizeTitle(title) + "|" + sourceURL)
}

// DedupBatch collapses a merged batch by normalized title, keeping the
// first occurrence. Order of survivors is preserved.
func DedupBatch(articles []types.Article) []types.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]types.Article, 0, len(articles))
	for _, a := range articles {
		title := normalizeTitle(a.Title)
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		out = append(out, a)
	}
	return out
}

// Merge folds a freshly fetched batch into an existing collection.
// Fresh copies supersede existing ones sharing the same key, since the
// most recently fetched copy wins. Fresh articles come first, followed
// by the surviving existing ones in their original order.
func Merge(existing, fresh []types.Article) []types.Article {
	keys := make(map[string]struct{}, len(fresh))
	out := make([]types.Article, 0, len(existing)+len(fresh))

	for _, a := range fresh {
		k := Key(a.Title, a.SourceURL)
		if _, dup := keys[k]; dup {
			continue
		}
		keys[k] = struct{}{}
		out = append(out, a)
	}
	for _, a := range existing {
		k := Key(a.Title, a.SourceURL)
		if _, superseded := keys[k]; superseded {
			continue
		}
		keys[k] = struct{}{}
		out = append(out, a)
	}
	return out
}

func normalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
