package deduplication

import (
	"reflect"
	"testing"

	"datacenterfeed/types"
)

func TestDedupBatchFirstOccurrenceWins(t *testing.T) {
	batch := []types.Article{
		{ID: "1", Title: "Big Outage"},
		{ID: "2", Title: "  big outage "},
		{ID: "3", Title: "Something else"},
		{ID: "4", Title: "BIG OUTAGE"},
	}

	got := DedupBatch(batch)

	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("wrong survivors: %v", got)
	}
}

func TestDedupBatchEmpty(t *testing.T) {
	if got := DedupBatch(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestKeyScopedToSource(t *testing.T) {
	a := Key("Same Title", "https://one.example")
	b := Key("Same Title", "https://two.example")
	if a == b {
		t.Error("keys for different sources should differ")
	}

	if Key("Same Title", "https://one.example") != Key("  same title ", "https://one.example") {
		t.Error("key should normalize title case and whitespace")
	}
}

func TestMergeFreshCopyWins(t *testing.T) {
	existing := []types.Article{
		{ID: "old-1", Title: "Shared Story", SourceURL: "https://s.example"},
		{ID: "old-2", Title: "Old Only", SourceURL: "https://s.example"},
	}
	fresh := []types.Article{
		{ID: "new-1", Title: "shared story", SourceURL: "https://s.example"},
		{ID: "new-2", Title: "New Only", SourceURL: "https://s.example"},
	}

	got := Merge(existing, fresh)

	wantIDs := []string{"new-1", "new-2", "old-2"}
	ids := make([]string, len(got))
	for i, a := range got {
		ids[i] = a.ID
	}
	if !reflect.DeepEqual(ids, wantIDs) {
		t.Errorf("Merge() ids = %v, want %v", ids, wantIDs)
	}
}

func TestMergeKeepsSameTitleAcrossSources(t *testing.T) {
	existing := []types.Article{
		{ID: "a", Title: "Shared Title", SourceURL: "https://one.example"},
	}
	fresh := []types.Article{
		{ID: "b", Title: "Shared Title", SourceURL: "https://two.example"},
	}

	got := Merge(existing, fresh)
	if len(got) != 2 {
		t.Fatalf("dedup must not cross unrelated sources, got %d articles", len(got))
	}
}
