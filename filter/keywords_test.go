package filter

import (
	"reflect"
	"testing"

	"datacenterfeed/types"
)

func articlesWithTitles(titles ...string) []types.Article {
	articles := make([]types.Article, len(titles))
	for i, t := range titles {
		articles[i] = types.Article{Title: t}
	}
	return articles
}

func titlesOf(articles []types.Article) []string {
	titles := make([]string, len(articles))
	for i, a := range articles {
		titles[i] = a.Title
	}
	return titles
}

func TestByKeywords(t *testing.T) {
	tests := []struct {
		name     string
		titles   []string
		keywords string
		want     []string
	}{
		{
			name:     "single match survives",
			titles:   []string{"Energy costs rise", "Cloud outage today"},
			keywords: "energy, climate",
			want:     []string{"Energy costs rise"},
		},
		{
			name:     "empty keywords keeps everything",
			titles:   []string{"One", "Two"},
			keywords: "",
			want:     []string{"One", "Two"},
		},
		{
			name:     "whitespace-only keywords keeps everything",
			titles:   []string{"One", "Two"},
			keywords: "   ",
			want:     []string{"One", "Two"},
		},
		{
			name:     "case folded both sides",
			titles:   []string{"ENERGY update", "quiet day"},
			keywords: "Energy",
			want:     []string{"ENERGY update"},
		},
		{
			name:     "no match removes everything",
			titles:   []string{"One", "Two"},
			keywords: "nuclear",
			want:     []string{},
		},
		{
			name:     "stray commas are ignored",
			titles:   []string{"Energy report", "Other"},
			keywords: "energy,, ,",
			want:     []string{"Energy report"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByKeywords(articlesWithTitles(tt.titles...), tt.keywords)
			if !reflect.DeepEqual(titlesOf(got), tt.want) {
				t.Errorf("ByKeywords() = %v, want %v", titlesOf(got), tt.want)
			}
		})
	}
}

func TestByKeywordsMatchesDescription(t *testing.T) {
	articles := []types.Article{
		{Title: "Quarterly report", Description: "Data center capacity grows"},
		{Title: "Weather", Description: "Sunny with clouds"},
	}

	got := ByKeywords(articles, "capacity")
	if len(got) != 1 || got[0].Title != "Quarterly report" {
		t.Fatalf("expected description match to survive, got %v", titlesOf(got))
	}
}

func TestByKeywordsDeterministic(t *testing.T) {
	articles := articlesWithTitles("Energy one", "Energy two", "Other", "Energy three")

	first := ByKeywords(articles, "energy")
	second := ByKeywords(articles, "energy")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated filtering diverged: %v vs %v", titlesOf(first), titlesOf(second))
	}
	want := []string{"Energy one", "Energy two", "Energy three"}
	if !reflect.DeepEqual(titlesOf(first), want) {
		t.Errorf("order not preserved: got %v, want %v", titlesOf(first), want)
	}
}
