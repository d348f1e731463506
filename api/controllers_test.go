package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func doJSON(t *testing.T, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	r := NewRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return w, resp
}

func TestHealth(t *testing.T) {
	r := NewRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestFetchFeedRequiresURL(t *testing.T) {
	w, resp := doJSON(t, "/api/fetch-feed", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["error"] == nil {
		t.Error("missing error field")
	}
}

func TestFetchFeedSuccess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Backend Feed</title>
<item><title>Energy news</title><link>https://b.example/1</link><description>power</description></item>
<item><title>Sports news</title><link>https://b.example/2</link><description>goals</description></item>
</channel></rss>`)
	}))
	t.Cleanup(backend.Close)

	w, resp := doJSON(t, "/api/fetch-feed", fmt.Sprintf(`{"url":%q,"keywords":"energy"}`, backend.URL))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp["success"] != true {
		t.Error("success flag not set")
	}
	if resp["feedTitle"] != "Backend Feed" {
		t.Errorf("feedTitle = %v", resp["feedTitle"])
	}
	articles := resp["articles"].([]any)
	if len(articles) != 1 {
		t.Fatalf("expected keyword filter to keep 1 article, got %d", len(articles))
	}
}

func TestFetchFeedUpstreamFailure(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	backend.Close()

	w, resp := doJSON(t, "/api/fetch-feed", fmt.Sprintf(`{"url":%q}`, backend.URL))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if resp["error"] != "Failed to fetch feed" {
		t.Errorf("error = %v", resp["error"])
	}
	if resp["message"] == nil {
		t.Error("missing underlying message")
	}
}

func TestScrapeSiteRequiresURL(t *testing.T) {
	w, _ := doJSON(t, "/api/scrape-site", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestScrapeSiteSuccess(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<article><h2>One</h2><a href="/1">x</a></article>
			<article><h2>Two</h2><a href="/2">x</a></article>
			<article><h2>Three</h2><a href="/3">x</a></article>
		</body></html>`)
	}))
	t.Cleanup(backend.Close)

	w, resp := doJSON(t, "/api/scrape-site", fmt.Sprintf(`{"url":%q}`, backend.URL))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if resp["count"] != float64(3) {
		t.Errorf("count = %v, want 3", resp["count"])
	}
}

func TestScrapeSiteNoArticlesIs404(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing to see</p></body></html>`)
	}))
	t.Cleanup(backend.Close)

	w, resp := doJSON(t, "/api/scrape-site", fmt.Sprintf(`{"url":%q}`, backend.URL))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if resp["error"] != "No articles found" {
		t.Errorf("error = %v", resp["error"])
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "RSS") {
		t.Errorf("message should carry remediation guidance, got %v", resp["message"])
	}
	if resp["url"] != backend.URL {
		t.Errorf("url = %v", resp["url"])
	}
}

func TestScrapeSiteFetchFailureIs500(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(backend.Close)

	w, resp := doJSON(t, "/api/scrape-site", fmt.Sprintf(`{"url":%q}`, backend.URL))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if resp["details"] == nil {
		t.Error("missing details field")
	}
	if msg, _ := resp["message"].(string); !strings.Contains(msg, "403") {
		t.Errorf("message should carry the HTTP status, got %v", resp["message"])
	}
}

func TestClampMaxArticles(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 50},
		{10, 25},
		{25, 25},
		{60, 60},
		{100, 100},
		{500, 100},
	}
	for _, tt := range tests {
		if got := clampMaxArticles(tt.in); got != tt.want {
			t.Errorf("clampMaxArticles(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
