package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchDocuments(t *testing.T) {
	pages := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			http.Error(w, "gone", http.StatusGone)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `<html><body><article><h1>Article %s</h1>
			<p>Long enough body text about a political summit to extract
			something meaningful from page %s.</p></article></body></html>`,
			r.URL.Path, r.URL.Path)
	}))
	defer pages.Close()

	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(artlistResponse{Articles: []Article{
			{URL: pages.URL + "/one", Title: "First"},
			{URL: pages.URL + "/broken", Title: "Broken"},
			{URL: pages.URL + "/two", Title: "Second"},
		}})
	}))
	defer feed.Close()

	docs := FetchDocuments(context.Background(),
		NewGDELTClient(feed.URL), NewArticleLoader(), "Vladimir Putin", 10)

	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2 (broken page skipped): %+v", len(docs), docs)
	}
	// Search order is preserved even though pages load in parallel.
	if docs[0].Article.Title != "First" || docs[1].Article.Title != "Second" {
		t.Errorf("document order = %q, %q", docs[0].Article.Title, docs[1].Article.Title)
	}
	for _, doc := range docs {
		if doc.ID == "" {
			t.Errorf("document %q has no ID", doc.Article.URL)
		}
		if !strings.Contains(doc.Text, "political summit") {
			t.Errorf("document %q text not extracted: %q", doc.Article.URL, doc.Text)
		}
	}
}

func TestFetchDocumentsSearchFailure(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer feed.Close()

	docs := FetchDocuments(context.Background(),
		NewGDELTClient(feed.URL), NewArticleLoader(), "Vladimir Putin", 10)

	if len(docs) != 0 {
		t.Errorf("got %d documents after failed search, want 0", len(docs))
	}
}
