package newsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGDELTClientSearch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"query":      r.URL.Query().Get("query"),
			"mode":       r.URL.Query().Get("mode"),
			"format":     r.URL.Query().Get("format"),
			"maxrecords": r.URL.Query().Get("maxrecords"),
			"sort":       r.URL.Query().Get("sort"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"articles": [
				{
					"url": "https://example.com/a",
					"title": "Putin meets Xi",
					"seendate": "20250817T120000Z",
					"language": "English",
					"sourcecountry": "Germany"
				},
				{
					"url": "https://example.com/b",
					"title": "Summit follow-up",
					"seendate": "20250818T090000Z",
					"language": "English",
					"sourcecountry": "France"
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewGDELTClient(server.URL)
	articles, err := client.Search(context.Background(), "Vladimir Putin", 5)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2", len(articles))
	}
	if articles[0].URL != "https://example.com/a" {
		t.Errorf("first article url = %q", articles[0].URL)
	}
	if articles[0].Title != "Putin meets Xi" {
		t.Errorf("first article title = %q", articles[0].Title)
	}
	if articles[1].SourceCountry != "France" {
		t.Errorf("second article source country = %q", articles[1].SourceCountry)
	}

	want := map[string]string{
		"query":      `"Vladimir Putin"`,
		"mode":       "artlist",
		"format":     "json",
		"maxrecords": "5",
		"sort":       "hybridrel",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query param %s = %q, want %q", k, gotQuery[k], v)
		}
	}
}

func TestGDELTClientSearchDefaultsMaxRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("maxrecords"); got != "12" {
			t.Errorf("maxrecords = %q, want 12", got)
		}
		w.Write([]byte(`{"articles": []}`))
	}))
	defer server.Close()

	client := NewGDELTClient(server.URL)
	articles, err := client.Search(context.Background(), "Putin", 0)
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("got %d articles, want 0", len(articles))
	}
}

func TestGDELTClientSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGDELTClient(server.URL)
	if _, err := client.Search(context.Background(), "Putin", 5); err == nil {
		t.Error("expected error for non-200 response, got nil")
	}
}

func TestGDELTClientSearchBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewGDELTClient(server.URL)
	if _, err := client.Search(context.Background(), "Putin", 5); err == nil {
		t.Error("expected error for malformed response, got nil")
	}
}
