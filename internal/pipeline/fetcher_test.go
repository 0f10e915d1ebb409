package pipeline

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avoronova/lessonsift/internal/model"
)

func testHTTPConfig() model.HTTPConfig {
	return model.HTTPConfig{
		UserAgent:    "lessonsift-test",
		Timeout:      5 * time.Second,
		MaxBodyBytes: 1 << 20,
	}
}

func TestFetcher_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "lessonsift-test" {
			t.Errorf("Expected custom User-Agent, got %q", ua)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><body><p>hello</p></body></html>")
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())
	result, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !strings.Contains(result.HTML, "hello") {
		t.Errorf("Expected body content, got %q", result.HTML)
	}
	if result.Meta.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", result.Meta.StatusCode)
	}
	if !strings.Contains(result.Meta.ContentType, "text/html") {
		t.Errorf("Expected html content type, got %q", result.Meta.ContentType)
	}
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestFetcher_Fetch_UnsupportedContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, "%PDF-1.4")
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for non-HTML content type")
	}
}

func TestFetcher_Fetch_BodyCapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, strings.Repeat("x", 10_000))
	}))
	defer server.Close()

	cfg := testHTTPConfig()
	cfg.MaxBodyBytes = 1000
	fetcher := NewFetcher(cfg)

	result, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(result.HTML) != 1000 {
		t.Errorf("Expected body capped at 1000 bytes, got %d", len(result.HTML))
	}
}

func TestFetcher_Fetch_FollowsRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusMovedPermanently)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, "<html><body>moved content</body></html>")
	}))
	defer target.Close()

	fetcher := NewFetcher(testHTTPConfig())
	result, err := fetcher.Fetch(context.Background(), target.URL+"/old")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if !strings.HasSuffix(result.FinalURL, "/new") {
		t.Errorf("Expected final URL to reflect the redirect, got %q", result.FinalURL)
	}
	if !strings.Contains(result.HTML, "moved content") {
		t.Error("Expected redirected body")
	}
}

func TestFetcher_Fetch_TooManyRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/again", http.StatusFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(testHTTPConfig())
	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error after redirect limit")
	}
}

func TestFetcher_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	fetcher := NewFetcher(testHTTPConfig())
	if _, err := fetcher.Fetch(ctx, server.URL); err == nil {
		t.Error("Expected error when context expires")
	}
}
