package posting

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const postingPage = `<!DOCTYPE html>
<html>
<head><title>HGV Class 1 Driver - Northern Haulage</title></head>
<body>
<h1>HGV Class 1 Driver</h1>
<p>We are a haulage and logistics company looking for experienced Class 1
drivers for trunking and multi-drop work. You will handle pallet loads,
warehouse collections and supply chain deliveries across the UK. A full
CPC and digital tachograph card are required. Night out allowance paid.</p>
</body>
</html>`

func TestFetchStaticPosting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, postingPage)
	}))
	defer srv.Close()

	f := NewFetcher(nil, false)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := f.Fetch(ctx, srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if p.Title != "HGV Class 1 Driver - Northern Haulage" {
		t.Fatalf("title %q", p.Title)
	}
	if p.Industry != IndustryLogistics {
		t.Fatalf("industry %q, want %q", p.Industry, IndustryLogistics)
	}
}

func TestFetchRejectsBadURLs(t *testing.T) {
	f := NewFetcher(nil, false)
	ctx := context.Background()

	for _, raw := range []string{"", "not a url", "ftp://example.com/job", "file:///etc/passwd"} {
		if _, err := f.Fetch(ctx, raw); err == nil {
			t.Fatalf("url %q should be rejected", raw)
		}
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	url := srv.URL
	srv.Close()

	f := NewFetcher(nil, false)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := f.Fetch(ctx, url); err == nil {
		t.Fatalf("expected an error for a closed server")
	}
}

func TestPoolFetchAllKeepsInputOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head><title>Job %s</title></head><body>Warehouse operative role with forklift duties.</body></html>`,
			r.URL.Path)
	}))
	defer srv.Close()

	f := NewFetcher(nil, false)
	pool := NewPool(f, 2, 0)
	defer pool.Close()

	urls := []string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	results := pool.FetchAll(ctx, urls)
	if len(results) != len(urls) {
		t.Fatalf("got %d results for %d urls", len(results), len(urls))
	}
	for i, res := range results {
		if res.URL != urls[i] {
			t.Fatalf("result %d is for %q, want %q", i, res.URL, urls[i])
		}
		if res.Err != nil {
			t.Fatalf("fetch %s: %v", res.URL, res.Err)
		}
	}
}
