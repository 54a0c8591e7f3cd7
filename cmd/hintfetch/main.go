package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"workmatch/internal/catalog"
	"workmatch/internal/posting"
)

// hintfetch fetches job postings and prints the industry each one
// reads like plus the skill categories that industry maps to. Handy
// for checking the cue table against real postings.
func main() {
	headless := flag.Bool("headless", false, "retry script-rendered pages with a headless browser")
	workers := flag.Int("workers", 3, "concurrent fetches")
	rps := flag.Int("rps", 2, "max requests per second, 0 for unlimited")
	timeout := flag.Duration("timeout", 60*time.Second, "overall fetch timeout")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	urls := flag.Args()
	if len(urls) == 0 {
		logger.Fatalf("usage: hintfetch [flags] <posting-url> [more-urls...]")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	fetcher := posting.NewFetcher(logger, *headless)
	pool := posting.NewPool(fetcher, *workers, *rps)
	defer pool.Close()

	failed := 0
	for _, res := range pool.FetchAll(ctx, urls) {
		if res.Err != nil {
			failed++
			logger.Printf("fetch failed | url=%s err=%v", res.URL, res.Err)
			continue
		}
		printHint(res.Posting)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func printHint(p posting.Posting) {
	fmt.Printf("url:      %s\n", p.URL)
	fmt.Printf("title:    %s\n", p.Title)
	fmt.Printf("industry: %s\n", orDash(p.Industry))

	fmt.Println("categories:")
	for _, f := range catalog.Facets(nil, p.Industry, false) {
		fmt.Printf("  %s (%s, %d skills)\n", f.Name, f.ID, len(f.Skills))
	}
	fmt.Println()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
