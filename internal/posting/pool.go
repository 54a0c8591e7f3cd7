package posting

import (
	"context"
	"sync"
	"time"
)

type FetchResult struct {
	URL     string
	Posting Posting
	Err     error
}

// Pool fetches several postings concurrently with a bounded worker
// count and an optional requests-per-second cap, so bulk hint lookups
// stay polite to job boards.
type Pool struct {
	fetcher *Fetcher
	workers int
	rate    *time.Ticker
}

func NewPool(fetcher *Fetcher, workers, rps int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{fetcher: fetcher, workers: workers}
	if rps > 0 {
		p.rate = time.NewTicker(time.Second / time.Duration(rps))
	}
	return p
}

// FetchAll resolves every URL and reports results in input order.
func (p *Pool) FetchAll(ctx context.Context, urls []string) []FetchResult {
	out := make([]FetchResult, len(urls))
	if p == nil || p.fetcher == nil || len(urls) == 0 {
		return out
	}

	type job struct {
		idx int
		url string
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				if p.rate != nil {
					select {
					case <-ctx.Done():
						out[j.idx] = FetchResult{URL: j.url, Err: ctx.Err()}
						continue
					case <-p.rate.C:
					}
				}
				posting, err := p.fetcher.Fetch(ctx, j.url)
				out[j.idx] = FetchResult{URL: j.url, Posting: posting, Err: err}
			}
		}()
	}

	for i, u := range urls {
		select {
		case <-ctx.Done():
			out[i] = FetchResult{URL: u, Err: ctx.Err()}
		case jobs <- job{idx: i, url: u}:
		}
	}
	close(jobs)
	wg.Wait()

	return out
}

func (p *Pool) Close() {
	if p != nil && p.rate != nil {
		p.rate.Stop()
	}
}
