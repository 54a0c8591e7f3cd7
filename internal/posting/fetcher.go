package posting

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

type Posting struct {
	URL      string
	Title    string
	Text     string
	Industry string
}

// Fetcher retrieves a posting page and derives its industry hint. The
// plain collector is tried first; pages that come back with almost no
// text are assumed to be script-rendered and retried headless.
type Fetcher struct {
	logger          *log.Logger
	headlessEnabled bool
}

func NewFetcher(logger *log.Logger, headlessEnabled bool) *Fetcher {
	return &Fetcher{logger: logger, headlessEnabled: headlessEnabled}
}

const minUsableTextLen = 200

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Posting, error) {
	if f == nil {
		return Posting{}, fmt.Errorf("nil fetcher")
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Posting{}, fmt.Errorf("invalid posting url")
	}

	p, err := f.fetchStatic(ctx, u.String())
	if err == nil && len(p.Text) >= minUsableTextLen {
		p.Industry = ExtractIndustry(p.Title + " " + p.Text)
		return p, nil
	}

	if f.headlessEnabled {
		hp, herr := f.fetchHeadless(ctx, u.String())
		if herr == nil {
			hp.Industry = ExtractIndustry(hp.Title + " " + hp.Text)
			return hp, nil
		}
		if f.logger != nil {
			f.logger.Printf("posting headless fetch failed | url=%s err=%v", u.String(), herr)
		}
	}

	if err != nil {
		return Posting{}, err
	}
	p.Industry = ExtractIndustry(p.Title + " " + p.Text)
	return p, nil
}

func (f *Fetcher) fetchStatic(ctx context.Context, pageURL string) (Posting, error) {
	c := colly.NewCollector(colly.UserAgent(userAgent))
	c.SetRequestTimeout(15 * time.Second)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond})

	out := Posting{URL: pageURL}

	c.OnRequest(func(r *colly.Request) {
		select {
		case <-ctx.Done():
			r.Abort()
		default:
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if out.Title == "" {
			out.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("body", func(e *colly.HTMLElement) {
		out.Text = collapseSpace(e.Text)
	})

	var fetchErr error
	c.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(pageURL); err != nil {
		return Posting{}, err
	}
	c.Wait()

	if fetchErr != nil {
		return Posting{}, fetchErr
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Posting{}, ctxErr
	}
	return out, nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
