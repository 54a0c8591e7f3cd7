package usecase

import (
	"context"

	"workmatch/internal/catalog"
	"workmatch/internal/posting"
)

type PostingHint struct {
	URL        string   `json:"url"`
	Title      string   `json:"title"`
	Industry   string   `json:"industry"`
	Categories []string `json:"categories"`
}

type PostingUsecase interface {
	FetchHint(ctx context.Context, url string) (PostingHint, error)
}

type postingFetcher interface {
	Fetch(ctx context.Context, url string) (posting.Posting, error)
}

type Posting struct {
	fetcher postingFetcher
}

func NewPostingUsecase(fetcher postingFetcher) *Posting {
	return &Posting{fetcher: fetcher}
}

// FetchHint retrieves the posting and reports which facet categories
// its industry maps to. An unrecognized industry is not an error; the
// mapping falls back exactly like the facet browser does.
func (p *Posting) FetchHint(ctx context.Context, url string) (PostingHint, error) {
	fetched, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return PostingHint{}, ErrPostingUnreachable
	}

	ids := make([]string, 0)
	for _, f := range catalog.Facets(nil, fetched.Industry, false) {
		ids = append(ids, f.ID)
	}

	return PostingHint{
		URL:        fetched.URL,
		Title:      fetched.Title,
		Industry:   fetched.Industry,
		Categories: ids,
	}, nil
}
