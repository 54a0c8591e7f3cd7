package posting

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"
)

// fetchHeadless renders the page in headless Chrome and reads the
// document text, for postings served as an empty shell plus script.
func (f *Fetcher) fetchHeadless(ctx context.Context, pageURL string) (Posting, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(userAgent),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var title, text string
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.Title(&title),
		chromedp.EvaluateAsDevTools(`document.body ? document.body.innerText : ""`, &text),
	)
	if err != nil {
		return Posting{}, err
	}

	return Posting{URL: pageURL, Title: title, Text: collapseSpace(text)}, nil
}
