package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"scheduleView/internal/schedule"
)

// Browser loads the listing page in headless Chromium so tables filled in
// by scripts are captured after they render.
type Browser struct {
	log      *slog.Logger
	url      string
	selector string
	timeout  time.Duration

	allocCtx context.Context
	cancel   context.CancelFunc
}

func NewBrowser(ctx context.Context, log *slog.Logger, url, selector string, timeout time.Duration) *Browser {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)

	return &Browser{
		log:      log.With(slog.String("component", "source/browser")),
		url:      url,
		selector: selector,
		timeout:  timeout,
		allocCtx: allocCtx,
		cancel:   cancel,
	}
}

func (b *Browser) Fetch(ctx context.Context) (schedule.Table, error) {
	const op = "source.Browser.Fetch"

	tabCtx, cancelTab := chromedp.NewContext(b.allocCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()

	// Tie the tab to the caller's lifetime as well as the allocator's.
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var page string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(b.url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.OuterHTML("html", &page, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: chromedp run failed: %w", op, err)
	}

	b.log.Debug("page captured", slog.String("url", b.url), slog.Int("bytes", len(page)))

	return ParseHTMLTable(strings.NewReader(page), b.selector)
}

func (b *Browser) Close() error {
	b.cancel()
	return nil
}
