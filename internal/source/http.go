package source

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"scheduleView/internal/schedule"
)

// HTTP downloads the listing page on every fetch.
type HTTP struct {
	url      string
	selector string
	client   *http.Client
}

func NewHTTP(url, selector string, timeout time.Duration) *HTTP {
	return &HTTP{
		url:      url,
		selector: selector,
		client:   &http.Client{Timeout: timeout},
	}
}

func (h *HTTP) Fetch(ctx context.Context) (schedule.Table, error) {
	const op = "source.HTTP.Fetch"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status %s", op, resp.Status)
	}

	return ParseHTMLTable(resp.Body, h.selector)
}
