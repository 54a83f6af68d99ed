// Copyright 2025 Oleh Yurkevych
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package scrape

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/yurkevych/parafii/core"
)

// The archive site answers plain HTTP clients with an error page, so
// requests present ordinary browser headers.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/114.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language": "uk-UA,uk;q=0.9,en-US;q=0.8,en;q=0.7",
	"Referer":         "https://rv.archives.gov.ua/",
	"Origin":          "https://rv.archives.gov.ua",
}

// Fetcher downloads and parses the archive listing pages.
type Fetcher struct {
	client      *http.Client
	limiter     *rate.Limiter
	listingURL  *url.URL
	concurrency int
	logger      *slog.Logger
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher) error

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *Fetcher) error {
		if client == nil {
			return errors.New("scrape: http client must not be nil")
		}
		f.client = client
		return nil
	}
}

// WithFetcherLogger sets a custom logger.
// Default is slog.Default().
func WithFetcherLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// NewFetcher creates a fetcher for the configured listing URL.
func NewFetcher(cfg *Config, opts ...FetcherOption) (*Fetcher, error) {
	listingURL, err := url.Parse(cfg.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("parse listing url: %w", err)
	}
	if !listingURL.IsAbs() {
		return nil, fmt.Errorf("listing url %q is not absolute", cfg.ListingURL)
	}

	concurrency := cfg.FetchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	fetchRate := rate.Limit(cfg.FetchRate)
	if fetchRate <= 0 {
		fetchRate = rate.Limit(1)
	}

	f := &Fetcher{
		client:      &http.Client{Timeout: cfg.FetchTimeout},
		limiter:     rate.NewLimiter(fetchRate, 1),
		listingURL:  listingURL,
		concurrency: concurrency,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// FetchCases downloads the opys index and every opys page, returning all
// extracted cases in index order. A failed opys page fails the whole run;
// a partial listing must never be mistaken for the full one.
func (f *Fetcher) FetchCases(ctx context.Context) ([]core.ArchiveCase, error) {
	index, err := f.fetchPage(ctx, f.listingURL, "")
	if err != nil {
		return nil, fmt.Errorf("fetch opys index: %w", err)
	}

	refs := parseOpysList(index, f.listingURL)
	f.logger.Debug("parsed opys index", "url", f.listingURL.String(), "opysCount", len(refs))
	if len(refs) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(f.concurrency)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	perOpys := make([][]core.ArchiveCase, len(refs))
	errs := make([]error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			doc, err := f.fetchPage(ctx, ref.URL, f.listingURL.String())
			if err != nil {
				errs[i] = fmt.Errorf("fetch opys %s: %w", ref.Number, err)
				return
			}
			perOpys[i] = parseCases(doc, ref.URL, ref.Number)
			f.logger.Debug("parsed opys page",
				"opys", ref.Number, "url", ref.URL.String(), "caseCount", len(perOpys[i]))
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	var cases []core.ArchiveCase
	for _, page := range perOpys {
		cases = append(cases, page...)
	}
	return cases, nil
}

func (f *Fetcher) fetchPage(ctx context.Context, pageURL *url.URL, referer string) (*html.Node, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, err
	}
	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return html.Parse(resp.Body)
}
