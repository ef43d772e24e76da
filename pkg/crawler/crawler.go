// Package crawler drives the crawl loop: fetch, extract, enqueue, repeat.
// A single worker processes one URL at a time, which bounds load on the
// crawled server and keeps frontier state free of races.
package crawler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cml22/crawler-seo/pkg/config"
	"github.com/cml22/crawler-seo/pkg/extract"
	"github.com/cml22/crawler-seo/pkg/fetch"
	"github.com/cml22/crawler-seo/pkg/frontier"
	"github.com/cml22/crawler-seo/pkg/models"
	"github.com/cml22/crawler-seo/pkg/parse"
	"github.com/cml22/crawler-seo/pkg/utils"
)

// ProgressFunc is called after each processed page with the number of pages
// done so far, the run's effective page cap, and the URL just processed.
// The cap is maxPages in recursive mode; in list mode it is the list length
// after capping, since a shorter list exhausts the run before maxPages can.
type ProgressFunc func(processed, total int, url string)

// Crawler orchestrates a crawl run
type Crawler struct {
	fetcher   *fetch.Fetcher
	extractor *extract.Extractor
	maxPages  int
	delay     time.Duration
	progress  ProgressFunc
	log       *logrus.Entry
	runID     string
}

// New creates a Crawler. progress may be nil.
func New(fetcher *fetch.Fetcher, extractor *extract.Extractor, cfg *config.AppConfig, progress ProgressFunc, log *logrus.Entry) *Crawler {
	runID := uuid.New().String()
	return &Crawler{
		fetcher:   fetcher,
		extractor: extractor,
		maxPages:  cfg.MaxPages,
		delay:     cfg.RequestDelay,
		progress:  progress,
		log:       log.WithFields(logrus.Fields{"component": "crawler", "run_id": runID}),
		runID:     runID,
	}
}

// RunID identifies this crawl run in logs and reports
func (c *Crawler) RunID() string {
	return c.runID
}

// Crawl runs a breadth-first traversal from the seed URL, following internal
// links until the frontier empties, the page cap is hit, or ctx is cancelled.
// Cancellation is cooperative: it is polled once per iteration, an in-flight
// fetch completes, and the records collected so far are still returned.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) ([]models.PageRecord, error) {
	normalizedSeed, parsed, err := parse.ParseAndNormalize(seedURL)
	if err != nil {
		return nil, err
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: seed URL '%s' must be absolute http(s)", utils.ErrParsing, seedURL)
	}

	c.log.WithFields(logrus.Fields{
		"seed": normalizedSeed, "max_pages": c.maxPages, "delay": c.delay,
	}).Info("Starting recursive crawl")

	fr := frontier.New(c.maxPages)
	fr.Seed(normalizedSeed)

	var results []models.PageRecord
	for len(results) < c.maxPages {
		if ctx.Err() != nil {
			c.log.WithField("pages", len(results)).Info("Crawl cancelled, returning partial results")
			return results, nil
		}

		item, ok := fr.Next()
		if !ok {
			break
		}

		record, outlinks := c.processURL(ctx, item.URL, item.Depth)
		results = append(results, record)

		for _, link := range outlinks {
			fr.Enqueue(link, item.Depth+1)
		}

		if c.progress != nil {
			c.progress(len(results), c.maxPages, item.URL)
		}
		if !c.pause(ctx) {
			c.log.WithField("pages", len(results)).Info("Crawl cancelled, returning partial results")
			return results, nil
		}
	}

	c.log.WithFields(logrus.Fields{
		"pages": len(results), "discovered": fr.VisitedCount(),
	}).Info("Recursive crawl complete")
	return results, nil
}

// CrawlList fetches a pre-enumerated list of URLs (sitemap mode): every entry
// at depth 0, in order, with no link discovery or deduplication. The list is
// capped to maxPages.
func (c *Crawler) CrawlList(ctx context.Context, urls []string) ([]models.PageRecord, error) {
	if len(urls) > c.maxPages {
		urls = urls[:c.maxPages]
	}
	if len(urls) == 0 {
		c.log.Warn("URL list is empty, nothing to crawl")
		return nil, nil
	}

	c.log.WithFields(logrus.Fields{
		"urls": len(urls), "delay": c.delay,
	}).Info("Starting list crawl")

	var results []models.PageRecord
	for _, rawURL := range urls {
		if ctx.Err() != nil {
			c.log.WithField("pages", len(results)).Info("Crawl cancelled, returning partial results")
			return results, nil
		}

		pageURL := rawURL
		if normalized, _, err := parse.ParseAndNormalize(rawURL); err == nil {
			pageURL = normalized
		}

		record, _ := c.processURL(ctx, pageURL, 0)
		results = append(results, record)

		if c.progress != nil {
			c.progress(len(results), len(urls), pageURL)
		}
		if !c.pause(ctx) {
			c.log.WithField("pages", len(results)).Info("Crawl cancelled, returning partial results")
			return results, nil
		}
	}

	c.log.WithField("pages", len(results)).Info("List crawl complete")
	return results, nil
}

// processURL fetches one URL and turns the outcome into a page record. Fetch
// failures degrade to a typed error record; they never abort the crawl.
func (c *Crawler) processURL(ctx context.Context, pageURL string, depth int) (models.PageRecord, []string) {
	resp, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		status := fetch.ClassifyError(err)
		c.log.WithFields(logrus.Fields{
			"url": pageURL, "status": status.String(),
		}).Warn("Fetch failed, recording error page")
		return models.NewPageRecord(pageURL, status, depth), nil
	}
	return c.extractor.Extract(pageURL, resp, depth)
}

// pause applies the inter-request politeness delay. Returns false if the
// context was cancelled while waiting.
func (c *Crawler) pause(ctx context.Context) bool {
	if c.delay <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-time.After(c.delay):
		return true
	case <-ctx.Done():
		return false
	}
}
