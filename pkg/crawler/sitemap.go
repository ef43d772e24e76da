package crawler

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/cml22/crawler-seo/pkg/fetch"
	"github.com/cml22/crawler-seo/pkg/parse"
	"github.com/cml22/crawler-seo/pkg/utils"
)

// maxSitemapDepth bounds recursive sitemap-index resolution
const maxSitemapDepth = 5

// SitemapResolver turns a sitemap source (URL or raw bytes) into the ordered
// list of page URLs it enumerates, following <sitemapindex> entries
// recursively. Child sitemap fetches go through the rate limiter so index
// resolution stays polite to the host.
type SitemapResolver struct {
	fetcher     *fetch.Fetcher
	rateLimiter *fetch.RateLimiter
	log         *logrus.Entry
}

// NewSitemapResolver creates a SitemapResolver
func NewSitemapResolver(fetcher *fetch.Fetcher, rateLimiter *fetch.RateLimiter, log *logrus.Entry) *SitemapResolver {
	return &SitemapResolver{
		fetcher:     fetcher,
		rateLimiter: rateLimiter,
		log:         log.WithField("component", "sitemap_resolver"),
	}
}

// Resolve fetches and parses the sitemap at sitemapURL, returning at most
// maxURLs page URLs in document order.
func (r *SitemapResolver) Resolve(ctx context.Context, sitemapURL string, maxURLs int) ([]string, error) {
	seen := map[string]struct{}{sitemapURL: {}}
	return r.resolveURL(ctx, sitemapURL, maxURLs, 0, seen)
}

// ResolveBytes parses uploaded sitemap content, fetching any child sitemaps
// it references.
func (r *SitemapResolver) ResolveBytes(ctx context.Context, data []byte, maxURLs int) ([]string, error) {
	result, err := parse.ParseSitemap(data)
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, result, maxURLs, 0, make(map[string]struct{}))
}

func (r *SitemapResolver) resolveURL(ctx context.Context, sitemapURL string, maxURLs, depth int, seen map[string]struct{}) ([]string, error) {
	if host := hostOf(sitemapURL); host != "" {
		r.rateLimiter.ApplyDelay(host, 0)
		r.rateLimiter.UpdateLastRequestTime(host)
	}

	resp, err := r.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %w", utils.ErrSitemapParse, sitemapURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", utils.ErrSitemapParse, sitemapURL, resp.StatusCode)
	}

	result, err := parse.ParseSitemap(resp.Body)
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, result, maxURLs, depth, seen)
}

// collect gathers page URLs from a parsed sitemap and recurses into child
// sitemaps. A child that fails to resolve is skipped, not fatal: a partial
// enumeration still gives the crawl something to do.
func (r *SitemapResolver) collect(ctx context.Context, result *parse.SitemapResult, maxURLs, depth int, seen map[string]struct{}) ([]string, error) {
	urls := result.PageURLs
	if len(urls) > maxURLs {
		urls = urls[:maxURLs]
	}

	if len(result.ChildSitemaps) > 0 && depth >= maxSitemapDepth {
		r.log.WithField("depth", depth).Warn("Sitemap index nesting too deep, ignoring children")
		return urls, nil
	}

	for _, child := range result.ChildSitemaps {
		if ctx.Err() != nil {
			r.log.WithField("urls", len(urls)).Info("Sitemap resolution cancelled, returning partial enumeration")
			break
		}
		if len(urls) >= maxURLs {
			break
		}
		if _, dup := seen[child]; dup {
			continue
		}
		seen[child] = struct{}{}

		childURLs, err := r.resolveURL(ctx, child, maxURLs-len(urls), depth+1, seen)
		if err != nil {
			r.log.WithError(err).WithField("sitemap", child).Warn("Skipping unresolvable child sitemap")
			continue
		}
		urls = append(urls, childURLs...)
	}

	return urls, nil
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return parsed.Host
}
