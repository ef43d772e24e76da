package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cml22/crawler-seo/pkg/audit"
	"github.com/cml22/crawler-seo/pkg/config"
	"github.com/cml22/crawler-seo/pkg/crawler"
	"github.com/cml22/crawler-seo/pkg/extract"
	"github.com/cml22/crawler-seo/pkg/fetch"
	"github.com/cml22/crawler-seo/pkg/models"
	"github.com/cml22/crawler-seo/pkg/report"
)

func main() {
	// --- Early Initialization & Flags ---
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.InfoLevel) // Default level

	configFileFlag := flag.String("config", "", "Path to YAML config file (optional)")
	urlFlag := flag.String("url", "", "Seed URL for a recursive crawl")
	sitemapFlag := flag.String("sitemap", "", "Sitemap URL to enumerate instead of crawling recursively")
	sitemapFileFlag := flag.String("sitemap-file", "", "Path to a local sitemap XML file")
	maxPagesFlag := flag.Int("max-pages", 0, "Maximum pages to crawl (10-500, overrides config)")
	delayFlag := flag.Int("delay-ms", -1, "Delay between requests in milliseconds (0-2000, overrides config)")
	logLevelFlag := flag.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)")
	pagesCSVFlag := flag.String("pages-csv", "pages.csv", "Output path for the crawled pages CSV")
	findingsCSVFlag := flag.String("findings-csv", "findings.csv", "Output path for the audit findings CSV")
	flag.Parse()

	// --- Logger Configuration ---
	level, err := logrus.ParseLevel(*logLevelFlag)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'info'. Error: %v", *logLevelFlag, err)
	} else {
		log.SetLevel(level)
	}

	// --- Load & Validate Configuration ---
	var appCfg config.AppConfig
	if *configFileFlag != "" {
		log.Infof("Loading configuration from %s", *configFileFlag)
		appCfg, err = config.Load(*configFileFlag)
		if err != nil {
			log.Fatalf("Config error: %v", err)
		}
	}
	if *maxPagesFlag > 0 {
		appCfg.MaxPages = *maxPagesFlag
	}
	if *delayFlag >= 0 {
		appCfg.RequestDelay = time.Duration(*delayFlag) * time.Millisecond
	}
	warnings, err := appCfg.Validate()
	if err != nil {
		log.Fatalf("Config validation error: %v", err)
	}
	for _, w := range warnings {
		log.Warn(w)
	}
	log.Infof("Effective config: MaxPages:%d, Delay:%v, FetchTimeout:%v",
		appCfg.MaxPages, appCfg.RequestDelay, appCfg.FetchTimeout)

	sourceCount := 0
	for _, f := range []string{*urlFlag, *sitemapFlag, *sitemapFileFlag} {
		if f != "" {
			sourceCount++
		}
	}
	if sourceCount != 1 {
		log.Fatal("Exactly one of -url, -sitemap, or -sitemap-file is required.")
	}

	// --- Context & Signal Handling ---
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		sig := <-sigChan
		log.Warnf("Received signal: %v. Finishing the current page, then stopping...", sig)
		cancel()

		select {
		case sig = <-sigChan:
			log.Warnf("Received second signal: %v. Forcing exit.", sig)
			os.Exit(1)
		case <-time.After(30 * time.Second):
			log.Warn("Graceful shutdown period exceeded after signal. Forcing exit.")
			os.Exit(1)
		}
	}()

	// --- Components ---
	baseLog := logrus.NewEntry(log)
	httpClient := fetch.NewClient(appCfg.HTTPClientSettings, log)
	fetcher := fetch.NewFetcher(httpClient, appCfg.UserAgent, appCfg.MaxBodySizeBytes, baseLog)
	extractor := extract.NewExtractor(baseLog)
	rateLimiter := fetch.NewRateLimiter(appCfg.RequestDelay, baseLog)

	progress := func(processed, total int, url string) {
		log.Infof("Crawled %d/%d: %s", processed, total, url)
	}
	c := crawler.New(fetcher, extractor, &appCfg, progress, baseLog)
	log.Infof("Run ID: %s", c.RunID())

	// --- Crawl ---
	var records []models.PageRecord
	switch {
	case *urlFlag != "":
		records, err = c.Crawl(ctx, *urlFlag)
	case *sitemapFlag != "":
		resolver := crawler.NewSitemapResolver(fetcher, rateLimiter, baseLog)
		var urls []string
		urls, err = resolver.Resolve(ctx, *sitemapFlag, appCfg.MaxPages)
		if err == nil {
			records, err = c.CrawlList(ctx, urls)
		}
	case *sitemapFileFlag != "":
		var data []byte
		data, err = os.ReadFile(*sitemapFileFlag)
		if err != nil {
			log.Fatalf("Read sitemap file '%s' error: %v", *sitemapFileFlag, err)
		}
		resolver := crawler.NewSitemapResolver(fetcher, rateLimiter, baseLog)
		var urls []string
		urls, err = resolver.ResolveBytes(ctx, data, appCfg.MaxPages)
		if err == nil {
			records, err = c.CrawlList(ctx, urls)
		}
	}
	if err != nil {
		log.Fatalf("Crawl failed: %v", err)
	}
	if len(records) == 0 {
		log.Warn("No pages crawled, nothing to audit.")
		os.Exit(0)
	}

	// --- Audit ---
	log.Infof("Auditing %d pages...", len(records))
	findings := audit.RunAudit(records)

	// --- Reports ---
	if err := writeCSV(*pagesCSVFlag, func(f *os.File) error {
		return report.WritePagesCSV(f, records)
	}); err != nil {
		log.Errorf("Writing pages CSV: %v", err)
	} else {
		log.Infof("Wrote %d pages to %s", len(records), *pagesCSVFlag)
	}
	if err := writeCSV(*findingsCSVFlag, func(f *os.File) error {
		return report.WriteFindingsCSV(f, findings)
	}); err != nil {
		log.Errorf("Writing findings CSV: %v", err)
	} else {
		log.Infof("Wrote %d findings to %s", len(findings), *findingsCSVFlag)
	}

	// --- Summary ---
	summary := report.Summarize(records, findings)
	log.Info("================ CRAWL FINISHED ================")
	log.Infof("Summary: %s", summary)

	if ctx.Err() != nil {
		log.Warn("Crawl was interrupted; results are partial.")
	}
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Sync()
}
