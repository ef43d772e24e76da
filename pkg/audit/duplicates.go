package audit

import (
	"fmt"

	"github.com/cml22/crawler-seo/pkg/models"
	"github.com/cml22/crawler-seo/pkg/utils"
)

// signalGroups buckets page URLs by exact signal value, preserving first-seen
// order of both the values and the URLs within each bucket. Insertion order
// is what makes duplicate findings deterministic across runs.
type signalGroups struct {
	order []string
	urls  map[string][]string
}

func groupBySignal(records []models.PageRecord, signal func(*models.PageRecord) string) signalGroups {
	groups := signalGroups{urls: make(map[string][]string)}
	for i := range records {
		value := signal(&records[i])
		if value == "" {
			continue
		}
		if _, seen := groups.urls[value]; !seen {
			groups.order = append(groups.order, value)
		}
		groups.urls[value] = append(groups.urls[value], records[i].URL)
	}
	return groups
}

// checkDuplicates runs the cross-page rules: exact-match duplicate titles,
// meta descriptions, and H1s across the whole record set. Every page in a
// duplicate group gets its own finding.
func checkDuplicates(records []models.PageRecord) []models.Finding {
	var findings []models.Finding

	titles := groupBySignal(records, func(p *models.PageRecord) string { return p.Title })
	for _, title := range titles.order {
		urls := titles.urls[title]
		if len(urls) < 2 {
			continue
		}
		for _, url := range urls {
			findings = append(findings, models.Finding{
				Category: CategoryPageTitles, CheckName: "Duplicate",
				Type: models.FindingOpportunity, Priority: models.PriorityMedium, URL: url,
				Description: fmt.Sprintf("Title duplicated across %d pages: \"%s\"", len(urls), utils.TruncateString(title, 60)),
				Guidance:    "Every page should have a unique title to avoid keyword cannibalization.",
			})
		}
	}

	metas := groupBySignal(records, func(p *models.PageRecord) string { return p.MetaDescription })
	for _, meta := range metas.order {
		urls := metas.urls[meta]
		if len(urls) < 2 {
			continue
		}
		for _, url := range urls {
			findings = append(findings, models.Finding{
				Category: CategoryMetaDescription, CheckName: "Duplicate",
				Type: models.FindingOpportunity, Priority: models.PriorityMedium, URL: url,
				Description: fmt.Sprintf("Meta description duplicated across %d pages: \"%s...\"", len(urls), utils.TruncateString(meta, 60)),
				Guidance:    "Every page should have a unique meta description.",
			})
		}
	}

	h1s := groupBySignal(records, func(p *models.PageRecord) string { return p.H1 })
	for _, h1 := range h1s.order {
		urls := h1s.urls[h1]
		if len(urls) < 2 {
			continue
		}
		for _, url := range urls {
			findings = append(findings, models.Finding{
				Category: CategoryH1, CheckName: "Duplicate",
				Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: url,
				Description: fmt.Sprintf("H1 duplicated across %d pages: \"%s\"", len(urls), utils.TruncateString(h1, 60)),
				Guidance:    "Every page should have a unique H1.",
			})
		}
	}

	return findings
}
