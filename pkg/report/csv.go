// Package report renders crawl and audit output as CSV row sets and
// aggregate summaries.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cml22/crawler-seo/pkg/models"
)

var pageHeader = []string{
	"URL", "Status", "Depth",
	"Title", "Title Count", "Meta Description", "Meta Description Count",
	"Meta Robots", "X-Robots-Tag",
	"H1", "H1 Count", "H2 Count",
	"Image Count", "Canonical Count",
	"Internal Outlinks", "External Outlinks", "Nofollow Outlinks", "Empty Anchor Outlinks",
	"Word Count", "HTML Size Bytes",
}

var findingHeader = []string{
	"Category", "Check", "Type", "Priority", "URL", "Description", "Guidance",
}

// WritePagesCSV writes one row per page record, UTF-8, with a header row
func WritePagesCSV(w io.Writer, records []models.PageRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(pageHeader); err != nil {
		return fmt.Errorf("writing pages CSV header: %w", err)
	}
	for i := range records {
		rec := &records[i]
		row := []string{
			rec.URL,
			rec.Status.String(),
			strconv.Itoa(rec.Depth),
			rec.Title,
			strconv.Itoa(rec.TitleCount),
			rec.MetaDescription,
			strconv.Itoa(rec.MetaDescriptionCount),
			rec.MetaRobots,
			rec.XRobotsTag,
			rec.H1,
			strconv.Itoa(rec.H1Count),
			strconv.Itoa(len(rec.H2List)),
			strconv.Itoa(len(rec.Images)),
			strconv.Itoa(len(rec.Canonicals)),
			strconv.Itoa(rec.InternalOutlinks),
			strconv.Itoa(rec.ExternalOutlinks),
			strconv.Itoa(rec.NofollowOutlinks),
			strconv.Itoa(rec.EmptyAnchorOutlinks),
			strconv.Itoa(rec.WordCount),
			strconv.Itoa(rec.HTMLSizeBytes),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing pages CSV row for %s: %w", rec.URL, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFindingsCSV writes one row per finding, UTF-8, with a header row
func WriteFindingsCSV(w io.Writer, findings []models.Finding) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(findingHeader); err != nil {
		return fmt.Errorf("writing findings CSV header: %w", err)
	}
	for _, f := range findings {
		row := []string{
			f.Category,
			f.CheckName,
			string(f.Type),
			string(f.Priority),
			f.URL,
			f.Description,
			f.Guidance,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing findings CSV row for %s: %w", f.URL, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary aggregates a crawl run for the completion banner
type Summary struct {
	PagesCrawled  int
	ErrorPages    int // Pages whose fetch failed (no HTTP response)
	Issues        int
	Warnings      int
	Opportunities int
	ByPriority    map[models.Priority]int
}

// Summarize counts records and findings by class
func Summarize(records []models.PageRecord, findings []models.Finding) Summary {
	s := Summary{
		PagesCrawled: len(records),
		ByPriority:   make(map[models.Priority]int),
	}
	for i := range records {
		if !records[i].Status.IsHTTP() {
			s.ErrorPages++
		}
	}
	for _, f := range findings {
		switch f.Type {
		case models.FindingIssue:
			s.Issues++
		case models.FindingWarning:
			s.Warnings++
		case models.FindingOpportunity:
			s.Opportunities++
		}
		s.ByPriority[f.Priority]++
	}
	return s
}

// String renders the summary as a single log-friendly line
func (s Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pages=%d errors=%d issues=%d warnings=%d opportunities=%d",
		s.PagesCrawled, s.ErrorPages, s.Issues, s.Warnings, s.Opportunities)
	for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
		if n := s.ByPriority[p]; n > 0 {
			fmt.Fprintf(&b, " %s=%d", strings.ToLower(string(p)), n)
		}
	}
	return b.String()
}
