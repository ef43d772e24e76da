// Package audit evaluates crawled page records against a registry of SEO
// rules and produces a flat list of findings. All rules are pure functions of
// their input, so a given record set always audits to the same findings.
package audit

import (
	"github.com/cml22/crawler-seo/pkg/models"
)

// CheckFunc is one per-page rule. It must be pure: the same record always
// yields the same findings.
type CheckFunc func(page *models.PageRecord) []models.Finding

// Check is a named, independently testable per-page rule
type Check struct {
	Name string
	Fn   CheckFunc
}

// perPageChecks is the rule registry, applied to every record in order
var perPageChecks = []Check{
	{"response_codes", checkResponseCodes},
	{"security", checkSecurity},
	{"url", checkURL},
	{"page_title", checkPageTitle},
	{"meta_description", checkMetaDescription},
	{"h1", checkH1},
	{"h2", checkH2},
	{"images", checkImages},
	{"canonicals", checkCanonicals},
	{"directives", checkDirectives},
	{"links", checkLinks},
	{"content", checkContent},
	{"validation", checkValidation},
}

// RunAudit applies every per-page rule to every record, then the cross-page
// duplicate rules over the full set. It requires the crawl to be complete:
// duplicate detection is inherently global.
func RunAudit(records []models.PageRecord) []models.Finding {
	var findings []models.Finding

	for i := range records {
		for _, check := range perPageChecks {
			findings = append(findings, check.Fn(&records[i])...)
		}
	}

	findings = append(findings, checkDuplicates(records)...)

	return findings
}
