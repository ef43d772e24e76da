package audit

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cml22/crawler-seo/pkg/models"
)

// healthyRecord builds a record that trips no per-page rules, as a baseline
// for tests that want exactly one deviation.
func healthyRecord(url string) models.PageRecord {
	rec := models.NewPageRecord(url, models.HTTPStatus(200), 0)
	rec.Title = strings.Repeat("t", 40)
	rec.TitleCount = 1
	rec.MetaDescription = strings.Repeat("d", 100)
	rec.MetaDescriptionCount = 1
	rec.H1 = "A perfectly fine heading"
	rec.H1Count = 1
	rec.H2List = []string{"Section"}
	rec.Canonicals = []string{url}
	rec.ResponseHeaders = map[string]string{
		"strict-transport-security": "max-age=63072000",
		"content-security-policy":   "default-src 'self'",
		"x-content-type-options":    "nosniff",
		"x-frame-options":           "DENY",
	}
	rec.InternalOutlinks = 5
	rec.WordCount = 500
	return rec
}

func findingsFor(findings []models.Finding, category, checkName string) []models.Finding {
	var out []models.Finding
	for _, f := range findings {
		if f.Category == category && f.CheckName == checkName {
			out = append(out, f)
		}
	}
	return out
}

func TestRunAudit_HealthyPageYieldsNoFindings(t *testing.T) {
	findings := RunAudit([]models.PageRecord{healthyRecord("https://x.test/a")})
	if len(findings) != 0 {
		t.Errorf("expected no findings for a healthy page, got %v", findings)
	}
}

func TestRunAudit_404Scenario(t *testing.T) {
	rec := models.NewPageRecord("https://x.test/a", models.HTTPStatus(404), 0)
	findings := checkResponseCodes(&rec)

	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 response-code finding, got %d: %v", len(findings), findings)
	}
	f := findings[0]
	if f.Category != "Response Codes" || f.CheckName != "404 Not Found" ||
		f.Type != models.FindingIssue || f.Priority != models.PriorityHigh {
		t.Errorf("unexpected finding: %+v", f)
	}
}

func TestCheckResponseCodes(t *testing.T) {
	tests := []struct {
		name      string
		status    models.PageStatus
		checkName string
		ftype     models.FindingType
		priority  models.Priority
	}{
		{"redirect", models.HTTPStatus(301), "Redirection 301", models.FindingWarning, models.PriorityMedium},
		{"gone", models.HTTPStatus(410), "410 Gone", models.FindingIssue, models.PriorityMedium},
		{"forbidden", models.HTTPStatus(403), "Client Error 403", models.FindingIssue, models.PriorityHigh},
		{"server error", models.HTTPStatus(503), "Server Error 503", models.FindingIssue, models.PriorityHigh},
		{"timeout", models.ErrorStatus(models.ErrorTagTimeout, ""), "No Response", models.FindingIssue, models.PriorityHigh},
		{"connection", models.ErrorStatus(models.ErrorTagConnection, ""), "No Response", models.FindingIssue, models.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := models.NewPageRecord("https://x.test/p", tt.status, 0)
			findings := checkResponseCodes(&rec)
			if len(findings) != 1 {
				t.Fatalf("expected 1 finding, got %d", len(findings))
			}
			f := findings[0]
			if f.CheckName != tt.checkName || f.Type != tt.ftype || f.Priority != tt.priority {
				t.Errorf("got %s/%s/%s, want %s/%s/%s",
					f.CheckName, f.Type, f.Priority, tt.checkName, tt.ftype, tt.priority)
			}
		})
	}

	t.Run("200 yields nothing", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		if findings := checkResponseCodes(&rec); len(findings) != 0 {
			t.Errorf("expected no findings for 200, got %v", findings)
		}
	})
}

func TestCheckSecurity(t *testing.T) {
	rec := models.NewPageRecord("http://x.test/p", models.HTTPStatus(200), 0)
	rec.MixedContentURLs = []string{"http://cdn.test/a.js"}
	findings := checkSecurity(&rec)

	// http scheme, mixed content, and all four missing headers
	if len(findings) != 6 {
		t.Fatalf("expected 6 security findings, got %d: %v", len(findings), findings)
	}
	if len(findingsFor(findings, "Security", "HTTP URL")) != 1 {
		t.Error("missing HTTP URL finding")
	}
	if len(findingsFor(findings, "Security", "Mixed Content")) != 1 {
		t.Error("missing Mixed Content finding")
	}
	if len(findingsFor(findings, "Security", "Missing HSTS Header")) != 1 {
		t.Error("missing HSTS finding")
	}
}

func TestCheckURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		checkName string
	}{
		{"double slash", "https://x.test/a//b", "Multiple Slashes"},
		{"encoded space", "https://x.test/a%20b", "Contains A Space"},
		{"uppercase path", "https://x.test/About", "Uppercase"},
		{"query string", "https://x.test/p?id=3", "Parameters"},
		{"underscore", "https://x.test/my_page", "Underscores"},
		{"non ascii", "https://x.test/café", "Non ASCII Characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := models.NewPageRecord(tt.url, models.HTTPStatus(200), 0)
			findings := checkURL(&rec)
			if len(findingsFor(findings, "URL", tt.checkName)) != 1 {
				t.Errorf("expected %q finding for %s, got %v", tt.checkName, tt.url, findings)
			}
		})
	}

	t.Run("over 115 characters", func(t *testing.T) {
		long := "https://x.test/" + strings.Repeat("a", 115)
		rec := models.NewPageRecord(long, models.HTTPStatus(200), 0)
		findings := checkURL(&rec)
		if len(findingsFor(findings, "URL", "Over 115 Characters")) != 1 {
			t.Errorf("expected length finding, got %v", findings)
		}
	})

	t.Run("clean URL yields nothing", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/a-clean-path", models.HTTPStatus(200), 0)
		if findings := checkURL(&rec); len(findings) != 0 {
			t.Errorf("expected no findings, got %v", findings)
		}
	})
}

func TestCheckPageTitle(t *testing.T) {
	t.Run("missing title is terminal", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.TitleCount = 0
		findings := checkPageTitle(&rec)
		if len(findings) != 1 || findings[0].CheckName != "Missing" {
			t.Fatalf("expected single Missing finding, got %v", findings)
		}
		if findings[0].Type != models.FindingIssue || findings[0].Priority != models.PriorityHigh {
			t.Errorf("Missing title should be Issue/High, got %s/%s", findings[0].Type, findings[0].Priority)
		}
	})

	t.Run("length boundaries are strict", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.TitleCount = 1

		rec.Title = strings.Repeat("a", 60) // exactly 60: no finding
		if got := findingsFor(checkPageTitle(&rec), "Page Titles", "Over 60 Characters"); len(got) != 0 {
			t.Errorf("title of exactly 60 chars must not fire, got %v", got)
		}

		rec.Title = strings.Repeat("a", 61)
		if got := findingsFor(checkPageTitle(&rec), "Page Titles", "Over 60 Characters"); len(got) != 1 {
			t.Errorf("title of 61 chars must fire, got %v", got)
		}

		rec.Title = strings.Repeat("a", 29)
		if got := findingsFor(checkPageTitle(&rec), "Page Titles", "Below 30 Characters"); len(got) != 1 {
			t.Errorf("title of 29 chars must fire Below 30, got %v", got)
		}
	})

	t.Run("length counts runes not bytes", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.TitleCount = 1
		rec.Title = strings.Repeat("é", 60) // 120 bytes, 60 chars
		if got := findingsFor(checkPageTitle(&rec), "Page Titles", "Over 60 Characters"); len(got) != 0 {
			t.Errorf("60 multi-byte chars must not fire, got %v", got)
		}
	})

	t.Run("same as h1", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.TitleCount = 1
		rec.Title = "Exactly The Same Heading Text Here"
		rec.H1 = "  exactly the same heading text here "
		if got := findingsFor(checkPageTitle(&rec), "Page Titles", "Same as H1"); len(got) != 1 {
			t.Errorf("case-insensitive trimmed match must fire, got %v", got)
		}
	})
}

func TestCheckImages_AltTriState(t *testing.T) {
	empty := ""
	long := strings.Repeat("x", 101)
	fine := "a short description"

	rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
	rec.Images = []models.ImageRef{
		{Src: "/a.png", Alt: nil},
		{Src: "/b.png", Alt: &empty},
		{Src: "/c.png", Alt: &long},
		{Src: "/d.png", Alt: &fine},
	}

	findings := checkImages(&rec)
	if len(findings) != 3 {
		t.Fatalf("expected 3 image findings, got %d: %v", len(findings), findings)
	}

	want := []string{"Missing Alt Attribute", "Missing Alt Text", "Alt Text Over 100 Characters"}
	for i, name := range want {
		if findings[i].CheckName != name {
			t.Errorf("finding %d: got %q, want %q", i, findings[i].CheckName, name)
		}
	}
	// Absent and empty alt are both Issue/Medium but distinguishable by name
	for _, f := range findings[:2] {
		if f.Type != models.FindingIssue || f.Priority != models.PriorityMedium {
			t.Errorf("%s should be Issue/Medium, got %s/%s", f.CheckName, f.Type, f.Priority)
		}
	}
}

func TestCheckCanonicals(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		findings := checkCanonicals(&rec)
		if len(findings) != 1 || findings[0].CheckName != "Missing" {
			t.Errorf("got %v", findings)
		}
	})

	t.Run("multiple conflicting", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.Canonicals = []string{"https://x.test/p", "https://x.test/q"}
		findings := checkCanonicals(&rec)
		if len(findings) != 1 || findings[0].CheckName != "Multiple Conflicting" {
			t.Errorf("got %v", findings)
		}
		if findings[0].Priority != models.PriorityHigh {
			t.Errorf("Multiple Conflicting should be High, got %s", findings[0].Priority)
		}
	})

	t.Run("canonicalised and relative both fire", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.Canonicals = []string{"/other"}
		findings := checkCanonicals(&rec)
		if len(findingsFor(findings, "Canonicals", "Canonicalised")) != 1 {
			t.Errorf("Canonicalised should fire, got %v", findings)
		}
		if len(findingsFor(findings, "Canonicals", "Canonical Is Relative")) != 1 {
			t.Errorf("Canonical Is Relative should fire, got %v", findings)
		}
	})

	t.Run("self canonical is clean", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.Canonicals = []string{"https://x.test/p"}
		if findings := checkCanonicals(&rec); len(findings) != 0 {
			t.Errorf("got %v", findings)
		}
	})
}

func TestCheckDirectives(t *testing.T) {
	rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
	rec.MetaRobots = "NOINDEX, nofollow"
	rec.XRobotsTag = "nosnippet"

	findings := checkDirectives(&rec)
	for _, name := range []string{"Noindex", "Nofollow", "NoSnippet"} {
		if len(findingsFor(findings, "Directives", name)) != 1 {
			t.Errorf("expected %s finding, got %v", name, findings)
		}
	}
}

func TestCheckContent(t *testing.T) {
	t.Run("low word count only on 200", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.WordCount = 50
		if got := findingsFor(checkContent(&rec), "Content", "Low Content Pages"); len(got) != 1 {
			t.Errorf("expected low content finding, got %v", got)
		}

		rec404 := models.NewPageRecord("https://x.test/p", models.HTTPStatus(404), 0)
		rec404.WordCount = 50
		if got := checkContent(&rec404); len(got) != 0 {
			t.Errorf("404 pages must not fire low content, got %v", got)
		}
	})

	t.Run("lorem ipsum is case-insensitive", func(t *testing.T) {
		rec := models.NewPageRecord("https://x.test/p", models.HTTPStatus(200), 0)
		rec.WordCount = 500
		rec.TextSample = "intro Lorem IPSUM dolor sit amet"
		if got := findingsFor(checkContent(&rec), "Content", "Lorem Ipsum Placeholder"); len(got) != 1 {
			t.Errorf("expected placeholder finding, got %v", got)
		}
	})
}

func TestCheckValidation_FetchErrorRecordIsClean(t *testing.T) {
	// Records built by the factory but never parsed as HTML must not trip
	// document-structure checks.
	rec := models.NewPageRecord("https://x.test/p", models.ErrorStatus(models.ErrorTagTimeout, ""), 0)
	if findings := checkValidation(&rec); len(findings) != 0 {
		t.Errorf("expected no validation findings for unparsed record, got %v", findings)
	}
}

func TestRunAudit_DuplicateTitles(t *testing.T) {
	a := healthyRecord("https://x.test/a")
	b := healthyRecord("https://x.test/b")
	// healthyRecord gives both the same title/meta/h1; differentiate all but title
	b.MetaDescription = strings.Repeat("e", 100)
	b.H1 = "A different heading"
	b.Canonicals = []string{"https://x.test/b"}

	findings := RunAudit([]models.PageRecord{a, b})
	dups := findingsFor(findings, "Page Titles", "Duplicate")
	if len(dups) != 2 {
		t.Fatalf("expected exactly 2 duplicate-title findings, got %d: %v", len(dups), findings)
	}
	if dups[0].URL == dups[1].URL {
		t.Error("duplicate findings must cover both URLs")
	}
	for _, f := range dups {
		if f.Type != models.FindingOpportunity || f.Priority != models.PriorityMedium {
			t.Errorf("duplicate title should be Opportunity/Medium, got %s/%s", f.Type, f.Priority)
		}
	}
}

func TestCheckDuplicates_EmptyValuesIgnored(t *testing.T) {
	a := models.NewPageRecord("https://x.test/a", models.HTTPStatus(200), 0)
	b := models.NewPageRecord("https://x.test/b", models.HTTPStatus(200), 0)

	if findings := checkDuplicates([]models.PageRecord{a, b}); len(findings) != 0 {
		t.Errorf("empty titles must not group as duplicates, got %v", findings)
	}
}

func TestCheckDuplicates_H1Priority(t *testing.T) {
	a := models.NewPageRecord("https://x.test/a", models.HTTPStatus(200), 0)
	b := models.NewPageRecord("https://x.test/b", models.HTTPStatus(200), 0)
	a.H1, b.H1 = "Shared", "Shared"

	findings := checkDuplicates([]models.PageRecord{a, b})
	dups := findingsFor(findings, "H1", "Duplicate")
	if len(dups) != 2 {
		t.Fatalf("expected 2 duplicate-H1 findings, got %v", findings)
	}
	if dups[0].Priority != models.PriorityLow {
		t.Errorf("duplicate H1 should be Low priority, got %s", dups[0].Priority)
	}
}

func TestRunAudit_Deterministic(t *testing.T) {
	records := []models.PageRecord{
		healthyRecord("https://x.test/a"),
		healthyRecord("https://x.test/b"),
		models.NewPageRecord("https://x.test/404", models.HTTPStatus(404), 2),
		models.NewPageRecord("https://x.test/err", models.ErrorStatus(models.ErrorTagConnection, ""), 1),
	}

	first := RunAudit(records)
	second := RunAudit(records)

	if !reflect.DeepEqual(first, second) {
		t.Error("RunAudit must produce identical findings for the same record set")
	}
}
