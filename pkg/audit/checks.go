package audit

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cml22/crawler-seo/pkg/models"
	"github.com/cml22/crawler-seo/pkg/utils"
)

// Finding categories. Fixed taxonomy shared with report output.
const (
	CategoryResponseCodes   = "Response Codes"
	CategorySecurity        = "Security"
	CategoryURL             = "URL"
	CategoryPageTitles      = "Page Titles"
	CategoryMetaDescription = "Meta Description"
	CategoryH1              = "H1"
	CategoryH2              = "H2"
	CategoryImages          = "Images"
	CategoryCanonicals      = "Canonicals"
	CategoryDirectives      = "Directives"
	CategoryLinks           = "Links"
	CategoryContent         = "Content"
	CategoryValidation      = "Validation"
)

// Character thresholds. Lengths are counted in runes so multi-byte text is
// measured the way a reader (and a SERP) sees it.
const (
	titleMaxChars    = 60
	titleMinChars    = 30
	metaDescMaxChars = 155
	metaDescMinChars = 70
	headingMaxChars  = 70
	altTextMaxChars  = 100
	urlMaxChars      = 115

	maxCrawlDepth       = 3
	maxExternalOutlinks = 100
	minWordCount        = 100
	maxHTMLSizeBytes    = 15_000_000
)

func charLen(s string) int {
	return len([]rune(s))
}

func checkResponseCodes(page *models.PageRecord) []models.Finding {
	var findings []models.Finding
	status := page.Status

	if !status.IsHTTP() {
		return append(findings, models.Finding{
			Category: CategoryResponseCodes, CheckName: "No Response",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: fmt.Sprintf("The page did not respond: %s", status),
			Guidance:    "Check that the server is reachable and the URL is correct.",
		})
	}

	code := status.Code
	switch {
	case code >= 300 && code < 400:
		findings = append(findings, models.Finding{
			Category: CategoryResponseCodes, CheckName: fmt.Sprintf("Redirection %d", code),
			Type: models.FindingWarning, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page returns a %d redirect.", code),
			Guidance:    "Redirects add latency. Update internal links to point directly at the final URL.",
		})
	case code == 404:
		findings = append(findings, models.Finding{
			Category: CategoryResponseCodes, CheckName: "404 Not Found",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page returns a 404 error.",
			Guidance:    "Remove or fix links pointing at this URL. Add a 301 redirect if the content moved.",
		})
	case code == 410:
		findings = append(findings, models.Finding{
			Category: CategoryResponseCodes, CheckName: "410 Gone",
			Type: models.FindingIssue, Priority: models.PriorityMedium, URL: page.URL,
			Description: "The page returns a 410 (permanently removed).",
			Guidance:    "Remove internal links pointing at this URL.",
		})
	case code >= 400 && code < 500:
		findings = append(findings, models.Finding{
			Category: CategoryResponseCodes, CheckName: fmt.Sprintf("Client Error %d", code),
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: fmt.Sprintf("The page returns a %d client error.", code),
			Guidance:    "Check the URL and access permissions.",
		})
	case code >= 500:
		findings = append(findings, models.Finding{
			Category: CategoryResponseCodes, CheckName: fmt.Sprintf("Server Error %d", code),
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: fmt.Sprintf("The page returns a %d server error.", code),
			Guidance:    "Contact the server administrator. 5xx errors block indexing.",
		})
	}

	return findings
}

func checkSecurity(page *models.PageRecord) []models.Finding {
	var findings []models.Finding
	parsed, err := url.Parse(page.URL)

	if err == nil && parsed.Scheme == "http" {
		findings = append(findings, models.Finding{
			Category: CategorySecurity, CheckName: "HTTP URL",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page is served over HTTP (not secure).",
			Guidance:    "Migrate to HTTPS. Browsers show a warning and Google favors HTTPS sites.",
		})
	}

	if len(page.MixedContentURLs) > 0 {
		findings = append(findings, models.Finding{
			Category: CategorySecurity, CheckName: "Mixed Content",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: fmt.Sprintf("%d resource(s) loaded over HTTP on an HTTPS page.", len(page.MixedContentURLs)),
			Guidance:    "Update the resource URLs to use HTTPS.",
		})
	}

	headerChecks := []struct {
		header    string
		checkName string
		priority  models.Priority
		desc      string
		guidance  string
	}{
		{"strict-transport-security", "Missing HSTS Header", models.PriorityMedium,
			"The Strict-Transport-Security header is missing.",
			"Add the HSTS header to force HTTPS connections."},
		{"content-security-policy", "Missing Content-Security-Policy Header", models.PriorityLow,
			"The Content-Security-Policy header is missing.",
			"Add a CSP to reduce the risk of XSS attacks."},
		{"x-content-type-options", "Missing X-Content-Type-Options Header", models.PriorityLow,
			"The X-Content-Type-Options header is missing.",
			"Add 'X-Content-Type-Options: nosniff' to prevent MIME-type sniffing."},
		{"x-frame-options", "Missing X-Frame-Options Header", models.PriorityLow,
			"The X-Frame-Options header is missing.",
			"Add this header to prevent clickjacking."},
	}
	for _, hc := range headerChecks {
		if _, ok := page.ResponseHeaders[hc.header]; !ok {
			findings = append(findings, models.Finding{
				Category: CategorySecurity, CheckName: hc.checkName,
				Type: models.FindingWarning, Priority: hc.priority, URL: page.URL,
				Description: hc.desc, Guidance: hc.guidance,
			})
		}
	}

	return findings
}

func checkURL(page *models.PageRecord) []models.Finding {
	var findings []models.Finding
	pageURL := page.URL

	var path string
	if parsed, err := url.Parse(pageURL); err == nil {
		path = parsed.Path
	}

	if strings.Contains(path, "//") {
		findings = append(findings, models.Finding{
			Category: CategoryURL, CheckName: "Multiple Slashes",
			Type: models.FindingIssue, Priority: models.PriorityMedium, URL: pageURL,
			Description: "The URL contains double slashes in its path.",
			Guidance:    "Fix the URL to use a single slash between segments.",
		})
	}

	if strings.Contains(pageURL, " ") || strings.Contains(pageURL, "%20") {
		findings = append(findings, models.Finding{
			Category: CategoryURL, CheckName: "Contains A Space",
			Type: models.FindingIssue, Priority: models.PriorityMedium, URL: pageURL,
			Description: "The URL contains a space.",
			Guidance:    "Replace spaces with hyphens in URLs.",
		})
	}

	if path != strings.ToLower(path) {
		findings = append(findings, models.Finding{
			Category: CategoryURL, CheckName: "Uppercase",
			Type: models.FindingWarning, Priority: models.PriorityLow, URL: pageURL,
			Description: "The URL contains uppercase characters.",
			Guidance:    "Use lowercase URLs to avoid duplicate content problems.",
		})
	}

	if parsed, err := url.Parse(pageURL); err == nil && parsed.RawQuery != "" {
		findings = append(findings, models.Finding{
			Category: CategoryURL, CheckName: "Parameters",
			Type: models.FindingWarning, Priority: models.PriorityLow, URL: pageURL,
			Description: fmt.Sprintf("The URL carries query parameters: ?%s", parsed.RawQuery),
			Guidance:    "Check that the parameters are necessary and that parameterized URLs are properly canonicalized.",
		})
	}

	if strings.Contains(path, "_") {
		findings = append(findings, models.Finding{
			Category: CategoryURL, CheckName: "Underscores",
			Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: pageURL,
			Description: "The URL contains underscores.",
			Guidance:    "Google recommends hyphens (-) rather than underscores (_) in URLs.",
		})
	}

	if charLen(pageURL) > urlMaxChars {
		findings = append(findings, models.Finding{
			Category: CategoryURL, CheckName: "Over 115 Characters",
			Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: pageURL,
			Description: fmt.Sprintf("The URL is %d characters long (> %d).", charLen(pageURL), urlMaxChars),
			Guidance:    "Short URLs are easier to share and understand.",
		})
	}

	if !isASCII(pageURL) {
		findings = append(findings, models.Finding{
			Category: CategoryURL, CheckName: "Non ASCII Characters",
			Type: models.FindingWarning, Priority: models.PriorityMedium, URL: pageURL,
			Description: "The URL contains non-ASCII characters.",
			Guidance:    "Use ASCII characters in URLs for best compatibility.",
		})
	}

	return findings
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func checkPageTitle(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	if page.Title == "" {
		return append(findings, models.Finding{
			Category: CategoryPageTitles, CheckName: "Missing",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page has no <title> tag.",
			Guidance:    "Every page needs a unique, descriptive title. The title is a major ranking factor.",
		})
	}

	if page.TitleCount > 1 {
		findings = append(findings, models.Finding{
			Category: CategoryPageTitles, CheckName: "Multiple",
			Type: models.FindingIssue, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d <title> tags.", page.TitleCount),
			Guidance:    "Only one <title> tag should be present in the <head>.",
		})
	}

	titleLen := charLen(page.Title)
	if titleLen > titleMaxChars {
		findings = append(findings, models.Finding{
			Category: CategoryPageTitles, CheckName: "Over 60 Characters",
			Type: models.FindingOpportunity, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The title is %d characters long (> %d). It will be truncated in the SERPs.", titleLen, titleMaxChars),
			Guidance:    "Keep the title under 60 characters so Google displays it in full.",
		})
	} else if titleLen < titleMinChars {
		findings = append(findings, models.Finding{
			Category: CategoryPageTitles, CheckName: "Below 30 Characters",
			Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: page.URL,
			Description: fmt.Sprintf("The title is only %d characters long (< %d).", titleLen, titleMinChars),
			Guidance:    "A very short title may lack context. Aim for 30-60 characters.",
		})
	}

	if page.H1 != "" && strings.EqualFold(strings.TrimSpace(page.Title), strings.TrimSpace(page.H1)) {
		findings = append(findings, models.Finding{
			Category: CategoryPageTitles, CheckName: "Same as H1",
			Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: page.URL,
			Description: "The title is identical to the H1.",
			Guidance:    "Differentiate the title and H1 slightly to maximize semantic coverage.",
		})
	}

	return findings
}

func checkMetaDescription(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	if page.MetaDescription == "" {
		return append(findings, models.Finding{
			Category: CategoryMetaDescription, CheckName: "Missing",
			Type: models.FindingOpportunity, Priority: models.PriorityMedium, URL: page.URL,
			Description: "The page has no meta description.",
			Guidance:    "Add a unique, engaging meta description (70-155 characters) to improve SERP click-through rate.",
		})
	}

	if page.MetaDescriptionCount > 1 {
		findings = append(findings, models.Finding{
			Category: CategoryMetaDescription, CheckName: "Multiple",
			Type: models.FindingIssue, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d meta descriptions.", page.MetaDescriptionCount),
			Guidance:    "Only one meta description should be present.",
		})
	}

	descLen := charLen(page.MetaDescription)
	if descLen > metaDescMaxChars {
		findings = append(findings, models.Finding{
			Category: CategoryMetaDescription, CheckName: "Over 155 Characters",
			Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: page.URL,
			Description: fmt.Sprintf("The meta description is %d characters long (> %d). It will be truncated.", descLen, metaDescMaxChars),
			Guidance:    "Keep the meta description under 155 characters.",
		})
	} else if descLen < metaDescMinChars {
		findings = append(findings, models.Finding{
			Category: CategoryMetaDescription, CheckName: "Below 70 Characters",
			Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: page.URL,
			Description: fmt.Sprintf("The meta description is only %d characters long (< %d).", descLen, metaDescMinChars),
			Guidance:    "A very short meta description is a missed opportunity. Aim for 70-155 characters.",
		})
	}

	return findings
}

func checkH1(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	if page.H1 == "" {
		return append(findings, models.Finding{
			Category: CategoryH1, CheckName: "Missing",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page has no H1 tag.",
			Guidance:    "Every page needs a unique H1 describing its main topic.",
		})
	}

	if page.H1Count > 1 {
		findings = append(findings, models.Finding{
			Category: CategoryH1, CheckName: "Multiple",
			Type: models.FindingWarning, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d H1 tags.", page.H1Count),
			Guidance:    "A single H1 per page is recommended.",
		})
	}

	if charLen(page.H1) > headingMaxChars {
		findings = append(findings, models.Finding{
			Category: CategoryH1, CheckName: "Over 70 Characters",
			Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: page.URL,
			Description: fmt.Sprintf("The H1 is %d characters long (> %d).", charLen(page.H1), headingMaxChars),
			Guidance:    "Keep the H1 concise and descriptive.",
		})
	}

	return findings
}

func checkH2(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	if len(page.H2List) == 0 {
		findings = append(findings, models.Finding{
			Category: CategoryH2, CheckName: "Missing",
			Type: models.FindingWarning, Priority: models.PriorityLow, URL: page.URL,
			Description: "The page has no H2 tag.",
			Guidance:    "H2 tags structure the content and improve readability for users and search engines.",
		})
	}

	for _, h2 := range page.H2List {
		if charLen(h2) > headingMaxChars {
			findings = append(findings, models.Finding{
				Category: CategoryH2, CheckName: "Over 70 Characters",
				Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: page.URL,
				Description: fmt.Sprintf("An H2 is %d characters long: \"%s...\"", charLen(h2), utils.TruncateString(h2, 50)),
				Guidance:    "Keep H2 tags concise.",
			})
		}
	}

	if len(page.H2List) > 0 && page.H1 == "" {
		findings = append(findings, models.Finding{
			Category: CategoryH2, CheckName: "Non-sequential",
			Type: models.FindingWarning, Priority: models.PriorityMedium, URL: page.URL,
			Description: "The page has H2 tags but no H1.",
			Guidance:    "The heading hierarchy should start with an H1.",
		})
	}

	return findings
}

func checkImages(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	for _, img := range page.Images {
		src := img.Src
		if src == "" {
			src = "N/A"
		}

		switch {
		case img.Alt == nil:
			findings = append(findings, models.Finding{
				Category: CategoryImages, CheckName: "Missing Alt Attribute",
				Type: models.FindingIssue, Priority: models.PriorityMedium, URL: page.URL,
				Description: fmt.Sprintf("Image without an alt attribute: %s", utils.TruncateString(src, 80)),
				Guidance:    "Add an alt attribute to every image for accessibility and SEO.",
			})
		case *img.Alt == "":
			findings = append(findings, models.Finding{
				Category: CategoryImages, CheckName: "Missing Alt Text",
				Type: models.FindingIssue, Priority: models.PriorityMedium, URL: page.URL,
				Description: fmt.Sprintf("Image with an empty alt: %s", utils.TruncateString(src, 80)),
				Guidance:    "Add descriptive alt text (except for purely decorative images).",
			})
		case charLen(*img.Alt) > altTextMaxChars:
			findings = append(findings, models.Finding{
				Category: CategoryImages, CheckName: "Alt Text Over 100 Characters",
				Type: models.FindingOpportunity, Priority: models.PriorityLow, URL: page.URL,
				Description: fmt.Sprintf("Alt text too long (%d chars): \"%s...\"", charLen(*img.Alt), utils.TruncateString(*img.Alt, 50)),
				Guidance:    "Keep alt text concise and descriptive (< 100 characters).",
			})
		}
	}

	return findings
}

func checkCanonicals(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	switch {
	case len(page.Canonicals) == 0:
		findings = append(findings, models.Finding{
			Category: CategoryCanonicals, CheckName: "Missing",
			Type: models.FindingWarning, Priority: models.PriorityMedium, URL: page.URL,
			Description: "The page has no canonical tag.",
			Guidance:    "Add a rel=\"canonical\" tag to tell search engines the preferred version of the URL.",
		})
	case len(page.Canonicals) > 1:
		findings = append(findings, models.Finding{
			Category: CategoryCanonicals, CheckName: "Multiple Conflicting",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d different canonical tags.", len(page.Canonicals)),
			Guidance:    "Only one canonical tag should be present. Conflicting canonicals confuse search engines.",
		})
	default:
		canonical := page.Canonicals[0]
		// Both sub-checks can fire for the same page.
		if canonical != "" && canonical != page.URL {
			findings = append(findings, models.Finding{
				Category: CategoryCanonicals, CheckName: "Canonicalised",
				Type: models.FindingWarning, Priority: models.PriorityMedium, URL: page.URL,
				Description: fmt.Sprintf("The page is canonicalised to: %s", canonical),
				Guidance:    "Check that this canonicalisation is intentional.",
			})
		}
		if canonical != "" && !strings.HasPrefix(canonical, "http") {
			findings = append(findings, models.Finding{
				Category: CategoryCanonicals, CheckName: "Canonical Is Relative",
				Type: models.FindingWarning, Priority: models.PriorityLow, URL: page.URL,
				Description: fmt.Sprintf("The canonical is relative: %s", canonical),
				Guidance:    "Use absolute URLs in canonical tags.",
			})
		}
	}

	return findings
}

func checkDirectives(page *models.PageRecord) []models.Finding {
	var findings []models.Finding
	combined := strings.ToLower(page.MetaRobots) + " " + strings.ToLower(page.XRobotsTag)

	// Directives are independent and non-exclusive.
	if strings.Contains(combined, "noindex") {
		findings = append(findings, models.Finding{
			Category: CategoryDirectives, CheckName: "Noindex",
			Type: models.FindingWarning, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page carries a noindex directive.",
			Guidance:    "Check that this page really should not be indexed. Remove the directive if it is a mistake.",
		})
	}
	if strings.Contains(combined, "nofollow") {
		findings = append(findings, models.Finding{
			Category: CategoryDirectives, CheckName: "Nofollow",
			Type: models.FindingWarning, Priority: models.PriorityMedium, URL: page.URL,
			Description: "The page carries a nofollow directive.",
			Guidance:    "Links on this page pass no PageRank. Check that this is intentional.",
		})
	}
	if strings.Contains(combined, "none") {
		findings = append(findings, models.Finding{
			Category: CategoryDirectives, CheckName: "None",
			Type: models.FindingWarning, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page carries a 'none' directive (equivalent to noindex, nofollow).",
			Guidance:    "This page will be neither indexed nor followed. Check that this is intentional.",
		})
	}
	if strings.Contains(combined, "nosnippet") {
		findings = append(findings, models.Finding{
			Category: CategoryDirectives, CheckName: "NoSnippet",
			Type: models.FindingWarning, Priority: models.PriorityLow, URL: page.URL,
			Description: "The page carries a nosnippet directive.",
			Guidance:    "No snippet will be shown in the SERPs, which can reduce click-through rate.",
		})
	}

	return findings
}

func checkLinks(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	if page.Depth > maxCrawlDepth {
		findings = append(findings, models.Finding{
			Category: CategoryLinks, CheckName: "Pages With High Crawl Depth",
			Type: models.FindingOpportunity, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page sits %d clicks deep from the home page.", page.Depth),
			Guidance:    "Important pages should be reachable within 3 clicks. Improve internal linking.",
		})
	}

	if page.InternalOutlinks == 0 {
		findings = append(findings, models.Finding{
			Category: CategoryLinks, CheckName: "Pages Without Internal Outlinks",
			Type: models.FindingWarning, Priority: models.PriorityMedium, URL: page.URL,
			Description: "The page contains no outbound internal links.",
			Guidance:    "Add internal links to help users and search engines navigate.",
		})
	}

	if page.ExternalOutlinks > maxExternalOutlinks {
		findings = append(findings, models.Finding{
			Category: CategoryLinks, CheckName: "Pages With High External Outlinks",
			Type: models.FindingWarning, Priority: models.PriorityLow, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d external links.", page.ExternalOutlinks),
			Guidance:    "An excessive number of external links can dilute PageRank.",
		})
	}

	if page.NofollowOutlinks > 0 {
		findings = append(findings, models.Finding{
			Category: CategoryLinks, CheckName: "Internal Nofollow Outlinks",
			Type: models.FindingWarning, Priority: models.PriorityLow, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d internal nofollow link(s).", page.NofollowOutlinks),
			Guidance:    "Avoid nofollow on internal links so PageRank can circulate.",
		})
	}

	if page.EmptyAnchorOutlinks > 0 {
		findings = append(findings, models.Finding{
			Category: CategoryLinks, CheckName: "Internal Outlinks With No Anchor Text",
			Type: models.FindingOpportunity, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("%d internal link(s) without anchor text.", page.EmptyAnchorOutlinks),
			Guidance:    "Add descriptive anchor text to help users and search engines.",
		})
	}

	return findings
}

func checkContent(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	if page.WordCount < minWordCount && page.Status.IsHTTP() && page.Status.Code == 200 {
		findings = append(findings, models.Finding{
			Category: CategoryContent, CheckName: "Low Content Pages",
			Type: models.FindingOpportunity, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page contains only %d words.", page.WordCount),
			Guidance:    "Thin pages can struggle to rank. Enrich the content where relevant.",
		})
	}

	if strings.Contains(strings.ToLower(page.TextSample), "lorem ipsum") {
		findings = append(findings, models.Finding{
			Category: CategoryContent, CheckName: "Lorem Ipsum Placeholder",
			Type: models.FindingWarning, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page contains Lorem Ipsum placeholder text.",
			Guidance:    "Replace the placeholder text with real content before going live.",
		})
	}

	return findings
}

func checkValidation(page *models.PageRecord) []models.Finding {
	var findings []models.Finding

	if !page.HasHeadTag {
		findings = append(findings, models.Finding{
			Category: CategoryValidation, CheckName: "Missing <head> Tag",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page has no <head> tag.",
			Guidance:    "The <head> tag is essential for page metadata.",
		})
	}
	if page.HeadCount > 1 {
		findings = append(findings, models.Finding{
			Category: CategoryValidation, CheckName: "Multiple <head> Tags",
			Type: models.FindingIssue, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d <head> tags.", page.HeadCount),
			Guidance:    "Only one <head> tag should be present.",
		})
	}
	if !page.HasBodyTag {
		findings = append(findings, models.Finding{
			Category: CategoryValidation, CheckName: "Missing <body> Tag",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: "The page has no <body> tag.",
			Guidance:    "The <body> tag is essential for page content.",
		})
	}
	if page.BodyCount > 1 {
		findings = append(findings, models.Finding{
			Category: CategoryValidation, CheckName: "Multiple <body> Tags",
			Type: models.FindingIssue, Priority: models.PriorityMedium, URL: page.URL,
			Description: fmt.Sprintf("The page contains %d <body> tags.", page.BodyCount),
			Guidance:    "Only one <body> tag should be present.",
		})
	}
	if page.HTMLSizeBytes > maxHTMLSizeBytes {
		findings = append(findings, models.Finding{
			Category: CategoryValidation, CheckName: "HTML Document Over 15mb",
			Type: models.FindingIssue, Priority: models.PriorityHigh, URL: page.URL,
			Description: fmt.Sprintf("The HTML document is %.1f MB (> 15 MB).", float64(page.HTMLSizeBytes)/1_000_000),
			Guidance:    "Very large documents are slow to load and slow for search engines to parse.",
		})
	}

	return findings
}
