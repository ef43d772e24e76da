package parse

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cml22/crawler-seo/pkg/utils"
)

// NormalizeURL standardizes a URL for dedup and same-domain comparison.
// It removes the fragment, collapses an empty or all-trailing-slash path to
// "/", strips trailing slashes otherwise, and keeps the query string.
// Idempotent: NormalizeURL(NormalizeURL(u)) == NormalizeURL(u).
// Does not modify the input *url.URL.
func NormalizeURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	// Work on a copy
	normalized := *u

	if p := strings.TrimRight(normalized.Path, "/"); p == "" {
		normalized.Path = "/"
		normalized.RawPath = ""
	} else {
		normalized.Path = p
		// Keep RawPath in step with Path, otherwise URL.String falls back to
		// re-escaping Path and escaped slashes (%2F) silently decode.
		if normalized.RawPath != "" {
			normalized.RawPath = strings.TrimRight(normalized.RawPath, "/")
		}
	}

	normalized.Fragment = ""
	normalized.RawFragment = ""

	return normalized.String()
}

// ParseAndNormalize parses a URL string and normalizes it with NormalizeURL.
// Returns the normalized string, the parsed URL object, and any parse error.
func ParseAndNormalize(urlStr string) (string, *url.URL, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return "", nil, fmt.Errorf("%w: parsing URL '%s': %w", utils.ErrParsing, urlStr, err)
	}
	return NormalizeURL(parsed), parsed, nil
}

// IsSameDomain reports whether rawURL's authority exactly equals hostToMatch.
// No subdomain or port normalization beyond what the URL parser already does.
func IsSameDomain(rawURL, hostToMatch string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == hostToMatch
}
