package models

// WorkItem represents a URL and its BFS depth awaiting processing
type WorkItem struct {
	URL   string
	Depth int
}

// ImageRef is one <img> occurrence on a page.
// Alt == nil means the attribute was absent; a non-nil empty string means the
// attribute was present but empty. The two cases yield different findings.
type ImageRef struct {
	Src string
	Alt *string
}

// PageRecord holds every signal extracted from one fetched URL.
// Records are created once (on fetch) and never mutated afterwards; the audit
// engine receives them read-only.
type PageRecord struct {
	URL    string     // Normalized; unique key within a crawl run
	Status PageStatus // HTTP status code or fetch error tag
	Depth  int        // BFS hop count from the seed (0 for seed and sitemap entries)

	Title                string
	TitleCount           int
	MetaDescription      string
	MetaDescriptionCount int
	MetaRobots           string
	XRobotsTag           string

	H1      string
	H1Count int
	H2List  []string

	Images     []ImageRef
	Canonicals []string // Raw href values, order of appearance

	ResponseHeaders  map[string]string // Lowercase header name -> value
	MixedContentURLs []string          // Only populated when the page scheme is https

	InternalOutlinks    int
	ExternalOutlinks    int
	NofollowOutlinks    int // Internal links carrying rel=nofollow
	EmptyAnchorOutlinks int // Internal links with no anchor text

	WordCount  int
	TextSample string // Truncated visible text for keyword checks

	HasHeadTag    bool
	HasBodyTag    bool
	HeadCount     int
	BodyCount     int
	HTMLSizeBytes int
}

// NewPageRecord is the single factory for page records. It produces a
// fully-populated record with only url/status/depth overlaid, so fetch
// failures and non-HTML responses never yield partially-initialized records.
// Head/body defaults are "present, one each": pages that were never parsed as
// HTML must not trip the validation rules.
func NewPageRecord(url string, status PageStatus, depth int) PageRecord {
	return PageRecord{
		URL:             url,
		Status:          status,
		Depth:           depth,
		ResponseHeaders: make(map[string]string),
		HasHeadTag:      true,
		HasBodyTag:      true,
		HeadCount:       1,
		BodyCount:       1,
	}
}
