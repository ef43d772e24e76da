package extract

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"

	"github.com/cml22/crawler-seo/pkg/fetch"
	"github.com/cml22/crawler-seo/pkg/models"
	"github.com/cml22/crawler-seo/pkg/parse"
	"github.com/cml22/crawler-seo/pkg/utils"
)

// textSampleLimit caps the text excerpt kept per page for keyword checks.
const textSampleLimit = 5000

// The HTML parser synthesizes <head>/<body> nodes when they are missing,
// so presence and multiplicity are detected on the raw markup instead.
var (
	headTagRe = regexp.MustCompile(`(?i)<head[\s/>]`)
	bodyTagRe = regexp.MustCompile(`(?i)<body[\s/>]`)
)

// Extractor parses fetched HTML pages into structured page records
type Extractor struct {
	log *logrus.Entry
}

// NewExtractor creates an Extractor
func NewExtractor(log *logrus.Entry) *Extractor {
	return &Extractor{log: log.WithField("component", "extractor")}
}

// Extract derives a PageRecord from a fetched response. It also returns the
// page's internal outbound links (absolute, normalized, document order) for
// the caller to enqueue. Non-HTML responses yield a minimal record carrying
// only URL, status, and depth, and contribute no outbound links.
func (e *Extractor) Extract(pageURL string, resp *fetch.PageResponse, depth int) (models.PageRecord, []string) {
	record := models.NewPageRecord(pageURL, models.HTTPStatus(resp.StatusCode), depth)

	if !resp.IsHTML() {
		e.log.WithFields(logrus.Fields{
			"url": pageURL, "content_type": resp.ContentType(),
		}).Debug("Non-HTML response, skipping signal extraction")
		return record, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if err != nil {
		e.log.WithError(err).WithField("url", pageURL).Warn("Failed to parse HTML document")
		return record, nil
	}

	e.extractHeadSignals(doc, resp, &record)
	e.extractContentSignals(doc, &record)
	e.extractImages(doc, &record)
	e.extractMixedContent(doc, resp, &record)
	outlinks := e.extractLinks(doc, resp, &record)

	record.HTMLSizeBytes = len(resp.Body)
	record.HeadCount = len(headTagRe.FindAll(resp.Body, -1))
	record.BodyCount = len(bodyTagRe.FindAll(resp.Body, -1))
	record.HasHeadTag = record.HeadCount > 0
	record.HasBodyTag = record.BodyCount > 0

	return record, outlinks
}

// extractHeadSignals pulls title, meta description, robots directives,
// canonicals, and response headers
func (e *Extractor) extractHeadSignals(doc *goquery.Document, resp *fetch.PageResponse, record *models.PageRecord) {
	titles := doc.Find("title")
	record.TitleCount = titles.Length()
	if record.TitleCount > 0 {
		record.Title = strings.TrimSpace(titles.First().Text())
	}

	metaDescs := doc.Find("meta[name='description']")
	record.MetaDescriptionCount = metaDescs.Length()
	if record.MetaDescriptionCount > 0 {
		record.MetaDescription = strings.TrimSpace(metaDescs.First().AttrOr("content", ""))
	}

	record.MetaRobots = strings.TrimSpace(doc.Find("meta[name='robots']").First().AttrOr("content", ""))
	record.XRobotsTag = resp.Headers.Get("X-Robots-Tag")

	// Raw href values, order of appearance
	doc.Find("link[rel='canonical']").Each(func(_ int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists {
			record.Canonicals = append(record.Canonicals, href)
		}
	})

	for name, values := range resp.Headers {
		record.ResponseHeaders[strings.ToLower(name)] = strings.Join(values, ", ")
	}
}

// extractContentSignals pulls headings and body text stats
func (e *Extractor) extractContentSignals(doc *goquery.Document, record *models.PageRecord) {
	h1s := doc.Find("h1")
	record.H1Count = h1s.Length()
	if record.H1Count > 0 {
		record.H1 = strings.TrimSpace(h1s.First().Text())
	}

	doc.Find("h2").Each(func(_ int, sel *goquery.Selection) {
		record.H2List = append(record.H2List, strings.TrimSpace(sel.Text()))
	})

	text := doc.Find("body").Text()
	record.WordCount = len(strings.Fields(text))
	record.TextSample = utils.TruncateString(strings.TrimSpace(text), textSampleLimit)
}

func (e *Extractor) extractImages(doc *goquery.Document, record *models.PageRecord) {
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		img := models.ImageRef{Src: sel.AttrOr("src", "")}
		// An absent alt attribute is distinct from alt=""
		if alt, exists := sel.Attr("alt"); exists {
			img.Alt = &alt
		}
		record.Images = append(record.Images, img)
	})
}

// extractMixedContent flags http:// resources referenced from an https page
func (e *Extractor) extractMixedContent(doc *goquery.Document, resp *fetch.PageResponse, record *models.PageRecord) {
	if resp.FinalURL == nil || resp.FinalURL.Scheme != "https" {
		return
	}
	doc.Find("img[src], script[src], iframe[src]").Each(func(_ int, sel *goquery.Selection) {
		if src := sel.AttrOr("src", ""); strings.HasPrefix(src, "http://") {
			record.MixedContentURLs = append(record.MixedContentURLs, src)
		}
	})
	doc.Find("link[href]").Each(func(_ int, sel *goquery.Selection) {
		if href := sel.AttrOr("href", ""); strings.HasPrefix(href, "http://") {
			record.MixedContentURLs = append(record.MixedContentURLs, href)
		}
	})
}

// extractLinks classifies <a href> elements and returns the internal outlinks
// (absolute normalized URLs, document order, deduplicated). Same-domain
// membership is judged against the page's own host, not the crawl seed's.
func (e *Extractor) extractLinks(doc *goquery.Document, resp *fetch.PageResponse, record *models.PageRecord) []string {
	if resp.FinalURL == nil {
		return nil
	}
	pageHost := resp.FinalURL.Host

	var outlinks []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}

		linkURL, err := resp.FinalURL.Parse(href)
		if err != nil {
			e.log.WithField("href", href).Debug("Skipping unparseable link href")
			return
		}
		if linkURL.Scheme != "http" && linkURL.Scheme != "https" {
			return // mailto:, tel:, javascript:, etc.
		}

		if linkURL.Host != pageHost {
			record.ExternalOutlinks++
			return
		}
		record.InternalOutlinks++

		if rel, _ := sel.Attr("rel"); strings.Contains(strings.ToLower(rel), "nofollow") {
			record.NofollowOutlinks++
		}
		if strings.TrimSpace(sel.Text()) == "" {
			record.EmptyAnchorOutlinks++
		}

		normalized := parse.NormalizeURL(linkURL)
		if _, dup := seen[normalized]; dup {
			return
		}
		seen[normalized] = struct{}{}
		outlinks = append(outlinks, normalized)
	})

	return outlinks
}
