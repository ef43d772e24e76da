package parse

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/cml22/crawler-seo/pkg/utils"
)

// --- XML Structs for Sitemap Parsing ---

// XMLURL represents a <url> element in a sitemap
type XMLURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// XMLURLSet represents a <urlset> element in a sitemap
type XMLURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []XMLURL `xml:"url"`
}

// XMLSitemap represents a <sitemap> element in a sitemap index file
type XMLSitemap struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// XMLSitemapIndex represents a <sitemapindex> element
type XMLSitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Sitemaps []XMLSitemap `xml:"sitemap"`
}

// SitemapResult is the outcome of parsing one sitemap document.
// A <sitemapindex> yields ChildSitemaps to be resolved recursively;
// a <urlset> (or the <loc> fallback) yields PageURLs.
type SitemapResult struct {
	PageURLs      []string
	ChildSitemaps []string
}

// ParseSitemap parses raw sitemap XML bytes. It tries the standard
// <sitemapindex> and <urlset> layouts first, then falls back to collecting
// every <loc> element in document order, since namespace declarations are
// inconsistently emitted in the wild and sometimes defeat the struct decode.
// Returns a wrapped ErrSitemapParse when the document yields no URLs at all.
func ParseSitemap(data []byte) (*SitemapResult, error) {
	var index XMLSitemapIndex
	if err := xml.Unmarshal(data, &index); err == nil && len(index.Sitemaps) > 0 {
		result := &SitemapResult{}
		for _, sm := range index.Sitemaps {
			if loc := strings.TrimSpace(sm.Loc); loc != "" {
				result.ChildSitemaps = append(result.ChildSitemaps, loc)
			}
		}
		if len(result.ChildSitemaps) > 0 {
			return result, nil
		}
	}

	var urlSet XMLURLSet
	if err := xml.Unmarshal(data, &urlSet); err == nil && len(urlSet.URLs) > 0 {
		result := &SitemapResult{}
		for _, u := range urlSet.URLs {
			if loc := strings.TrimSpace(u.Loc); loc != "" {
				result.PageURLs = append(result.PageURLs, loc)
			}
		}
		if len(result.PageURLs) > 0 {
			return result, nil
		}
	}

	// Fallback: scan tokens for any <loc> element, ignoring namespaces.
	locs, err := collectLocElements(data)
	if err != nil {
		return nil, fmt.Errorf("%w: XML: %w", utils.ErrSitemapParse, err)
	}
	if len(locs) == 0 {
		return nil, fmt.Errorf("%w: no <loc> entries found", utils.ErrSitemapParse)
	}
	return &SitemapResult{PageURLs: locs}, nil
}

// collectLocElements walks the token stream and gathers the character data of
// every element whose local name is "loc", regardless of namespace or parent.
func collectLocElements(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var locs []string
	inLoc := false
	var current strings.Builder

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "loc" {
				inLoc = true
				current.Reset()
			}
		case xml.CharData:
			if inLoc {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "loc" {
				inLoc = false
				if loc := strings.TrimSpace(current.String()); loc != "" {
					locs = append(locs, loc)
				}
			}
		}
	}
	return locs, nil
}
