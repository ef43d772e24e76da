package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cml22/crawler-seo/pkg/models"
	"github.com/cml22/crawler-seo/pkg/utils"
)

// PageResponse is a fully-read HTTP response. FinalURL reflects any redirects
// the client followed; Body is the complete (size-limited) payload.
type PageResponse struct {
	FinalURL   *url.URL
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// ContentType returns the response Content-Type header.
func (r *PageResponse) ContentType() string {
	return r.Headers.Get("Content-Type")
}

// IsHTML reports whether the response declares an HTML payload.
func (r *PageResponse) IsHTML() bool {
	return strings.Contains(strings.ToLower(r.ContentType()), "text/html")
}

// Fetcher performs single-attempt HTTP GETs with a fixed user agent.
// A failed fetch yields exactly one typed error. There are no retries, so
// one URL never produces more than one error record.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	log          *logrus.Entry
}

// NewFetcher creates a new Fetcher instance.
func NewFetcher(client *http.Client, userAgent string, maxBodyBytes int64, log *logrus.Entry) *Fetcher {
	return &Fetcher{
		client:       client,
		userAgent:    userAgent,
		maxBodyBytes: maxBodyBytes,
		log:          log.WithField("component", "fetcher"),
	}
}

// Fetch performs a GET against rawURL and reads the body in full.
// Non-2xx statuses are NOT errors: the audit engine needs the real status
// code, so any received response is returned as-is. Errors are wrapped with
// the fetch sentinels so ClassifyError can map them to an ErrorTag.
//
// The request runs detached from ctx's cancellation: an in-flight fetch
// always completes (bounded by the client timeout), so an interrupt never
// fabricates an error record for a page that was responding fine. Callers
// honor cancellation between requests.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*PageResponse, error) {
	reqLog := f.log.WithField("url", rawURL)

	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", utils.ErrRequestCreation, rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		wrapped := wrapTransportError(err)
		reqLog.WithField("category", utils.CategorizeError(wrapped)).Debugf("Fetch failed: %v", err)
		return nil, wrapped
	}
	defer resp.Body.Close()

	// Size-limited read: the validation rule needs pages above 15MB to still
	// be measurable, so the cap sits comfortably above that threshold.
	limited := io.LimitReader(resp.Body, f.maxBodyBytes)
	body, readErr := io.ReadAll(limited)
	if readErr != nil {
		return nil, fmt.Errorf("%w: reading body from '%s': %w", utils.ErrResponseBodyRead, rawURL, readErr)
	}

	reqLog.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"bytes":       len(body),
	}).Debug("Fetched")

	return &PageResponse{
		FinalURL:   resp.Request.URL,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// wrapTransportError maps a client.Do error onto the fetch sentinels.
func wrapTransportError(err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%w: %w", utils.ErrFetchTimeout, err)
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %w", utils.ErrFetchConnection, err)
	}
	return fmt.Errorf("%w: %w", utils.ErrFetchOther, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// ClassifyError converts a Fetch error into the PageStatus recorded for the
// failed page. The taxonomy (Timeout / ConnectionError / OtherRequestError)
// must stay distinguishable because the "No Response" audit rule depends on it.
func ClassifyError(err error) models.PageStatus {
	switch {
	case errors.Is(err, utils.ErrFetchTimeout):
		return models.ErrorStatus(models.ErrorTagTimeout, "")
	case errors.Is(err, utils.ErrFetchConnection):
		return models.ErrorStatus(models.ErrorTagConnection, "")
	default:
		return models.ErrorStatus(models.ErrorTagOther, err.Error())
	}
}
