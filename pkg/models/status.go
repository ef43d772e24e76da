package models

import "strconv"

// ErrorTag identifies the class of a failed fetch. A page whose fetch failed
// carries a tag instead of an HTTP status code.
type ErrorTag string

const (
	ErrorTagNone       ErrorTag = ""                 // Zero value = HTTP response received
	ErrorTagTimeout    ErrorTag = "Timeout"          // Request exceeded the fetch timeout
	ErrorTagConnection ErrorTag = "Connection Error" // DNS/TCP/TLS level failure
	ErrorTagOther      ErrorTag = "Error"            // Any other request error (detail attached)
)

// String implements fmt.Stringer for logging
func (t ErrorTag) String() string {
	if t == "" {
		return "none"
	}
	return string(t)
}

// PageStatus is either an HTTP status code or a typed fetch failure.
// The audit's "No Response" rule depends on the two cases staying distinguishable.
type PageStatus struct {
	Code   int      // HTTP status code; meaningful only when Tag == ErrorTagNone
	Tag    ErrorTag // Failure class when the fetch produced no usable response
	Detail string   // Underlying error message for ErrorTagOther
}

// HTTPStatus builds a PageStatus from an HTTP response code.
func HTTPStatus(code int) PageStatus {
	return PageStatus{Code: code}
}

// ErrorStatus builds a PageStatus for a failed fetch.
func ErrorStatus(tag ErrorTag, detail string) PageStatus {
	return PageStatus{Tag: tag, Detail: detail}
}

// IsHTTP reports whether the status carries a real HTTP response code.
func (s PageStatus) IsHTTP() bool {
	return s.Tag == ErrorTagNone
}

// String renders the status the way it appears in reports: the numeric code
// for HTTP responses, the error tag (with detail, if any) otherwise.
func (s PageStatus) String() string {
	if s.IsHTTP() {
		return strconv.Itoa(s.Code)
	}
	if s.Tag == ErrorTagOther && s.Detail != "" {
		return string(s.Tag) + ": " + s.Detail
	}
	return string(s.Tag)
}
