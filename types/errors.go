package types

import "fmt"

// ValidationError reports a missing or malformed caller input. It is
// raised before any network access happens.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// FetchError reports a failure to reach the source: a network-level
// error or a non-2xx response. StatusCode is zero when the request
// never completed.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a document that was fetched but could not be
// parsed into structured form.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NoResultsError reports a successful fetch that yielded zero
// qualifying articles, either because extraction found none or because
// the keyword filter removed all of them.
type NoResultsError struct {
	URL string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no articles found at %s", e.URL)
}

// Guidance returns remediation text surfaced to the caller alongside
// the error.
func (e *NoResultsError) Guidance() string {
	return "The scraper could not find any articles on this page. Try: 1) Using the homepage URL instead, 2) Using RSS feed if available, 3) Checking if the URL is correct"
}
