package feed

import "fmt"

// FetchError reports a transport failure, a timeout, a non-2xx response or an
// unreadable local file.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError reports a body that is not a feed document.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
