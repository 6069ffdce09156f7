package services

import (
	"errors"
	"fmt"
)

var ErrFetchFailed = errors.New("fetch failed")

type FetchErrorCause string

const (
	CauseInvalidURL   FetchErrorCause = "invalid url"
	CauseNetwork      FetchErrorCause = "network failure"
	CauseStatus       FetchErrorCause = "non-success status"
	CauseReadBody     FetchErrorCause = "failed to read response body"
	CauseUpstreamFunc FetchErrorCause = "fetcher error"
)

type FetchError struct {
	URL        string
	StatusCode int
	Cause      FetchErrorCause
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch %s: %s", e.URL, e.Cause)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (%d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailed }

// asFetchError keeps an existing *FetchError and wraps anything else.
func asFetchError(url string, err error) *FetchError {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{URL: url, Cause: CauseUpstreamFunc, Err: err}
}
