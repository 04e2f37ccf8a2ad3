package domain

import "errors"

// Failure classes reported by the driven adapters. Adapters wrap the
// underlying cause together with one of these so callers can use errors.Is.
var (
	ErrInvalidURL       = errors.New("invalid target url")
	ErrTransport        = errors.New("transport failure")
	ErrParse            = errors.New("parse failure")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrMalformedResult  = errors.New("malformed search result")
)

// ClassifyFetchError maps a fetcher error onto a FetchFailure.
func ClassifyFetchError(err error) FetchFailure {
	switch {
	case err == nil:
		return FetchOK
	case errors.Is(err, ErrInvalidURL):
		return FetchInvalidURL
	case errors.Is(err, ErrParse):
		return FetchParse
	default:
		return FetchTransport
	}
}
