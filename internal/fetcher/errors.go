package fetcher

import "errors"

var (
	// ErrStatusNotOK is returned when http response had status different than 200 OK.
	ErrStatusNotOK = errors.New("response status is not 200 OK")
	// ErrFormatNotSupported is returned when feed url does not resolve to a supported format.
	// It is reported before any request is made.
	ErrFormatNotSupported = errors.New("feed format not supported")
)
