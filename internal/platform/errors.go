package platform

import (
	"errors"
)

// ErrAlreadyRunning is an error returned when run can't be started because previous run for the feed is not finished yet.
var ErrAlreadyRunning = errors.New("ingestion already running for this feed")
