package usecase

import "github.com/cockroachdb/errors"

var (
	// ErrFetch marks any season-data retrieval failure. The core does not
	// distinguish auth, network or payload errors; callers classify with
	// errors.Is.
	ErrFetch = errors.New("season data fetch failed")

	ErrInvalidInput = errors.New("invalid input")
)
