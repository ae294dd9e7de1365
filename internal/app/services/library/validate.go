package library

import "fmt"

// Validate checks the top-items query parameters before any network call
// is made. An empty time range means "use the default" and is always
// valid. A limit is only valid inside [1, MaxLimit]; absence is resolved
// to a default by the caller before it gets here.
func Validate(timeRange string, limit int) error {
	switch timeRange {
	case "", "short_term", "medium_term", "long_term":
	default:
		return fmt.Errorf("%w: %q (valid options: short_term, medium_term, long_term)", ErrInvalidTimeRange, timeRange)
	}

	if limit < 1 || limit > MaxLimit {
		return fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidLimit, limit, MaxLimit)
	}

	return nil
}
