package maze

import "errors"

var ErrInvalidDimensions = errors.New("invalid maze dimensions")

// AssertionError reports a broken internal invariant. It is raised with panic
// inside the generator and recovered at the API boundary.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "assertion failed: " + e.message
}
