package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrEmpty is returned when an operation needs at least one element,
	// such as [RandomValue] on an empty slice.
	ErrEmpty = errors.New("arr: operation on empty slice")
)
