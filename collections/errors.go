package collections

import "errors"

// Sentinel errors returned by collections operations.
var (
	// ErrUnsupportedKey is returned by NormalizeKey when a value cannot be
	// used as an ordered-map key: composite values, non-integral floats, and
	// unsigned integers that overflow int.
	ErrUnsupportedKey = errors.New("collections: unsupported key type")
)
