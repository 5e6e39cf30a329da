package tracker

import "errors"

// Error kinds returned by tracker operations. All are values, never panics;
// retry policy belongs to the caller.
var (
	// ErrDuplicateID reports a registration collision.
	ErrDuplicateID = errors.New("duplicate product id")

	// ErrNotFound reports that no product matches the given id or token.
	ErrNotFound = errors.New("product not found")

	// ErrTokenMismatch reports that a supplied token does not authenticate
	// against the target product. Distinct from ErrNotFound: the caller
	// believed they had the right product.
	ErrTokenMismatch = errors.New("token does not match product")
)
