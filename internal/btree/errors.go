package btree

import "errors"

// Tree errors.
var (
	// ErrInvalidOrder is returned when an order smaller than MinOrder is requested.
	ErrInvalidOrder = errors.New("order must be at least 3")

	// ErrMalformedDocument is returned when a serialized tree is missing
	// required fields or is structurally inconsistent.
	ErrMalformedDocument = errors.New("malformed tree document")

	// ErrUnknownSplitPolicy is returned when parsing an unrecognized split policy name.
	ErrUnknownSplitPolicy = errors.New("unknown split policy")
)
