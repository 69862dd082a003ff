package domain

import "errors"

var (
	// ErrLinkNotFound covers absent, inactive and expired links alike.
	ErrLinkNotFound = errors.New("link not found")
	ErrValidation   = errors.New("validation failed")
)
