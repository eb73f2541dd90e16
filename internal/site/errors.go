package site

import "errors"

// Sentinel errors for site initialization.
var (
	// ErrConfigPromotion indicates the locale configuration file could
	// not be renamed into place.
	ErrConfigPromotion = errors.New("site: locale config promotion failed")

	// ErrInvalidDirectory indicates a required path exists but is not a
	// readable, writable directory.
	ErrInvalidDirectory = errors.New("site: not a usable directory")
)
