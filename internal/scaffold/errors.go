// Package scaffold creates new content files from naming patterns and
// body templates resolved through cascading defaults.
package scaffold

import "errors"

// Sentinel errors for scaffold generation.
var (
	// ErrMissingPattern indicates no file-path pattern applies to the
	// requested layout.
	ErrMissingPattern = errors.New("scaffold: no file pattern for layout")

	// ErrMissingTemplate indicates no body template applies to the
	// requested layout.
	ErrMissingTemplate = errors.New("scaffold: no body template for layout")

	// ErrFileExists indicates the destination already exists and the
	// caller asked not to overwrite it.
	ErrFileExists = errors.New("scaffold: destination file already exists")
)
