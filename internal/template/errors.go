package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrRender indicates the template engine rejected a template.
	ErrRender = errors.New("template: render failed")
)
