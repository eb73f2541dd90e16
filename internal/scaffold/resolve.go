package scaffold

import (
	"fmt"
	"strings"

	"github.com/opoopress/opoopress/internal/config"
)

// Built-in defaults apply only to the post and page layouts. Any other
// layout must provide an explicit value or a configuration key.
var (
	builtinFilePatterns = map[string]string{
		"post": config.DefaultNewPostFile,
		"page": config.DefaultNewPageFile,
	}
	builtinBodyTemplates = map[string]string{
		"post": config.DefaultNewPostTemplate,
		"page": config.DefaultNewPageTemplate,
	}
)

// ResolvePattern resolves the file-path pattern for layout through the
// three-level cascade: explicit argument, then the new_<layout>
// configuration key via lookup, then the built-in default. The
// function performs no I/O.
func ResolvePattern(explicit string, lookup func(string) string, layout string) (string, error) {
	key := "new_" + layout
	if v, ok := cascade(explicit, lookup, key, builtinFilePatterns[layout]); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (config key %q not set)", ErrMissingPattern, layout, key)
}

// ResolveTemplate resolves the body template for layout, mirroring
// ResolvePattern with the new_<layout>_template configuration key.
func ResolveTemplate(explicit string, lookup func(string) string, layout string) (string, error) {
	key := "new_" + layout + "_template"
	if v, ok := cascade(explicit, lookup, key, builtinBodyTemplates[layout]); ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q (config key %q not set)", ErrMissingTemplate, layout, key)
}

func cascade(explicit string, lookup func(string) string, key, builtin string) (string, bool) {
	if strings.TrimSpace(explicit) != "" {
		return explicit, true
	}
	if v := lookup(key); strings.TrimSpace(v) != "" {
		return v, true
	}
	if builtin != "" {
		return builtin, true
	}
	return "", false
}
