// Package template provides the rendering capability used by the
// scaffold generator. Templates are plain strings with {{name}} tags;
// tags that have no value in the context are emitted verbatim so a
// pattern may reference keys that are bound later (or never).
package template

import (
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
)

// Renderer renders a template string against a key/value context.
type Renderer interface {
	// Render executes the template with the given context and returns
	// the rendered text. Returns an error wrapping ErrRender when the
	// template is malformed.
	Render(template string, ctx map[string]any) (string, error)
}

// renderer is the concrete fasttemplate-backed implementation.
type renderer struct{}

// NewRenderer creates the default Renderer.
func NewRenderer() Renderer {
	return &renderer{}
}

// Render substitutes {{key}} tags from ctx. Unknown tags are written
// back literally, including their delimiters.
func (r *renderer) Render(template string, ctx map[string]any) (string, error) {
	out, err := fasttemplate.ExecuteFuncStringWithErr(template, startTag, endTag,
		func(w io.Writer, tag string) (int, error) {
			key := strings.TrimSpace(tag)
			if v, ok := ctx[key]; ok {
				return fmt.Fprintf(w, "%v", v)
			}
			return fmt.Fprintf(w, "%s%s%s", startTag, tag, endTag)
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}
