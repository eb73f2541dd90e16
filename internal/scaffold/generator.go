package scaffold

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/opoopress/opoopress/internal/defs"
	"github.com/opoopress/opoopress/internal/site"
	"github.com/opoopress/opoopress/internal/template"
)

// Generator scaffolds new content files. Rendering goes through an
// injected Renderer; the base context seed and the clock are injected
// too so generation is reproducible in tests.
type Generator struct {
	renderer template.Renderer
	base     map[string]string
	now      func() time.Time
	logger   *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithBaseContext sets the base context seed, the lowest-precedence
// layer of every rendering context. The CLI passes the process
// environment here.
func WithBaseContext(base map[string]string) Option {
	return func(g *Generator) { g.base = base }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// NewGenerator creates a Generator using the given renderer. Without
// options it has an empty base seed, the wall clock, and a discard
// logger.
func NewGenerator(renderer template.Renderer, opts ...Option) *Generator {
	g := &Generator{
		renderer: renderer,
		now:      time.Now,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewFileOptions describes one scaffold request.
type NewFileOptions struct {
	Layout       string         // Content kind driving the default cascade, e.g. "post".
	Title        string         // Human title; also the name fallback.
	Name         string         // File name seed; slugged before use.
	Format       string         // Content format; defaults to "markdown".
	FilePattern  string         // Explicit path pattern, overrides configuration.
	BodyTemplate string         // Explicit body template, overrides configuration.
	Meta         map[string]any // Caller-supplied metadata merged into the context.
	FailIfExists bool           // Refuse to overwrite an existing destination.
}

// CreateNewFile resolves the naming pattern and body template for the
// requested layout, renders the destination path and the initial body,
// and writes the file under the site's base directory. It returns the
// absolute destination path.
//
// An existing destination is overwritten unless FailIfExists is set.
// A request without Title and Name is accepted; the rendered name is
// simply empty.
func (g *Generator) CreateNewFile(s *site.Site, opts NewFileOptions) (string, error) {
	name := g.processName(s, opts.Title, opts.Name)

	format := strings.TrimSpace(opts.Format)
	if format == "" {
		format = "markdown"
	}

	pattern, err := ResolvePattern(opts.FilePattern, s.Get, opts.Layout)
	if err != nil {
		return "", err
	}
	body, err := ResolveTemplate(opts.BodyTemplate, s.Get, opts.Layout)
	if err != nil {
		return "", err
	}

	ctx := g.buildContext(opts, name, format)

	// The path context deliberately excludes site, file and the global
	// metadata block: the destination cannot depend on itself.
	rel, err := g.renderer.Render(pattern, ctx.Values())
	if err != nil {
		return "", fmt.Errorf("render file pattern: %w", err)
	}
	dest := filepath.Join(s.Root, filepath.FromSlash(strings.TrimSpace(rel)))

	ctx.Put("site", s.Root)
	ctx.Put("file", dest)
	if meta := s.Meta(); meta != nil {
		ctx.Put(defs.SiteMetaKey, meta)
	}

	content, err := g.renderer.Render(body, ctx.Values())
	if err != nil {
		return "", fmt.Errorf("render body template: %w", err)
	}

	if err := g.write(dest, content, opts.FailIfExists); err != nil {
		return "", err
	}

	g.logger.Info("wrote new content file", "layout", opts.Layout, "file", dest)
	return dest, nil
}

// processName falls back to the title when no name is given, then
// slugs the result. Both absent yields an empty name; downstream
// templates render it as empty rather than failing.
func (g *Generator) processName(s *site.Site, title, name string) string {
	if name == "" {
		if title != "" {
			g.logger.Info("using title as content name", "title", title)
		}
		name = title
	} else {
		name = strings.TrimSpace(name)
	}
	return s.ToSlug(name)
}

// buildContext assembles the rendering context in precedence order:
// base seed, caller metadata, title, name, format, date parts.
func (g *Generator) buildContext(opts NewFileOptions, name, format string) *Context {
	ctx := NewContext()

	seedKeys := make([]string, 0, len(g.base))
	for k := range g.base {
		seedKeys = append(seedKeys, k)
	}
	sort.Strings(seedKeys)
	for _, k := range seedKeys {
		ctx.Put(k, g.base[k])
	}

	ctx.PutAll(opts.Meta)

	if opts.Title != "" {
		ctx.Put("title", opts.Title)
	}
	ctx.Put("name", name)
	ctx.Put("format", format)
	ctx.PutDateParams(g.now())

	return ctx
}

// write materializes the rendered body, creating missing parent
// directories first.
func (g *Generator) write(dest, content string, failIfExists bool) error {
	if failIfExists {
		if _, err := os.Stat(dest); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, dest)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), defs.DirPerm); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}
	if err := os.WriteFile(dest, []byte(content), defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}
