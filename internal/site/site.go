// Package site models an OpooPress site directory and its
// initialization: locale configuration promotion and directory
// structure validation.
package site

import (
	"github.com/opoopress/opoopress/internal/config"
	"github.com/opoopress/opoopress/internal/defs"
	"github.com/opoopress/opoopress/internal/slug"
)

// Site is a read-only view of a site owned by the caller. It carries
// the base directory, the active configuration, and the slug function
// used when scaffolding content.
type Site struct {
	// Root is the site base directory.
	Root string

	// Config is the active configuration loaded from Root.
	Config *config.Config
}

// NewSite builds a Site over the given base directory and configuration.
func NewSite(root string, cfg *config.Config) *Site {
	return &Site{Root: root, Config: cfg}
}

// Get returns the string configuration value for key.
func (s *Site) Get(key string) string {
	return s.Config.GetString(key)
}

// ToSlug derives a URL-safe identifier from free text.
func (s *Site) ToSlug(text string) string {
	return slug.Make(text)
}

// Meta returns the site's global metadata block, or nil when the
// configuration carries none.
func (s *Site) Meta() any {
	return s.Config.Get(defs.SiteMetaKey)
}
