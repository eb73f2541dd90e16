package site

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/opoopress/opoopress/internal/config"
)

func newTestSite(t *testing.T, configYAML string) *Site {
	t.Helper()
	dir := t.TempDir()
	if configYAML != "" {
		if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(configYAML), 0o644); err != nil {
			t.Fatalf("write config.yml: %v", err)
		}
	}
	cfg, err := config.Load(dir, nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return NewSite(dir, cfg)
}

func TestSiteAccessors(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, "new_post: 'custom/{{name}}.md'\nopoopress:\n  version: 1.2.0\n")

	if got := s.Get("new_post"); got != "custom/{{name}}.md" {
		t.Errorf("Get(new_post) = %q, want configured pattern", got)
	}
	if got := s.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want \"\"", got)
	}
	if got := s.ToSlug("Hello World"); got != "hello-world" {
		t.Errorf("ToSlug = %q, want %q", got, "hello-world")
	}
	if s.Meta() == nil {
		t.Error("Meta() should expose the opoopress block")
	}
}

func TestSiteMetaAbsent(t *testing.T) {
	t.Parallel()

	s := newTestSite(t, "")
	if s.Meta() != nil {
		t.Errorf("Meta() = %v, want nil without an opoopress block", s.Meta())
	}
}
