package scaffold

import (
	"errors"
	"strings"
	"testing"

	"github.com/opoopress/opoopress/internal/config"
)

// lookupFrom builds a config lookup function from a plain map.
func lookupFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestResolvePatternCascade(t *testing.T) {
	t.Parallel()

	configured := lookupFrom(map[string]string{"new_post": "configured/{{name}}.md"})
	empty := lookupFrom(nil)

	t.Run("explicit_wins_over_config_and_builtin", func(t *testing.T) {
		t.Parallel()
		got, err := ResolvePattern("explicit/{{name}}.md", configured, "post")
		if err != nil {
			t.Fatalf("ResolvePattern error: %v", err)
		}
		if got != "explicit/{{name}}.md" {
			t.Errorf("pattern = %q, want explicit argument", got)
		}
	})

	t.Run("config_wins_over_builtin", func(t *testing.T) {
		t.Parallel()
		got, err := ResolvePattern("", configured, "post")
		if err != nil {
			t.Fatalf("ResolvePattern error: %v", err)
		}
		if got != "configured/{{name}}.md" {
			t.Errorf("pattern = %q, want configured value", got)
		}
	})

	t.Run("builtin_as_last_resort", func(t *testing.T) {
		t.Parallel()
		got, err := ResolvePattern("", empty, "post")
		if err != nil {
			t.Fatalf("ResolvePattern error: %v", err)
		}
		if got != config.DefaultNewPostFile {
			t.Errorf("pattern = %q, want built-in post default", got)
		}
	})

	t.Run("blank_explicit_is_ignored", func(t *testing.T) {
		t.Parallel()
		got, err := ResolvePattern("   ", empty, "page")
		if err != nil {
			t.Fatalf("ResolvePattern error: %v", err)
		}
		if got != config.DefaultNewPageFile {
			t.Errorf("pattern = %q, want built-in page default", got)
		}
	})

	t.Run("unknown_layout_fails", func(t *testing.T) {
		t.Parallel()
		_, err := ResolvePattern("", empty, "gallery")
		if err == nil {
			t.Fatal("ResolvePattern should fail for an unconfigured layout")
		}
		if !errors.Is(err, ErrMissingPattern) {
			t.Errorf("error = %v, want ErrMissingPattern", err)
		}
		if !strings.Contains(err.Error(), "gallery") || !strings.Contains(err.Error(), "new_gallery") {
			t.Errorf("error %q should name the layout and the missing key", err)
		}
	})

	t.Run("unknown_layout_with_config_succeeds", func(t *testing.T) {
		t.Parallel()
		lookup := lookupFrom(map[string]string{"new_gallery": "galleries/{{name}}.md"})
		got, err := ResolvePattern("", lookup, "gallery")
		if err != nil {
			t.Fatalf("ResolvePattern error: %v", err)
		}
		if got != "galleries/{{name}}.md" {
			t.Errorf("pattern = %q, want configured gallery value", got)
		}
	})
}

func TestResolveTemplateCascade(t *testing.T) {
	t.Parallel()

	t.Run("builtin_defaults_exist_for_post_and_page", func(t *testing.T) {
		t.Parallel()
		for _, layout := range []string{"post", "page"} {
			got, err := ResolveTemplate("", lookupFrom(nil), layout)
			if err != nil {
				t.Fatalf("ResolveTemplate(%s) error: %v", layout, err)
			}
			if got == "" {
				t.Errorf("ResolveTemplate(%s) returned empty built-in", layout)
			}
		}
	})

	t.Run("config_key_uses_template_suffix", func(t *testing.T) {
		t.Parallel()
		lookup := lookupFrom(map[string]string{"new_post_template": "custom body"})
		got, err := ResolveTemplate("", lookup, "post")
		if err != nil {
			t.Fatalf("ResolveTemplate error: %v", err)
		}
		if got != "custom body" {
			t.Errorf("template = %q, want configured value", got)
		}
	})

	t.Run("unknown_layout_fails", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveTemplate("", lookupFrom(nil), "gallery")
		if !errors.Is(err, ErrMissingTemplate) {
			t.Errorf("error = %v, want ErrMissingTemplate", err)
		}
		if err != nil && !strings.Contains(err.Error(), "new_gallery_template") {
			t.Errorf("error %q should name the missing key", err)
		}
	})
}
