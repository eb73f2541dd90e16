package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeConfig writes a config.yml with the given content into a fresh
// temp site directory and returns the directory path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config.yml: %v", err)
	}
	return dir
}

func TestLoadMissingConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Load(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Files()) != 0 {
		t.Errorf("Files() = %v, want empty", cfg.Files())
	}
	if got := cfg.GetString("title"); got != "" {
		t.Errorf("GetString on empty config = %q, want \"\"", got)
	}
}

func TestLoadDiscoversConfigFile(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "title: My Site\nsource_dirs:\n  - _posts\n  - _drafts\n")
	cfg, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Files()) != 1 {
		t.Fatalf("Files() = %v, want one entry", cfg.Files())
	}
	if got := cfg.GetString("title"); got != "My Site" {
		t.Errorf("GetString(title) = %q, want %q", got, "My Site")
	}
	want := []string{"_posts", "_drafts"}
	if got := cfg.GetStringSlice("source_dirs"); !reflect.DeepEqual(got, want) {
		t.Errorf("GetStringSlice(source_dirs) = %v, want %v", got, want)
	}
}

func TestLoadOverrideWins(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "plugin_dir: plugins\n")
	cfg, err := Load(dir, map[string]any{"plugin_dir": "ext"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.GetString("plugin_dir"); got != "ext" {
		t.Errorf("GetString(plugin_dir) = %q, want %q", got, "ext")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "title: [unclosed\n")
	_, err := Load(dir, nil)
	if err == nil {
		t.Fatal("Load() should fail on invalid YAML")
	}
	if !errors.Is(err, ErrInvalidYAML) {
		t.Errorf("error = %v, want ErrInvalidYAML", err)
	}
}

func TestGetNestedBlock(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "opoopress:\n  version: 1.2.0\n  author: alex\n")
	cfg, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	block, ok := cfg.Get("opoopress").(map[string]any)
	if !ok {
		t.Fatalf("Get(opoopress) = %T, want map", cfg.Get("opoopress"))
	}
	if block["author"] != "alex" {
		t.Errorf("opoopress.author = %v, want %q", block["author"], "alex")
	}
	// Nested blocks are not flattened into strings.
	if got := cfg.GetString("opoopress"); got != "" {
		t.Errorf("GetString(opoopress) = %q, want \"\"", got)
	}
}

func TestGetStringFormatsScalars(t *testing.T) {
	t.Parallel()

	dir := writeConfig(t, "paginate: 10\n")
	cfg, err := Load(dir, nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := cfg.GetString("paginate"); got != "10" {
		t.Errorf("GetString(paginate) = %q, want %q", got, "10")
	}
}
