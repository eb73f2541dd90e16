package slug

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Hello World", "hello-world"},
		{"already_slugged", "hello-world", "hello-world"},
		{"mixed_case", "OpooPress Rocks", "opoopress-rocks"},
		{"punctuation_collapses", "Hello,  World!!!", "hello-world"},
		{"accents_stripped", "Café au Lait", "cafe-au-lait"},
		{"digits_kept", "Release 2.0 Notes", "release-2-0-notes"},
		{"leading_trailing_junk", "  --Hello--  ", "hello"},
		{"empty", "", ""},
		{"only_punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Make(tt.input); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
