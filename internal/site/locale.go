package site

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale derives the process locale from the environment,
// checking LC_ALL, LC_MESSAGES and LANG in that order. Returns "" when
// no usable locale is set (including the C and POSIX locales).
func DefaultLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return NormalizeLocale(v)
		}
	}
	return ""
}

// NormalizeLocale reduces a raw locale value such as "en_US.UTF-8" or
// "pt-BR" to the underscore form used in locale config file names
// ("en_US", "pt_BR"). Unparseable values are cleaned but otherwise
// passed through; "C" and "POSIX" normalize to "".
func NormalizeLocale(raw string) string {
	// Strip encoding and modifier suffixes: en_US.UTF-8@euro -> en_US
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	if tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-")); err == nil {
		return strings.ReplaceAll(tag.String(), "-", "_")
	}
	return strings.ReplaceAll(raw, "-", "_")
}
