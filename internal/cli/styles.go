package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliBorder  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
			Padding(0, 1)
)

func symSuccess() string { return cliSuccess.Render("✓") }

// kvPair is one aligned key/value line inside a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders pairs with aligned, muted keys.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = fmt.Sprintf("%s  %s", cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)), p.value)
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a bordered card with a success headline
// and optional detail blocks.
func renderSuccessCard(headline string, details ...string) string {
	parts := []string{fmt.Sprintf("%s %s", symSuccess(), headline)}
	for _, d := range details {
		if d != "" {
			parts = append(parts, d)
		}
	}
	return cliBorder.Render(strings.Join(parts, "\n"))
}
