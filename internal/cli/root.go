// Package cli wires the opoopress commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opoopress/opoopress/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "opoopress",
	Short: "OpooPress: content scaffolding for static sites",
	Long: `OpooPress manages the content side of a static site: it prepares a
site's directory layout, resolves locale-specific configuration, and
scaffolds new content files from naming patterns and body templates.`,
	Version:      version.GetVersion(),
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("opoopress %s\n", version.GetVersion()))
}
