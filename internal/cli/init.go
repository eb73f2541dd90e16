package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opoopress/opoopress/internal/site"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Initialize a site directory",
	Long: `Initialize a site directory for content scaffolding.

Promotes a locale-specific configuration file (config_<locale>.yml) to
the active config.yml, then ensures every configured directory exists
and is usable:

  opoopress init             Initialize the current directory
  opoopress init ./blog      Initialize ./blog
  opoopress init --locale de_DE`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("locale", "", "Locale for config promotion (default: process locale)")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// resolveBasedir turns the optional positional argument into an
// absolute site base directory, defaulting to the working directory.
func resolveBasedir(args []string) (string, error) {
	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(args[0])
	if err != nil {
		return "", fmt.Errorf("resolve site path %q: %w", args[0], err)
	}
	return abs, nil
}

// newLogger builds the slog logger commands hand to the core.
func newLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

func runInit(cmd *cobra.Command, args []string) error {
	basedir, err := resolveBasedir(args)
	if err != nil {
		return err
	}

	locale := getStringFlag(cmd, "locale")
	if locale != "" {
		locale = site.NormalizeLocale(locale)
	}

	m := site.NewManager(newLogger(cmd))
	if err := m.Initialize(basedir, locale); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("Site initialized",
		renderKeyValueLines([]kvPair{{"Directory", basedir}})))
	return nil
}
