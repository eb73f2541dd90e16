package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/opoopress/opoopress/internal/config"
	"github.com/opoopress/opoopress/internal/scaffold"
	"github.com/opoopress/opoopress/internal/site"
	"github.com/opoopress/opoopress/internal/template"
)

var newCmd = &cobra.Command{
	Use:   "new [dir]",
	Short: "Scaffold a new content file",
	Long: `Scaffold a new content file in the site at dir (default: current
directory). The file path and initial body come from the layout's
naming pattern and body template, resolved through explicit flags,
site configuration (new_<layout>, new_<layout>_template), and the
built-in post/page defaults:

  opoopress new -t "Hello World"
  opoopress new -l page -t About
  opoopress new -t Note --meta category=misc --meta draft=true`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().StringP("layout", "l", "post", "Content layout (post, page, or a configured kind)")
	newCmd.Flags().StringP("title", "t", "", "Title of the new content")
	newCmd.Flags().String("name", "", "File name seed (default: derived from title)")
	newCmd.Flags().String("format", "", "Content format (default: markdown)")
	newCmd.Flags().String("pattern", "", "Explicit file-path pattern, overrides configuration")
	newCmd.Flags().String("template", "", "Explicit body template, overrides configuration")
	newCmd.Flags().StringArray("meta", nil, "Extra template metadata as key=value (repeatable)")
	newCmd.Flags().Bool("fail-if-exists", false, "Fail instead of overwriting an existing file")
	newCmd.Flags().Bool("preview", false, "Render the scaffolded body to the terminal")
}

// promptTitle asks for a title interactively.
func promptTitle() (string, error) {
	var title string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Title").
			Description("Title of the new content").
			Value(&title),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(title), nil
}

// parseMeta turns repeated key=value flags into a metadata map.
func parseMeta(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	meta := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --meta value %q: expected key=value", p)
		}
		meta[strings.TrimSpace(key)] = value
	}
	return meta, nil
}

// envContext expands the process environment into the base context
// seed for rendering.
func envContext() map[string]string {
	env := os.Environ()
	seed := make(map[string]string, len(env))
	for _, kv := range env {
		if key, value, ok := strings.Cut(kv, "="); ok {
			seed[key] = value
		}
	}
	return seed
}

func runNew(cmd *cobra.Command, args []string) error {
	basedir, err := resolveBasedir(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(basedir, nil)
	if err != nil {
		return err
	}
	s := site.NewSite(basedir, cfg)

	title := getStringFlag(cmd, "title")
	name := getStringFlag(cmd, "name")
	if title == "" && name == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		title, err = promptTitle()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Cancelled.")
				return nil
			}
			return fmt.Errorf("title prompt failed: %w", err)
		}
	}

	metaFlags, err := cmd.Flags().GetStringArray("meta")
	if err != nil {
		return err
	}
	meta, err := parseMeta(metaFlags)
	if err != nil {
		return err
	}

	layout := getStringFlag(cmd, "layout")
	g := scaffold.NewGenerator(template.NewRenderer(),
		scaffold.WithBaseContext(envContext()),
		scaffold.WithLogger(newLogger(cmd)))

	dest, err := g.CreateNewFile(s, scaffold.NewFileOptions{
		Layout:       layout,
		Title:        title,
		Name:         name,
		Format:       getStringFlag(cmd, "format"),
		FilePattern:  getStringFlag(cmd, "pattern"),
		BodyTemplate: getStringFlag(cmd, "template"),
		Meta:         meta,
		FailIfExists: getBoolFlag(cmd, "fail-if-exists"),
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderSuccessCard("New "+layout+" created",
		renderKeyValueLines([]kvPair{{"File", dest}})))

	if getBoolFlag(cmd, "preview") {
		if err := printPreview(cmd, dest); err != nil {
			_, _ = fmt.Fprintln(cmd.OutOrStderr(), cliWarn.Render("Warning: preview failed: "+err.Error()))
		}
	}
	return nil
}

// printPreview renders the scaffolded file as markdown in the terminal.
func printPreview(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	out, err := glamour.Render(string(data), "auto")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
