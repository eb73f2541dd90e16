package site

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/opoopress/opoopress/internal/config"
	"github.com/opoopress/opoopress/internal/defs"
)

// Manager drives site initialization: locale configuration promotion
// followed by directory structure validation. Promotion runs first so
// the validator reads the promoted, authoritative configuration.
type Manager struct {
	logger *slog.Logger
}

// NewManager creates a Manager. A nil logger discards output.
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{logger: logger}
}

// Initialize prepares the site at basedir for use. When locale is
// empty the process locale is used.
func (m *Manager) Initialize(basedir, locale string) error {
	if err := m.promoteLocaleConfig(basedir, locale); err != nil {
		return err
	}
	return m.validateDirectories(basedir)
}

// promoteLocaleConfig renames config_<locale>.yml to config.yml,
// replacing any existing plain configuration file. A missing locale
// file is a no-op. Deleting the stale plain file is best-effort; a
// failed rename is fatal.
func (m *Manager) promoteLocaleConfig(basedir, locale string) error {
	if locale == "" {
		locale = DefaultLocale()
	}
	if locale == "" {
		m.logger.Debug("no locale available, skipping config promotion")
		return nil
	}

	localeName := defs.LocaleConfigPrefix + locale + ".yml"
	localePath := filepath.Join(basedir, localeName)
	if _, err := os.Stat(localePath); err != nil {
		m.logger.Debug("locale config not present, skipping promotion", "file", localeName)
		return nil
	}

	configPath := filepath.Join(basedir, defs.ConfigYAML)
	if _, err := os.Stat(configPath); err == nil {
		if err := os.Remove(configPath); err != nil {
			m.logger.Warn("failed to remove stale config file", "path", configPath, "error", err)
		}
	}

	if err := os.Rename(localePath, configPath); err != nil {
		return fmt.Errorf("%w: rename %s: %v", ErrConfigPromotion, localeName, err)
	}
	m.logger.Info("promoted locale config", "from", localeName, "to", defs.ConfigYAML)
	return nil
}

// validateDirectories ensures every configured directory exists and is
// usable. An uninitialized site (no discovered config files) is not an
// error at this stage.
func (m *Manager) validateDirectories(basedir string) error {
	cfg, err := config.Load(basedir, nil)
	if err != nil {
		return err
	}

	if len(cfg.Files()) == 0 {
		m.logger.Warn("no site config file, skipping directory validation", "basedir", basedir)
		return nil
	}

	if err := m.checkDirectoryList(basedir, cfg.GetStringSlice(defs.SourceDirsKey)); err != nil {
		return err
	}
	if err := m.checkDirectoryList(basedir, cfg.GetStringSlice(defs.AssetDirsKey)); err != nil {
		return err
	}
	if err := m.checkDirectory(basedir, cfg.GetString(defs.PluginDirKey)); err != nil {
		return err
	}
	return m.checkDirectory(basedir, defs.ThemesDir)
}

func (m *Manager) checkDirectoryList(basedir string, dirs []string) error {
	for _, dir := range dirs {
		if err := m.checkDirectory(basedir, dir); err != nil {
			return err
		}
	}
	return nil
}

// checkDirectory creates dir under basedir when missing, and otherwise
// verifies it is a readable, writable directory. Empty dir values are
// skipped silently.
func (m *Manager) checkDirectory(basedir, dir string) error {
	if dir == "" {
		return nil
	}

	path := filepath.Join(basedir, dir)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, defs.DirPerm); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidDirectory, path, err)
		}
		m.logger.Info("mkdir", "path", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDirectory, path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInvalidDirectory, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: not readable", ErrInvalidDirectory, path)
	}
	_ = f.Close()
	if info.Mode().Perm()&0o200 == 0 {
		return fmt.Errorf("%w: %s: not writable", ErrInvalidDirectory, path)
	}
	return nil
}
