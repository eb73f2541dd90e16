package defs

// Common file names used across the project.
const (
	// ConfigYAML is the active site configuration file.
	ConfigYAML = "config.yml"

	// LocaleConfigPrefix is the prefix of locale-specific configuration
	// overrides, e.g. config_en_US.yml. A matching file is promoted to
	// ConfigYAML during initialization and consumed exactly once.
	LocaleConfigPrefix = "config_"

	// ThemesDir is the fixed themes directory every site carries.
	ThemesDir = "themes"
)

// Configuration keys consumed by the scaffolding core.
const (
	// SourceDirsKey lists the site's content source directories.
	SourceDirsKey = "source_dirs"

	// AssetDirsKey lists the site's static asset directories.
	AssetDirsKey = "asset_dirs"

	// PluginDirKey names the optional plugin directory.
	PluginDirKey = "plugin_dir"

	// SiteMetaKey is the global site metadata block passed through to
	// body rendering.
	SiteMetaKey = "opoopress"
)

// Filesystem permission bits.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)
