package config

// Config is the dumbshell configuration as read from config.toml.
type Config struct {
	// Shell controls the window and the page loaded at startup.
	Shell ShellConfig `mapstructure:"shell" toml:"shell"`
	// Dialogs controls how script dialogs (alert, confirm) are presented.
	Dialogs DialogsConfig `mapstructure:"dialogs" toml:"dialogs"`
	// Privacy controls the engine's network session.
	Privacy PrivacyConfig `mapstructure:"privacy" toml:"privacy"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
	Debug   DebugConfig   `mapstructure:"debug" toml:"debug"`
}

// ShellConfig holds window and startup settings.
type ShellConfig struct {
	StartURL     string `mapstructure:"start_url" toml:"start_url"`
	WindowTitle  string `mapstructure:"window_title" toml:"window_title"`
	WindowWidth  int    `mapstructure:"window_width" toml:"window_width"`
	WindowHeight int    `mapstructure:"window_height" toml:"window_height"`
}

// DialogPolicy decides what happens when a dialog arrives while another
// dialog of the same kind is still on screen.
type DialogPolicy string

const (
	// DialogPolicyQueue shows same-kind dialogs one after the other.
	DialogPolicyQueue DialogPolicy = "queue"
	// DialogPolicySupersede replaces the visible dialog; the replaced page
	// call is never answered.
	DialogPolicySupersede DialogPolicy = "supersede"
)

// DialogsConfig holds script dialog settings.
type DialogsConfig struct {
	SameKindPolicy DialogPolicy `mapstructure:"same_kind_policy" toml:"same_kind_policy"`
}

// CookiePolicy mirrors the engine's cookie acceptance modes.
type CookiePolicy string

const (
	CookiePolicyAlways       CookiePolicy = "always"
	CookiePolicyNoThirdParty CookiePolicy = "no_third_party"
	CookiePolicyNever        CookiePolicy = "never"
)

// PrivacyConfig holds network session settings.
type PrivacyConfig struct {
	CookiePolicy CookiePolicy `mapstructure:"cookie_policy" toml:"cookie_policy"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	// OpenDevTools opens the inspector when the window is shown.
	OpenDevTools bool `mapstructure:"open_devtools" toml:"open_devtools"`
	// MetricsAddr, when set, serves /metrics and /debug/dialogs on that address.
	MetricsAddr string `mapstructure:"metrics_addr" toml:"metrics_addr"`
}
