package config

// Default configuration constants
const (
	defaultStartURL     = "https://www.google.com"
	defaultWindowTitle  = "dumbshell"
	defaultWindowWidth  = 1200 // px
	defaultWindowHeight = 800  // px

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3

	minWindowDimension = 100 // px
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			StartURL:     defaultStartURL,
			WindowTitle:  defaultWindowTitle,
			WindowWidth:  defaultWindowWidth,
			WindowHeight: defaultWindowHeight,
		},
		Dialogs: DialogsConfig{
			SameKindPolicy: DialogPolicyQueue,
		},
		Privacy: PrivacyConfig{
			CookiePolicy: CookiePolicyNoThirdParty,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
		},
		Debug: DebugConfig{
			OpenDevTools: false,
			MetricsAddr:  "",
		},
	}
}

func getDefaultLogDir() string {
	dir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return dir
}
