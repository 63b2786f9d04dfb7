package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG base directory at a fresh temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "https://www.google.com", mgr.viper.GetString("shell.start_url"))
	assert.Equal(t, 1200, mgr.viper.GetInt("shell.window_width"))
	assert.Equal(t, 800, mgr.viper.GetInt("shell.window_height"))
	assert.Equal(t, "queue", mgr.viper.GetString("dialogs.same_kind_policy"))
	assert.Equal(t, "no_third_party", mgr.viper.GetString("privacy.cookie_policy"))
	assert.False(t, mgr.viper.GetBool("debug.open_devtools"))
}

func TestNormalizeConfig_DialogPolicy(t *testing.T) {
	tests := []struct {
		in   DialogPolicy
		want DialogPolicy
	}{
		{"", DialogPolicyQueue},
		{"queue", DialogPolicyQueue},
		{"SUPERSEDE", DialogPolicySupersede},
		{" supersede ", DialogPolicySupersede},
		{"replace", DialogPolicyQueue},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Dialogs.SameKindPolicy = tt.in
			normalizeConfig(cfg)
			assert.Equal(t, tt.want, cfg.Dialogs.SameKindPolicy)
		})
	}
}

func TestNormalizeConfig_PrivacyCookiePolicy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Privacy.CookiePolicy = CookiePolicy("INVALID")
	normalizeConfig(cfg)
	assert.Equal(t, CookiePolicyNoThirdParty, cfg.Privacy.CookiePolicy)

	cfg.Privacy.CookiePolicy = CookiePolicy("Never")
	normalizeConfig(cfg)
	assert.Equal(t, CookiePolicyNever, cfg.Privacy.CookiePolicy)
}

func TestLoad_CreatesDefaultConfigFile(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(mgr.GetConfigFile())
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().Shell, cfg.Shell)
	assert.Equal(t, DialogPolicyQueue, cfg.Dialogs.SameKindPolicy)
}

func TestLoad_ReadsExistingFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "config", appName, "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configFile), 0o755))
	require.NoError(t, os.WriteFile(configFile, []byte(`
[shell]
start_url = "https://example.org"
window_width = 640

[dialogs]
same_kind_policy = "supersede"
`), 0o644))
	t.Setenv("DUMBSHELL_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://example.org", cfg.Shell.StartURL)
	assert.Equal(t, 640, cfg.Shell.WindowWidth)
	assert.Equal(t, 800, cfg.Shell.WindowHeight)
	assert.Equal(t, DialogPolicySupersede, cfg.Dialogs.SameKindPolicy)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	configFile := filepath.Join(root, "config", appName, "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configFile), 0o755))
	require.NoError(t, os.WriteFile(configFile, []byte(`
[shell]
window_width = 10

[logging]
level = "loud"
`), 0o644))

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shell.window_width")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestReload_KeepsPreviousConfigOnError(t *testing.T) {
	isolateXDG(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var notified *Config
	mgr.OnConfigChange(func(c *Config) { notified = c })

	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte("[dialogs]\nsame_kind_policy = \"supersede\"\n"), 0o644))
	mgr.mu.Lock()
	require.NoError(t, mgr.reload())
	mgr.notifyCallbacksLocked()

	require.NotNil(t, notified)
	assert.Equal(t, DialogPolicySupersede, notified.Dialogs.SameKindPolicy)

	require.NoError(t, os.WriteFile(mgr.GetConfigFile(), []byte("[shell]\nwindow_height = 1\n"), 0o644))
	mgr.mu.Lock()
	err = mgr.reload()
	mgr.mu.Unlock()
	require.Error(t, err)
	assert.Equal(t, DialogPolicySupersede, mgr.Get().Dialogs.SameKindPolicy)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr := &Manager{config: DefaultConfig()}
	cfg := mgr.Get()
	cfg.Shell.StartURL = "about:blank"
	assert.Equal(t, "https://www.google.com", mgr.Get().Shell.StartURL)
}
