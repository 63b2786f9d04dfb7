package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfig_WritesDecodableTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()
	cfg.Dialogs.SameKindPolicy = DialogPolicySupersede

	require.NoError(t, WriteConfig(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[dialogs]")
	assert.Contains(t, string(data), "same_kind_policy = 'supersede'")

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestEncodeTOML_NilConfig(t *testing.T) {
	_, err := EncodeTOML(nil)
	assert.Error(t, err)
}
