package webkit

import (
	"testing"

	"github.com/bnema/dumbshell/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func TestDeveloperExtras(t *testing.T) {
	assert.False(t, developerExtras(nil))

	cfg := config.DefaultConfig()
	assert.False(t, developerExtras(cfg))

	cfg.Debug.OpenDevTools = true
	assert.True(t, developerExtras(cfg))
}
