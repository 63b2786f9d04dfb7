package port_test

import (
	"testing"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/stretchr/testify/assert"
)

func TestWebKitContextOptions_Ephemeral(t *testing.T) {
	tests := []struct {
		name     string
		opts     port.WebKitContextOptions
		expected bool
	}{
		{name: "no directories", opts: port.WebKitContextOptions{}, expected: true},
		{name: "data only", opts: port.WebKitContextOptions{DataDir: "/tmp/data"}, expected: true},
		{name: "cache only", opts: port.WebKitContextOptions{CacheDir: "/tmp/cache"}, expected: true},
		{
			name:     "both directories",
			opts:     port.WebKitContextOptions{DataDir: "/tmp/data", CacheDir: "/tmp/cache"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.opts.Ephemeral())
		})
	}
}
