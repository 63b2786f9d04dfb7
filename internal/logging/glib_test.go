package logging

import (
	"testing"

	"github.com/jwijenbergh/puregotk/v4/glib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGLibLevel(t *testing.T) {
	assert.Equal(t, zerolog.ErrorLevel, glibLevel(glib.GLogLevelErrorValue))
	assert.Equal(t, zerolog.ErrorLevel, glibLevel(glib.GLogLevelCriticalValue))
	assert.Equal(t, zerolog.WarnLevel, glibLevel(glib.GLogLevelWarningValue))
	assert.Equal(t, zerolog.InfoLevel, glibLevel(glib.GLogLevelMessageValue))
	assert.Equal(t, zerolog.InfoLevel, glibLevel(glib.GLogLevelInfoValue))
	assert.Equal(t, zerolog.DebugLevel, glibLevel(glib.GLogLevelDebugValue))
}
