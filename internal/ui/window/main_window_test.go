package window

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatTitle(t *testing.T) {
	assert.Equal(t, "dumbshell", FormatTitle("dumbshell", ""))
	assert.Equal(t, "Example Domain - dumbshell", FormatTitle("dumbshell", "Example Domain"))

	long := FormatTitle("dumbshell", strings.Repeat("é", 400))
	assert.Equal(t, maxTitleLen, utf8.RuneCountInString(long))
	assert.True(t, strings.HasSuffix(long, "..."))
}

func TestWindowErrors(t *testing.T) {
	err := ErrWidgetCreationFailed("rootBox")
	assert.EqualError(t, err, "failed to create widget: rootBox")

	var we WindowError
	assert.True(t, errors.As(err, &we))
	assert.EqualError(t, ErrWindowCreationFailed, "failed to create application window")
}

func TestMainWindow_SetModalTracksChanges(t *testing.T) {
	mw := &MainWindow{}
	assert.False(t, mw.IsModal())

	assert.True(t, mw.SetModal(true))
	assert.False(t, mw.SetModal(true))
	assert.True(t, mw.IsModal())

	assert.True(t, mw.SetModal(false))
	assert.False(t, mw.IsModal())
	assert.Nil(t, mw.KeyTarget())
}
