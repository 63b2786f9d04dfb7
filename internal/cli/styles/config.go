package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists yet.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	out := fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	if !exists {
		out += fmt.Sprintf("  %s %s\n",
			iconStyle.Render(IconInfo),
			r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
		)
	}
	return out
}

// RenderTOML renders the effective configuration.
func (r *ConfigRenderer) RenderTOML(data []byte) string {
	body := strings.TrimRight(string(data), "\n")
	return "\n" + r.theme.Code.Render(body) + "\n"
}

// RenderResetSuccess renders the message shown after defaults were written.
func (r *ConfigRenderer) RenderResetSuccess(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote default settings to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
	)
}

// RenderAborted renders the message shown when the user declines a reset.
func (r *ConfigRenderer) RenderAborted() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Config left unchanged."))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf("\n  %s Config error: %v\n", iconStyle.Render(IconX), err)
}
