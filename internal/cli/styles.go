package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ANSI palette, readable on light and dark terminals.
const (
	colorSuccess lipgloss.Color = "2"
	colorError   lipgloss.Color = "1"
	colorMuted   lipgloss.Color = "8"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

const symbolSuccess = "✓"

// summary renders a one-line result such as
// "✓ wrote gauge.png  240x240 circular 7/10".
func summary(action, target string, c *ChartFile) string {
	detail := fmt.Sprintf("%dx%d %s %g/%g", c.Width, c.Height, c.Variant, c.Value, c.MaxValue)
	return successStyle.Render(symbolSuccess) + " " + action + " " + target + "  " + mutedStyle.Render(detail)
}
