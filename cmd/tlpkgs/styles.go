// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Color palette shared by all CLI output.
const (
	// ColorPrimary is purple - used for titles.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and hints.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for the error prefix.
	ColorError = lipgloss.Color("#EF4444")
)

var (
	// TitleStyle is for the program name in help output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for section headers in help output.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// errorPrefixStyle returns the style of the "Error" prefix bound to r, so the
// color profile is detected on the stream actually written to.
func errorPrefixStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Bold(true).
		Foreground(ColorError)
}
