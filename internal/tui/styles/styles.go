// Package styles provides Lip Gloss styling for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary     = lipgloss.Color("#7C3AED") // Purple
	Secondary   = lipgloss.Color("#10B981") // Green
	Accent      = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Surface     = lipgloss.Color("#374151") // Lighter dark gray
	TextPrimary = lipgloss.Color("#F9FAFB") // Almost white
	TextMuted   = lipgloss.Color("#9CA3AF") // Light gray

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Padding(0, 1)

	// Logline under the header
	Subtitle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Italic(true).
			Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(Surface).
			Foreground(TextMuted).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusValue = lipgloss.NewStyle().
			Foreground(TextPrimary)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Help
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(TextMuted)

	// Script body
	SectionHeading = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Body = lipgloss.NewStyle().
		Foreground(TextPrimary)
)

// Width returns the available width for content.
func Width(termWidth int) int {
	return termWidth - 4 // Account for padding
}
