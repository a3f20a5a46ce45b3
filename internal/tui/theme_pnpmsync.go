package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette built around the pnpm amber.
var (
	amberPrimary = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#f69220"}
	amberAccent  = lipgloss.AdaptiveColor{Light: "#92400e", Dark: "#fbbf24"}
	textStrong   = lipgloss.AdaptiveColor{Light: "#1c1917", Dark: "#fafaf9"}
	textNormal   = lipgloss.AdaptiveColor{Light: "#44403c", Dark: "#d6d3d1"}
	textMuted    = lipgloss.AdaptiveColor{Light: "#78716c", Dark: "#a8a29e"}
	borderNormal = lipgloss.AdaptiveColor{Light: "#d6d3d1", Dark: "#44403c"}
	buttonText   = lipgloss.AdaptiveColor{Light: "#fafaf9", Dark: "#1c1917"}
	buttonMuted  = lipgloss.AdaptiveColor{Light: "#e7e5e4", Dark: "#292524"}
	errorRed     = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
)

// pnpmsyncTheme is the default prompt theme.
func pnpmsyncTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(amberPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(amberPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(textMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorRed)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorRed)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(buttonText).
		Background(amberPrimary).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(textNormal).
		Background(buttonMuted).
		Padding(0, 1)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderForeground(borderNormal)
	t.Blurred.Title = t.Focused.Title.Foreground(textNormal)

	t.Help.ShortKey = t.Help.ShortKey.Foreground(amberAccent)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(textMuted)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(borderNormal)
	t.Help.FullKey = t.Help.FullKey.Foreground(amberAccent)
	t.Help.FullDesc = t.Help.FullDesc.Foreground(textStrong)
	t.Help.FullSeparator = t.Help.FullSeparator.Foreground(borderNormal)

	return t
}
