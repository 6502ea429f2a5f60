package tui

import "github.com/charmbracelet/lipgloss"

// Palette: warm kitchen colours with green/red reserved for outcomes
var (
	primaryColor = lipgloss.Color("173") // Terracotta
	accentColor  = lipgloss.Color("222") // Butter
	mutedColor   = lipgloss.Color("245")
	successColor = lipgloss.Color("71")
	warningColor = lipgloss.Color("208")
	errorColor   = lipgloss.Color("160")
	borderColor  = lipgloss.Color("137") // Walnut
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	successStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	warningStyle = lipgloss.NewStyle().Foreground(warningColor)

	openLateStyle    = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	closesEarlyStyle = lipgloss.NewStyle().Bold(true).Foreground(warningColor)
	totalStyle       = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
)

// Frame
var (
	appBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(borderColor).
			Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Background(primaryColor).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(accentColor)
)
