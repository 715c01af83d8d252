package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#007AFF")
	muted  = lipgloss.Color("#999999")
	faint  = lipgloss.Color("#CCCCCC")
	ink    = lipgloss.Color("#000000")

	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	headerStyle    = lipgloss.NewStyle().Bold(true).Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	labelStyle     = lipgloss.NewStyle().Foreground(muted)
	subLabelStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true)
	imageStyle     = lipgloss.NewStyle().Foreground(faint)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	placeholderBox = lipgloss.NewStyle().Padding(2, 4)

	fieldStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(faint).Padding(0, 1)
	focusedFieldStyle = fieldStyle.BorderForeground(accent)
	buttonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accent).Bold(true).Padding(0, 3)
	focusedButton     = buttonStyle.Underline(true).Reverse(true)
	linkStyle         = lipgloss.NewStyle().Foreground(accent)
	focusedLink       = linkStyle.Bold(true).Reverse(true)

	tabStyle       = lipgloss.NewStyle().Foreground(ink).Padding(0, 2)
	activeTabStyle = tabStyle.Foreground(accent).Bold(true)
	tabBarStyle    = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(faint)

	modalStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	pickerDayStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Right)
	pickerTodayStyle = pickerDayStyle.Foreground(accent).Bold(true).Reverse(true)
)
