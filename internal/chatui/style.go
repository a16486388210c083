package chatui

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true).Padding(0, 1)
	paneStyle  = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	userLabelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
	assistantLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	valueMuted          = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusSuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)
