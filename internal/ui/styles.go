package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tmcli/tm/todo"
)

var (
	doneMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("[x]")
	openMark   = "[ ]"
	doneText   = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	aiBadge    = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Render("ai")
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	celebrationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// Checkbox returns the completion marker for a task row.
func Checkbox(completed bool) string {
	if completed {
		return doneMark
	}
	return openMark
}

// TaskText styles the task text for a table row, struck through when done.
func TaskText(td todo.Todo) string {
	text := TruncateTableCell(td.Text)
	if td.Completed {
		return doneText.Render(text)
	}
	return text
}

// Origin returns the source column value for a task row.
func Origin(td todo.Todo) string {
	if td.AIGenerated {
		return aiBadge
	}
	return ""
}

// ProgressLine summarizes completion, e.g. "2/5 completed".
func ProgressLine(completed, total int) string {
	return fmt.Sprintf("%d/%d completed", completed, total)
}

// Celebration is printed when the last remaining task is checked off.
func Celebration() string {
	return celebrationStyle.Render("🎉 All tasks completed!")
}

// Error styles an error line for stderr.
func Error(msg string) string {
	return errorStyle.Render(msg)
}
