package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/todokeeper/internal/client/models"
)

// barWidth is the length of a full bar in the stats view.
const barWidth = 20

var (
	colorHigh   = lipgloss.Color("#d32f2f")
	colorMedium = lipgloss.Color("#ffa000")
	colorLow    = lipgloss.Color("#2e7d32")
	colorMuted  = lipgloss.Color("#555555")

	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	successStyle = lipgloss.NewStyle().Foreground(colorLow)
	tipStyle     = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMedium)

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(colorHigh),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(colorMedium),
		models.PriorityLow:    lipgloss.NewStyle().Foreground(colorLow),
	}
)

func priorityStyle(p models.Priority) lipgloss.Style {
	if s, ok := priorityStyles[p]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// renderListLine formats one entry of the "lists" output:
//
//	2. 📝 Groceries (1/3 tasks completed) ← current
func renderListLine(n int, l *models.List, current bool) string {
	s := models.ComputeStats(l)
	line := fmt.Sprintf("%3d. %s %s (%d/%d tasks completed)", n, l.Emoji, l.Name, s.Completed, s.Total)
	if current {
		line += currentStyle.Render(" ← current")
	}
	return line
}

// renderTaskLine formats one task of the "tasks" output:
//
//	1. [x] • Buy milk (High) done 2024-05-01 10:00:00
func renderTaskLine(n int, t *models.Task) string {
	box, text := "[ ]", t.Text
	if t.Completed {
		box, text = "[x]", doneStyle.Render(t.Text)
	}
	line := fmt.Sprintf("%3d. %s %s %s %s", n, box, t.Emoji, text,
		priorityStyle(t.Priority).Render("("+string(t.Priority)+")"))
	if t.Completed && t.CompletedAt != nil {
		line += " done " + t.CompletedAt.String()
	}
	return line
}

// renderStats draws the completion summary, a progress bar and one bar per
// priority that occurs in the list.
func renderStats(s models.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %d  Completed: %d  Pending: %d\n", s.Total, s.Completed, s.Pending())
	if s.Total == 0 {
		b.WriteString("No tasks yet")
		return b.String()
	}

	fmt.Fprintf(&b, "Progress: %s %d%%\n", bar(s.Completed, s.Total, successStyle), s.Percent())
	b.WriteString("Priority distribution:")
	for _, p := range models.Priorities {
		count, ok := s.ByPriority[p]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n  %-6s %s %d", p, bar(count, s.Total, priorityStyle(p)), count)
	}
	return b.String()
}

// bar renders part/total as a fixed-width bar. A non-zero part always gets at
// least one cell.
func bar(part, total int, style lipgloss.Style) string {
	filled := 0
	if total > 0 {
		filled = part * barWidth / total
	}
	if part > 0 && filled == 0 {
		filled = 1
	}
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
}
