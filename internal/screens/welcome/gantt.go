package welcome

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmquiz/internal/ui/theme"
)

// ganttTask is one bar of the splash chart, in chart columns.
type ganttTask struct {
	label string
	start int
	span  int
}

const ganttWidth = 28

var ganttTasks = []ganttTask{
	{"T1", 0, 8},
	{"T2", 5, 10},
	{"T3", 15, 8},
	{"T4", 19, 9},
}

// RenderGantt draws the splash chart with every bar grown to at most
// progress columns past its start.
func RenderGantt(progress int) string {
	barStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	critical := lipgloss.NewStyle().Foreground(theme.Accent)
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	lines := make([]string, 0, len(ganttTasks))
	for i, t := range ganttTasks {
		grown := min(max(progress-t.start, 0), t.span)
		style := barStyle
		if i%2 == 1 {
			style = critical
		}
		bar := strings.Repeat(" ", t.start) + style.Render(strings.Repeat("█", grown))
		pad := strings.Repeat(" ", ganttWidth-t.start-grown)
		lines = append(lines, fmt.Sprintf("│ %s %s%s │", labelStyle.Render(t.label), bar, pad))
	}

	border := lipgloss.NewStyle().Foreground(theme.Primary)
	top := border.Render("╭" + strings.Repeat("─", ganttWidth+5) + "╮")
	bottom := border.Render("╰" + strings.Repeat("─", ganttWidth+5) + "╯")
	return top + "\n" + strings.Join(lines, "\n") + "\n" + bottom
}

const bannerText = "P Á G I N A   D E   E S T U D I O"

const bannerCompact = "Página de Estudio"

// RenderBanner returns the splash banner, compact below 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerText)
}
