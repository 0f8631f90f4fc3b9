package components

import (
	"fmt"
	"strings"

	"github.com/Detrauxa/Otoma--Tracker/pkg/app/styles"
	"github.com/Detrauxa/Otoma--Tracker/pkg/data"
)

// ProgressLine renders "<bar> done/total capturés (pct%)".
func ProgressLine(s data.Summary, width int, theme styles.Theme) string {
	label := fmt.Sprintf("%d/%d capturés (%.0f%%)", s.Done, s.Total, s.Percent())
	barWidth := width - len([]rune(label)) - 1
	if barWidth < 10 {
		return theme.Text.Render(label)
	}
	return renderProgressBar(s.Done, s.Total, barWidth, theme) + " " + theme.Text.Render(label)
}

func renderProgressBar(current, total, width int, theme styles.Theme) string {
	if total == 0 || width <= 0 {
		return theme.ProgressRest.Render(strings.Repeat("░", max(width, 0)))
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return theme.ProgressBar.Render(strings.Repeat("█", filled)) +
		theme.ProgressRest.Render(strings.Repeat("░", width-filled))
}
