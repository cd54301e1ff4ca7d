package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#0B6E4F")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	winStyle  = cellStyle.Foreground(lipgloss.Color("10"))
	lossStyle = cellStyle.Foreground(lipgloss.Color("9"))
)

// RenderNetTable renders the winnings report.
func RenderNetTable(rows []NetRow, currency string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-16s %12s %12s %8s", "player", "net", "buy-in", "hours")))
	b.WriteString("\n")

	for _, r := range rows {
		style := winStyle
		if r.Net.IsNegative() {
			style = lossStyle
		}
		line := fmt.Sprintf("%-16s %12s %12s %8.1f",
			r.Nickname,
			currency+r.Net.StringFixed(2),
			currency+r.BuyIn.StringFixed(2),
			r.HoursPlayed,
		)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderVPIPTable renders the VPIP report.
func RenderVPIPTable(rows []VPIPRow) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-16s %8s", "player", "vpip")))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(cellStyle.Render(fmt.Sprintf("%-16s %7.1f%%", r.Nickname, r.Percent)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderTimeline renders each player's cumulative net by date.
func RenderTimeline(rows []TimelineRow, currency string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-16s %s", "player", "net over time")))
	b.WriteString("\n")
	for _, r := range rows {
		var steps []string
		for _, p := range r.Points {
			steps = append(steps, fmt.Sprintf("%s %s%s", p.Date.Format("01-02"), currency, p.Net.StringFixed(2)))
		}
		b.WriteString(cellStyle.Render(fmt.Sprintf("%-16s %s", r.Nickname, strings.Join(steps, "  "))))
		b.WriteString("\n")
	}
	return b.String()
}
