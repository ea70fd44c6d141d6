package report

import (
	"fmt"
	"strings"

	"GoldTrack/internal/model"
)

const divider = "-------------------------------------------------------------------"

// FormatSummary formats the period statistics as the console report:
// one labeled block per field, separated by divider lines, in the summary's
// declared field order. Prices and the period change print at 2 decimals,
// mean/std daily returns at 3, best/worst day at 2.
func FormatSummary(s model.Summary, window model.Window, symbol string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("------------------ Semester Summary: %s (%s) ----------------\n\n", symbol, window))

	writeBlock(&b, fmt.Sprintf("Period start (open): %.2f USD", s.StartOpen))
	writeBlock(&b, fmt.Sprintf("Period end (close):  %.2f USD", s.EndClose))
	writeBlock(&b, fmt.Sprintf("Change over semester: %.2f%%", s.PctChange))
	writeBlock(&b, fmt.Sprintf("High: %.2f USD on %s", s.High, s.HighDate.Format("2006-01-02")))
	writeBlock(&b, fmt.Sprintf("Low:  %.2f USD on %s", s.Low, s.LowDate.Format("2006-01-02")))
	writeBlock(&b, fmt.Sprintf("Mean daily return: %.3f%%", s.MeanDailyReturnPct))
	writeBlock(&b, fmt.Sprintf("Std dev daily return: %.3f%%", s.StdDailyReturnPct))
	writeBlock(&b, fmt.Sprintf("Best single day: %.2f%%", s.BestDayPct))
	b.WriteString(fmt.Sprintf("Worst single day: %.2f%%\n", s.WorstDayPct))

	return b.String()
}

func writeBlock(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\n\n")
	b.WriteString(divider)
	b.WriteString("\n\n")
}
