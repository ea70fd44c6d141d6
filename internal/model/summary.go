package model

import "time"

// Summary holds the derived scalar statistics for one report cycle.
type Summary struct {
	StartOpen float64
	EndClose  float64
	PctChange float64

	High     float64
	HighDate time.Time
	Low      float64
	LowDate  time.Time

	// Daily close-to-close return statistics. NaN when the series has
	// fewer than two bars.
	MeanDailyReturnPct float64
	StdDailyReturnPct  float64
	BestDayPct         float64
	WorstDayPct        float64
}
