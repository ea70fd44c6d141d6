package model

import "time"

// Bar represents a single daily OHLCV record.
type Bar struct {
	Date   time.Time // calendar date, UTC midnight
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds raw daily price data for one instrument.
// Bars are strictly ascending by date with no duplicates.
type PriceSeries struct {
	Symbol    string
	Bars      []Bar
	FetchedAt time.Time
}

// Window is a closed calendar-date range [Start, End].
type Window struct {
	Start time.Time
	End   time.Time
}

// String renders the window as "2024-01-01 .. 2024-06-30".
func (w Window) String() string {
	return w.Start.Format("2006-01-02") + " .. " + w.End.Format("2006-01-02")
}
