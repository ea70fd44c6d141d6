package collector

import (
	"time"

	"GoldTrack/internal/model"
)

// Fetcher defines the interface for fetching historical daily bars.
// Both boundary dates are inclusive.
type Fetcher interface {
	FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error)
	Name() string
}
