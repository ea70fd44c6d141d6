package collector

import (
	"fmt"
	"time"

	"GoldTrack/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(2000, start, end), nil
}

func generateMockBars(basePrice float64, start, end time.Time) []model.Bar {
	var bars []model.Bar
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		p := basePrice * (1 + float64(len(bars))*0.001)
		bars = append(bars, model.Bar{
			Date:   d,
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		})
	}
	return bars
}

// Collector binds a fetcher to one instrument and validates what it returns.
type Collector struct {
	Fetcher Fetcher
	Symbol  string
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol}
}

// Collect fetches daily bars for the window and returns a validated series:
// dates strictly ascending, date-only, at least one bar.
func (c *Collector) Collect(window model.Window) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(c.Symbol, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, &NoDataError{Symbol: c.Symbol, Start: window.Start, End: window.End}
	}
	for i := 1; i < len(bars); i++ {
		if !bars[i-1].Date.Before(bars[i].Date) {
			return nil, &ProviderError{
				Source: c.Fetcher.Name(),
				Err: fmt.Errorf("bars out of order at %s",
					bars[i].Date.Format("2006-01-02")),
			}
		}
	}
	return &model.PriceSeries{
		Symbol:    c.Symbol,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}
