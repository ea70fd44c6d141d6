package collector

import (
	"fmt"
	"time"
)

// NoDataError means the provider answered a well-formed request with zero
// bars, e.g. an unknown instrument or a window with no trading days.
type NoDataError struct {
	Symbol string
	Start  time.Time
	End    time.Time
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data returned for %s between %s and %s",
		e.Symbol, e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

// ProviderError means the data source could not be reached or answered
// with something other than a usable result.
type ProviderError struct {
	Source string
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Source, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
