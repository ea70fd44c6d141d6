package calculator

import (
	"errors"
	"math"
	"time"

	"GoldTrack/internal/model"
)

// Summarize derives the period statistics from a price series.
// PctChange is an unguarded division and yields NaN when the first open is
// zero. With fewer than two bars there are no daily returns and the whole
// return block is NaN.
func Summarize(series *model.PriceSeries) (model.Summary, error) {
	if series == nil || len(series.Bars) == 0 {
		return model.Summary{}, errors.New("empty price series")
	}

	bars := series.Bars
	s := model.Summary{
		StartOpen: bars[0].Open,
		EndClose:  bars[len(bars)-1].Close,
	}
	s.PctChange = (s.EndClose - s.StartOpen) / s.StartOpen * 100

	s.High, s.HighDate, s.Low, s.LowDate = extrema(bars)

	returns := dailyReturns(bars)
	s.MeanDailyReturnPct = mean(returns) * 100
	s.StdDailyReturnPct = sampleStd(returns) * 100
	s.BestDayPct = maxOf(returns) * 100
	s.WorstDayPct = minOf(returns) * 100

	return s, nil
}

// extrema scans for the highest High and lowest Low. Ties resolve to the
// earliest date: a later bar must strictly exceed to take over.
func extrema(bars []model.Bar) (high float64, highDate time.Time, low float64, lowDate time.Time) {
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, b := range bars {
		if b.High > high {
			high = b.High
			highDate = b.Date
		}
		if b.Low < low {
			low = b.Low
			lowDate = b.Date
		}
	}
	return high, highDate, low, lowDate
}

// dailyReturns computes close-to-close returns for adjacent bar pairs.
// Length is len(bars)-1; empty when fewer than two bars.
func dailyReturns(bars []model.Bar) []float64 {
	if len(bars) < 2 {
		return nil
	}
	rets := make([]float64, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		rets = append(rets, (bars[i].Close-prev)/prev)
	}
	return rets
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// sampleStd is the corrected (n-1 denominator) standard deviation.
// NaN for fewer than two samples.
func sampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

func maxOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	max := xs[0]
	for _, x := range xs[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

func minOf(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	min := xs[0]
	for _, x := range xs[1:] {
		if x < min {
			min = x
		}
	}
	return min
}
