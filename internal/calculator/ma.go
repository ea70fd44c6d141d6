package calculator

import (
	"errors"

	"GoldTrack/internal/model"
)

// RollingMean computes a trailing simple moving average of the given values.
// For positions before the window is full, the mean covers however many
// values are available so far (growing window), then a fixed sliding window.
func RollingMean(values []float64, window int) ([]float64, error) {
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		n := window
		if i < window {
			n = i + 1
		} else {
			sum -= values[i-window]
		}
		out[i] = sum / float64(n)
	}
	return out, nil
}

// ExtractCloses returns the close prices of the given bars in order.
func ExtractCloses(bars []model.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
