package calculator

import (
	"math"
	"testing"
)

func TestRollingMean_GrowingThenSliding(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i*i%13) + 100 // arbitrary but deterministic
	}
	const window = 20

	ma, err := RollingMean(values, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma) != len(values) {
		t.Fatalf("len = %d, want %d", len(ma), len(values))
	}

	for i := range values {
		lo := 0
		if i >= window {
			lo = i - window + 1
		}
		sum := 0.0
		for j := lo; j <= i; j++ {
			sum += values[j]
		}
		want := sum / float64(i-lo+1)
		if math.Abs(ma[i]-want) > 1e-9 {
			t.Errorf("ma[%d] = %v, want %v", i, ma[i], want)
		}
	}
}

func TestRollingMean_ShorterThanWindow(t *testing.T) {
	ma, err := RollingMean([]float64{10, 20, 30}, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{10, 15, 20}
	for i := range want {
		if math.Abs(ma[i]-want[i]) > 1e-9 {
			t.Errorf("ma[%d] = %v, want %v", i, ma[i], want[i])
		}
	}
}

func TestRollingMean_InvalidWindow(t *testing.T) {
	if _, err := RollingMean([]float64{1, 2}, 0); err == nil {
		t.Fatal("expected error for zero window")
	}
	if _, err := RollingMean([]float64{1, 2}, -3); err == nil {
		t.Fatal("expected error for negative window")
	}
}

func TestRollingMean_Empty(t *testing.T) {
	ma, err := RollingMean(nil, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ma) != 0 {
		t.Fatalf("len = %d, want 0", len(ma))
	}
}
