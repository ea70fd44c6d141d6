package runner

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"GoldTrack/internal/collector"
	"GoldTrack/internal/model"
	"GoldTrack/internal/plot"
	"GoldTrack/internal/recorder"
)

func fixedBars() []model.Bar {
	return []model.Bar{
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Open: 100, High: 105, Low: 99, Close: 102, Volume: 1000},
		{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Open: 102, High: 108, Low: 101, Close: 107, Volume: 2000},
		{Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Open: 107, High: 107, Low: 103, Close: 104, Volume: 1500},
	}
}

func TestRun_FullPipeline(t *testing.T) {
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "chart.png")
	csvPath := filepath.Join(dir, "export.csv")

	col := collector.NewCollector(&collector.MockFetcher{Bars: fixedBars()}, "GC=F")
	var out bytes.Buffer
	run := NewRunner(col, plot.NewRenderer("dark"), recorder.NewCSVRecorder(csvPath), chartPath, &out)

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	if err := run.Run(now); err != nil {
		t.Fatalf("run: %v", err)
	}

	for _, p := range []string{chartPath, csvPath} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("expected output %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("output %s is empty", p)
		}
	}

	report := out.String()
	for _, want := range []string{
		"Period start (open): 100.00 USD",
		"Change over semester: 4.00%",
		"High: 108.00 USD on 2024-01-03",
		"Low:  99.00 USD on 2024-01-02",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n%s", want, report)
		}
	}
}

func TestRun_NoDataProducesNoOutputs(t *testing.T) {
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "chart.png")
	csvPath := filepath.Join(dir, "export.csv")

	fetchErr := &collector.NoDataError{
		Symbol: "NOPE",
		Start:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	col := collector.NewCollector(&collector.MockFetcher{Err: fetchErr}, "NOPE")
	var out bytes.Buffer
	run := NewRunner(col, plot.NewRenderer("dark"), recorder.NewCSVRecorder(csvPath), chartPath, &out)

	err := run.Run(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	var noData *collector.NoDataError
	if !errors.As(err, &noData) {
		t.Fatalf("got %T (%v), want *NoDataError", err, err)
	}

	for _, p := range []string{chartPath, csvPath} {
		if _, statErr := os.Stat(p); !os.IsNotExist(statErr) {
			t.Errorf("output %s should not exist after fetch failure", p)
		}
	}
	if out.Len() != 0 {
		t.Errorf("no report should be printed after fetch failure, got %q", out.String())
	}
}

func TestRun_RenderFailureStopsBeforeExport(t *testing.T) {
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "missing", "chart.png") // unwritable
	csvPath := filepath.Join(dir, "export.csv")

	col := collector.NewCollector(&collector.MockFetcher{Bars: fixedBars()}, "GC=F")
	var out bytes.Buffer
	run := NewRunner(col, plot.NewRenderer("dark"), recorder.NewCSVRecorder(csvPath), chartPath, &out)

	if err := run.Run(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Fatal("expected render error")
	}
	if _, statErr := os.Stat(csvPath); !os.IsNotExist(statErr) {
		t.Error("csv export should not exist after render failure")
	}
	if out.Len() != 0 {
		t.Error("no report should be printed after render failure")
	}
}

func TestChartTitle(t *testing.T) {
	w := model.Window{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	got := chartTitle("GC=F", w)
	want := "GC=F price since 2024-01-01 (as of 2024-03-15)"
	if got != want {
		t.Errorf("chartTitle = %q, want %q", got, want)
	}
}
