package runner

import (
	"fmt"
	"io"
	"log"
	"time"

	"GoldTrack/internal/calculator"
	"GoldTrack/internal/collector"
	"GoldTrack/internal/model"
	"GoldTrack/internal/period"
	"GoldTrack/internal/plot"
	"GoldTrack/internal/recorder"
	"GoldTrack/internal/report"
)

// Runner executes one full report cycle: resolve the semester window,
// fetch, summarize, render the chart, export the raw data, print the
// summary. Steps run strictly in that order; the first failure aborts
// the cycle before any later output is produced.
type Runner struct {
	Collector *collector.Collector
	Renderer  *plot.Renderer
	Recorder  recorder.Recorder
	ChartPath string
	Out       io.Writer
}

// NewRunner wires a runner from its collaborators.
func NewRunner(col *collector.Collector, ren *plot.Renderer, rec recorder.Recorder, chartPath string, out io.Writer) *Runner {
	return &Runner{
		Collector: col,
		Renderer:  ren,
		Recorder:  rec,
		ChartPath: chartPath,
		Out:       out,
	}
}

// Run executes the pipeline for the semester containing now.
func (r *Runner) Run(now time.Time) error {
	window := period.Resolve(now)
	log.Printf("[INFO] window resolved: %s", window)

	series, err := r.Collector.Collect(window)
	if err != nil {
		return err
	}
	log.Printf("[INFO] fetched %d bars for %s via %s",
		len(series.Bars), series.Symbol, r.Collector.Fetcher.Name())

	summary, err := calculator.Summarize(series)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	title := chartTitle(series.Symbol, window)
	if err := r.Renderer.Render(series, r.ChartPath, title); err != nil {
		return err
	}
	log.Printf("[INFO] chart written: %s", r.ChartPath)

	if err := r.Recorder.Record(series); err != nil {
		return err
	}

	fmt.Fprint(r.Out, report.FormatSummary(summary, window, series.Symbol))
	return nil
}

func chartTitle(symbol string, w model.Window) string {
	return fmt.Sprintf("%s price since %s (as of %s)",
		symbol, w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
}
