package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"GoldTrack/internal/collector"
	"GoldTrack/internal/config"
	"GoldTrack/internal/plot"
	"GoldTrack/internal/recorder"
	"GoldTrack/internal/runner"
	"GoldTrack/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}

	var (
		flagConfig   = flag.String("config", cfgPath, "Config file path")
		flagTicker   = flag.String("ticker", "", "Ticker to use (default: GC=F for gold futures, try GLD for the ETF)")
		flagOut      = flag.String("out", "", "Output chart file")
		flagCSV      = flag.String("csv", "", "Save fetched data to CSV")
		flagSchedule = flag.String("schedule", "", "Cron expression for repeated runs (default: run once)")
	)
	flag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *flagTicker != "" {
		cfg.Ticker = *flagTicker
	}
	if *flagOut != "" {
		cfg.Output.Chart = *flagOut
	}
	if *flagCSV != "" {
		cfg.Output.CSV = *flagCSV
	}
	if *flagSchedule != "" {
		cfg.Schedule.Cron = *flagSchedule
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "stooq":
		fetcher = collector.NewStooqFetcher(cfg.Proxy)
	default:
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.Ticker)
	ren := plot.NewRenderer(cfg.Chart.Theme)
	rec := recorder.NewCSVRecorder(cfg.Output.CSV)
	defer rec.Close()

	run := runner.NewRunner(col, ren, rec, cfg.Output.Chart, os.Stdout)

	if cfg.Schedule.Cron == "" {
		if err := run.Run(time.Now()); err != nil {
			exitOn(err)
		}
		return
	}

	// Scheduled mode: rebuild the report on every cron tick until stopped.
	sched := scheduler.NewScheduler(run)
	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()
	log.Printf("[INFO] GoldTrack running on schedule %q. Press Ctrl+C to stop.", cfg.Schedule.Cron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

// exitOn maps pipeline failures to process exits: fetch-side failures
// (no data, provider unreachable) get a single line on stderr and exit
// code 1; anything later in the pipeline is fatal with full context.
func exitOn(err error) {
	var noData *collector.NoDataError
	var provider *collector.ProviderError
	if errors.As(err, &noData) || errors.As(err, &provider) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Fatalf("[FATAL] %v", err)
}
