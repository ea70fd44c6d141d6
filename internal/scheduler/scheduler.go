package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"GoldTrack/internal/runner"
)

// Scheduler re-runs the report pipeline on a cron schedule. Failures on a
// tick are logged, never fatal; the next tick gets a fresh attempt.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *runner.Runner
}

// NewScheduler creates a new Scheduler driving the given runner.
func NewScheduler(r *runner.Runner) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: r,
	}
}

// Register adds the report task under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) reportTask() {
	log.Println("[INFO] running scheduled report")
	if err := s.Runner.Run(time.Now()); err != nil {
		log.Printf("[ERROR] scheduled report: %v", err)
	}
}
